package docx

import "encoding/xml"

// Minimal WordprocessingML shapes for word/document.xml. Only the elements
// the document view needs are decoded; everything else is skipped by the
// XML decoder. Field tags use local names, which encoding/xml matches
// regardless of the w: namespace prefix.

type ctDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    ctBody   `xml:"body"`
}

type ctBody struct {
	Paragraphs []ctParagraph `xml:"p"`
	Tables     []ctTable     `xml:"tbl"`
	SectPr     *ctSectPr     `xml:"sectPr"`
}

type ctParagraph struct {
	Props *ctPPr  `xml:"pPr"`
	Runs  []ctRun `xml:"r"`
}

type ctPPr struct {
	Style   *ctStringVal `xml:"pStyle"`
	Jc      *ctStringVal `xml:"jc"`
	Spacing *ctSpacing   `xml:"spacing"`
	NumPr   *ctNumPr     `xml:"numPr"`
	Ind     *ctInd       `xml:"ind"`
}

type ctStringVal struct {
	Val string `xml:"val,attr"`
}

type ctSpacing struct {
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

type ctNumPr struct {
	Ilvl  *ctDecimalVal `xml:"ilvl"`
	NumID *ctDecimalVal `xml:"numId"`
}

type ctDecimalVal struct {
	Val int `xml:"val,attr"`
}

type ctInd struct {
	Left string `xml:"left,attr"`
}

type ctRun struct {
	Props *ctRPr   `xml:"rPr"`
	Texts []string `xml:"t"`
}

type ctRPr struct {
	Fonts *ctFonts     `xml:"rFonts"`
	Size  *ctStringVal `xml:"sz"`
	Bold  *ctOnOff     `xml:"b"`
}

type ctFonts struct {
	ASCII string `xml:"ascii,attr"`
}

// ctOnOff models w:b and friends, where absence of val means "on".
type ctOnOff struct {
	Val string `xml:"val,attr"`
}

func (o *ctOnOff) isOn() bool {
	if o == nil {
		return false
	}
	return o.Val == "" || o.Val == "1" || o.Val == "true" || o.Val == "on"
}

type ctTable struct {
	Rows []ctTableRow `xml:"tr"`
}

type ctTableRow struct {
	Cells []ctTableCell `xml:"tc"`
}

type ctTableCell struct {
	Paragraphs []ctParagraph `xml:"p"`
}

type ctSectPr struct {
	PgSz  *ctPgSz  `xml:"pgSz"`
	PgMar *ctPgMar `xml:"pgMar"`
}

type ctPgSz struct {
	W      string `xml:"w,attr"`
	H      string `xml:"h,attr"`
	Orient string `xml:"orient,attr"`
}

type ctPgMar struct {
	Top    string `xml:"top,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Right  string `xml:"right,attr"`
	Header string `xml:"header,attr"`
	Footer string `xml:"footer,attr"`
}
