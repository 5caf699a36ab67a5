package document

// WordprocessingML stores lengths in twips (twentieths of a point), run
// sizes in half-points, and proportional line spacing in 240ths of a line.
const (
	twipsPerPoint = 20.0
	pointsPerInch = 72.0
	cmPerInch     = 2.54

	// PointsPerCm is Word's conventional rounding of 72/2.54; margin rules
	// are expressed against it so that a 2.5 cm margin is ~70.87 pt.
	PointsPerCm = 28.35

	// LineUnitsPerLine is the denominator for proportional line spacing:
	// 240 = single, 360 = 1.5 lines, 480 = double.
	LineUnitsPerLine = 240.0
)

// TwipsToCm converts a twip length to centimeters.
func TwipsToCm(twips float64) float64 {
	return twips / twipsPerPoint * cmPerInch / pointsPerInch
}

// TwipsToPoints converts a twip length to points.
func TwipsToPoints(twips float64) float64 {
	return twips / twipsPerPoint
}

// PointsToCm converts a point length to centimeters.
func PointsToCm(points float64) float64 {
	return points / PointsPerCm
}

// CmToPoints converts a centimeter length to points.
func CmToPoints(cm float64) float64 {
	return cm * PointsPerCm
}

// HalfPointsToPoints converts a half-point run size to points.
func HalfPointsToPoints(halfPoints float64) float64 {
	return halfPoints / 2.0
}

// LineUnitsToFactor converts a proportional line spacing value to a
// spacing multiplier (360 -> 1.5).
func LineUnitsToFactor(units float64) float64 {
	return units / LineUnitsPerLine
}
