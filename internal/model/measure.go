package model

// Region is a named extra rectangular area included in a measurement,
// such as a closet floor or a knee wall.
type Region struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`  // inches
	Length float64 `json:"length"` // inches
}

// Measurement holds the dimensions of a measured surface in inches.
type Measurement struct {
	Width  float64  `json:"width"`  // inches
	Length float64  `json:"length"` // inches
	Height float64  `json:"height"` // inches
	Extras []Region `json:"extras,omitempty"`
}

// squareInchesPerSquareFoot converts measured inches to square feet.
const squareInchesPerSquareFoot = 144.0

// rectSquareFeet returns the area of a width x length rectangle in square
// feet. A rectangle contributes area only when both dimensions are positive.
func rectSquareFeet(width, length float64) float64 {
	if width <= 0 || length <= 0 {
		return 0
	}
	return width * length / squareInchesPerSquareFoot
}

// TotalSquareFeet returns the primary rectangle's area plus every extra
// region's area, in square feet. The result is never negative.
func (m Measurement) TotalSquareFeet() float64 {
	total := rectSquareFeet(m.Width, m.Length)
	for _, r := range m.Extras {
		total += rectSquareFeet(r.Width, r.Length)
	}
	return total
}
