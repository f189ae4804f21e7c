package utils

import "math"

// InvalidBMIInput is shown in place of a category when height or weight is
// missing or non-positive.
const InvalidBMIInput = "Enter valid height and weight"

// CalculateBMI returns the body mass index rounded to one decimal and its
// category, or nil and the invalid-input message when the inputs are unusable.
func CalculateBMI(weightKG, heightCM float64) (*float64, string) {
	if weightKG <= 0 || heightCM <= 0 {
		return nil, InvalidBMIInput
	}

	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)
	rounded := math.Round(bmi*10) / 10

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 24.9:
		category = "Normal weight"
	case bmi >= 25 && bmi < 29.9:
		category = "Overweight"
	default:
		category = "Obesity"
	}

	return &rounded, category
}
