package helper

import "math"

// Round1 rounds to one decimal place. Only DTO builders call it.
func Round1(x float64) float64 { return math.Round(x*10) / 10 }

// Round2 rounds to two decimal places (percent rates).
func Round2(x float64) float64 { return math.Round(x*100) / 100 }

// Round1Ptr keeps nil as nil.
func Round1Ptr(x *float64) *float64 {
	if x == nil {
		return nil
	}
	v := Round1(*x)
	return &v
}
