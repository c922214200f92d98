package server

import "github.com/windeesel365/slab-tax/money"

// CustomFloat64 แสดงผลเป็นตัวเลขทศนิยมสองตำแหน่งใน JSON
type CustomFloat64 float64

func (cf CustomFloat64) MarshalJSON() ([]byte, error) {
	return []byte(money.Round2(float64(cf)).StringFixed(2)), nil
}
