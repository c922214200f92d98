package taxcal

import (
	"fmt"
	"math"

	"github.com/windeesel365/slab-tax/money"
)

const (
	// StandardDeduction is subtracted from gross income before the slabs apply.
	StandardDeduction = 50000.0

	// CessRate is the surcharge applied on top of the slab tax.
	CessRate = 0.04
)

// Slab is one marginal band [Lower, Upper). Upper is +Inf for the top band.
type Slab struct {
	Lower float64
	Upper float64
	Rate  float64
}

// New regime, FY 2024-25.
var slabs = [...]Slab{
	{Lower: 0, Upper: 300000, Rate: 0},
	{Lower: 300000, Upper: 700000, Rate: 0.05},
	{Lower: 700000, Upper: 1000000, Rate: 0.10},
	{Lower: 1000000, Upper: 1500000, Rate: 0.15},
	{Lower: 1500000, Upper: 2000000, Rate: 0.20},
	{Lower: 2000000, Upper: 2400000, Rate: 0.25},
	{Lower: 2400000, Upper: math.Inf(1), Rate: 0.30},
}

// SlabTable returns a copy of the slab table in ascending order.
func SlabTable() []Slab {
	out := make([]Slab, len(slabs))
	copy(out, slabs[:])
	return out
}

// Portion is the part of taxableIncome that falls inside the slab.
func (s Slab) Portion(taxableIncome float64) float64 {
	if taxableIncome <= s.Lower {
		return 0
	}
	return math.Min(taxableIncome, s.Upper) - s.Lower
}

// String formats the slab the way the tax level table shows it,
// e.g. "300,001-700,000" or "2,400,001 and above".
func (s Slab) String() string {
	lower := money.FormatGrouped(int64(s.Lower))
	if s.Lower > 0 {
		lower = money.FormatGrouped(int64(s.Lower) + 1)
	}
	if math.IsInf(s.Upper, 1) {
		return fmt.Sprintf("%s and above", lower)
	}
	return fmt.Sprintf("%s-%s", lower, money.FormatGrouped(int64(s.Upper)))
}
