package taxcal

import (
	"math"

	"github.com/shopspring/decimal"
)

var cess = decimal.NewFromFloat(CessRate)

// CalculateTaxableIncome หัก standard deduction ไม่ให้ติดลบ
func CalculateTaxableIncome(grossIncome float64) float64 {
	return math.Max(0, grossIncome-StandardDeduction)
}

// CalculateBaseTax sums the marginal contribution of every slab.
func CalculateBaseTax(taxableIncome float64) float64 {
	base, _ := slabTaxes(taxableIncome)
	return base.InexactFloat64()
}

// CalculateTax returns the total tax payable, cess included, for a
// non-negative gross income.
func CalculateTax(grossIncome float64) float64 {
	base, _ := slabTaxes(CalculateTaxableIncome(grossIncome))
	return withCess(base).InexactFloat64()
}

// EffectiveRate is totalTax as a percentage of grossIncome, 0 for no income.
func EffectiveRate(totalTax, grossIncome float64) float64 {
	if grossIncome <= 0 {
		return 0
	}
	return totalTax / grossIncome * 100
}

func withCess(base decimal.Decimal) decimal.Decimal {
	return base.Add(base.Mul(cess))
}

// slabTaxes คำนวณภาษีแต่ละขั้น แล้วรวมเป็น base tax
func slabTaxes(taxableIncome float64) (decimal.Decimal, []SlabTax) {
	base := decimal.Zero
	breakdown := make([]SlabTax, 0, len(slabs))
	for _, s := range slabs {
		amount := decimal.NewFromFloat(s.Portion(taxableIncome))
		tax := amount.Mul(decimal.NewFromFloat(s.Rate))
		base = base.Add(tax)
		breakdown = append(breakdown, SlabTax{
			Slab:   s,
			Amount: amount.InexactFloat64(),
			Tax:    tax.InexactFloat64(),
		})
	}
	return base, breakdown
}
