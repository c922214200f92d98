package taxcal

// SlabTax is how much of the taxable income one slab covered and the tax it raised.
type SlabTax struct {
	Slab   Slab
	Amount float64
	Tax    float64
}

// Assessment is the full breakdown for one gross income.
type Assessment struct {
	GrossIncome       float64
	StandardDeduction float64
	TaxableIncome     float64
	Slabs             []SlabTax
	BaseTax           float64
	Cess              float64
	TotalTax          float64
	EffectiveRate     float64
}

// Assess computes every reporting value for grossIncome. Slabs always holds
// the whole table; bands above the taxable income carry zero.
func Assess(grossIncome float64) Assessment {
	taxable := CalculateTaxableIncome(grossIncome)
	base, breakdown := slabTaxes(taxable)
	total := withCess(base)
	totalTax := total.InexactFloat64()

	return Assessment{
		GrossIncome:       grossIncome,
		StandardDeduction: StandardDeduction,
		TaxableIncome:     taxable,
		Slabs:             breakdown,
		BaseTax:           base.InexactFloat64(),
		Cess:              total.Sub(base).InexactFloat64(),
		TotalTax:          totalTax,
		EffectiveRate:     EffectiveRate(totalTax, grossIncome),
	}
}
