// Package report renders an assessment as the plain text breakdown.
package report

import (
	"fmt"
	"io"

	"github.com/windeesel365/slab-tax/money"
	"github.com/windeesel365/slab-tax/taxcal"
)

// WriteBreakdown prints the four-line breakdown for a.
func WriteBreakdown(w io.Writer, a taxcal.Assessment) error {
	_, err := fmt.Fprintf(w,
		"\nTax Calculation Breakdown:\n"+
			"- Standard Deduction: %s\n"+
			"- Taxable Income: %s\n"+
			"- Total Tax Payable: %s\n"+
			"- Effective Tax Rate: %s\n",
		money.StandardDeductionDisplay,
		money.FormatCurrency(a.TaxableIncome),
		money.FormatCurrency(a.TotalTax),
		money.FormatPercent(a.EffectiveRate),
	)
	return err
}
