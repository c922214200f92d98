// Command slab-tax reads an annual gross income from standard input and
// prints the new-regime tax breakdown.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/windeesel365/slab-tax/incomeinput"
	"github.com/windeesel365/slab-tax/report"
	"github.com/windeesel365/slab-tax/taxcal"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(stdin io.Reader, stdout io.Writer) int {
	fmt.Fprintln(stdout, "Indian Income Tax Calculator (New Regime, FY 2024-25)")
	fmt.Fprint(stdout, "Enter your annual gross income (in ₹): ")

	income, err := incomeinput.ReadIncome(stdin)
	if err != nil {
		fmt.Fprintln(stdout, incomeinput.Message(err))
		return 1
	}

	if err := report.WriteBreakdown(stdout, taxcal.Assess(income)); err != nil {
		return 1
	}
	return 0
}
