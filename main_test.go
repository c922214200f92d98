package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const prompt = "Indian Income Tax Calculator (New Regime, FY 2024-25)\n" +
	"Enter your annual gross income (in ₹): "

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode int
		wantOut  string
	}{
		{
			name:     "income in 30% slab",
			input:    "3000000\n",
			wantCode: 0,
			wantOut: prompt +
				"\nTax Calculation Breakdown:\n" +
				"- Standard Deduction: ₹50,000\n" +
				"- Taxable Income: ₹2950000.00\n" +
				"- Total Tax Payable: ₹509600.00\n" +
				"- Effective Tax Rate: 16.99%\n",
		},
		{
			name:     "income under deduction",
			input:    "40000",
			wantCode: 0,
			wantOut: prompt +
				"\nTax Calculation Breakdown:\n" +
				"- Standard Deduction: ₹50,000\n" +
				"- Taxable Income: ₹0.00\n" +
				"- Total Tax Payable: ₹0.00\n" +
				"- Effective Tax Rate: 0.00%\n",
		},
		{
			name:     "non-numeric",
			input:    "lots\n",
			wantCode: 1,
			wantOut:  prompt + "Invalid input. Please enter a non-negative number.\n",
		},
		{
			name:     "negative",
			input:    "-100\n",
			wantCode: 1,
			wantOut:  prompt + "Invalid input. Please enter a non-negative number.\n",
		},
		{
			name:     "no input",
			input:    "",
			wantCode: 1,
			wantOut:  prompt + "Invalid input. Please enter a non-negative number.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}
