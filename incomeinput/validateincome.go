package incomeinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedInput = errors.New("income is not a number")
	ErrNegativeIncome = errors.New("income must not be negative")
)

// Decimal exponents outside these bounds are rejected before float
// conversion; converting expands 10^exp in full.
const (
	maxExponent = 308
	minExponent = -400
)

// invalidInputMessage ข้อความเดียวสำหรับทั้งสองกรณี เหมือนโปรแกรมเดิม
const invalidInputMessage = "Invalid input. Please enter a non-negative number."

// ReadIncome reads the first whitespace-delimited token from r.
func ReadIncome(r io.Reader) (float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return 0, fmt.Errorf("%w: no input", ErrMalformedInput)
	}
	return ParseIncome(scanner.Text())
}

// ParseIncome parses a plain decimal amount such as "850000" or "1.2e6".
func ParseIncome(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrMalformedInput)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}

	if exp := d.Exponent(); exp > maxExponent || exp < minExponent {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedInput, text)
	}

	income := d.InexactFloat64()
	if err := ValidateIncome(income); err != nil {
		return 0, err
	}
	return income, nil
}

// ValidateIncome checks an already-decoded amount.
func ValidateIncome(income float64) error {
	if math.IsNaN(income) || math.IsInf(income, 0) {
		return fmt.Errorf("%w: %v", ErrMalformedInput, income)
	}
	if income < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeIncome, income)
	}
	return nil
}

// Message is the text shown to a CLI user for a ReadIncome/ParseIncome error.
func Message(err error) string {
	if errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrNegativeIncome) {
		return invalidInputMessage
	}
	return err.Error()
}
