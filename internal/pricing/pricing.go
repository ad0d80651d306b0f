// Package pricing derives the subtotal/tax/total breakdown of a booking.
//
// Amounts are whole currency units. Taxes and totals are kept as exact
// decimals; rounding to a whole unit is a display concern and the rounded
// values are never fed back into arithmetic.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("tax rate must be a decimal fraction in [0, 1)")

var hundred = decimal.NewFromInt(100)

// Rate is an exact decimal tax fraction such as 0.055.
type Rate struct {
	d decimal.Decimal
}

// ParseRate parses decimal text ("0.055", "0.10") without float rounding.
func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rate{}, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	if d.IsNegative() || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Rate{}, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	return Rate{d: d}, nil
}

func MustRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rate) Decimal() decimal.Decimal {
	return r.d
}

// Percent renders the rate for labels, e.g. "5.5%".
func (r Rate) Percent() string {
	return r.d.Mul(hundred).String() + "%"
}

func (r Rate) String() string {
	return r.d.String()
}

func (r Rate) Equal(o Rate) bool {
	return r.d.Equal(o.d)
}

// Breakdown is derived on every change of quantity or price and never cached.
type Breakdown struct {
	UnitPrice int64
	Quantity  int
	Rate      Rate
	Subtotal  int64
	Taxes     decimal.Decimal
	Total     decimal.Decimal
}

// Price computes subtotal = unitPrice × quantity, taxes = subtotal × rate and
// total = subtotal + taxes, all exact.
func Price(unitPrice int64, quantity int, rate Rate) Breakdown {
	subtotal := unitPrice * int64(quantity)
	sub := decimal.NewFromInt(subtotal)
	taxes := sub.Mul(rate.d)
	return Breakdown{
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Rate:      rate,
		Subtotal:  subtotal,
		Taxes:     taxes,
		Total:     sub.Add(taxes),
	}
}

func (b Breakdown) TaxesRounded() int64 {
	return Round(b.Taxes)
}

func (b Breakdown) TotalRounded() int64 {
	return Round(b.Total)
}

// TaxesText and TotalText render the exact values to two decimals.
func (b Breakdown) TaxesText() string {
	return b.Taxes.StringFixed(2)
}

func (b Breakdown) TotalText() string {
	return b.Total.StringFixed(2)
}

// Round rounds half away from zero to a whole currency unit.
func Round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
