package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRate(t *testing.T) {
	r, err := ParseRate("0.055")
	require.NoError(t, err)
	assert.Equal(t, "5.5%", r.Percent())
	assert.Equal(t, "0.055", r.String())

	r, err = ParseRate(" 0.10 ")
	require.NoError(t, err)
	assert.Equal(t, "10%", r.Percent())
	assert.True(t, r.Equal(MustRate("0.1")))

	assert.Equal(t, "0%", MustRate("0").Percent())
}

func TestParseRate_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "-0.1", "1", "1.5"} {
		_, err := ParseRate(s)
		assert.ErrorIs(t, err, ErrInvalidRate, s)
	}
}

func TestPrice_ScenarioA(t *testing.T) {
	b := Price(1200, 2, MustRate("0.055"))

	assert.Equal(t, int64(2400), b.Subtotal)
	assert.True(t, b.Taxes.Equal(decimal.NewFromInt(132)))
	assert.True(t, b.Total.Equal(decimal.NewFromInt(2532)))
	assert.Equal(t, int64(132), b.TaxesRounded())
	assert.Equal(t, int64(2532), b.TotalRounded())
	assert.Equal(t, "2532.00", b.TotalText())
}

func TestPrice_TotalIsExactSum(t *testing.T) {
	rates := []Rate{MustRate("0"), MustRate("0.055"), MustRate("0.1"), MustRate("0.18")}
	for _, rate := range rates {
		for unit := int64(0); unit <= 3500; unit += 175 {
			for q := 1; q <= 12; q++ {
				b := Price(unit, q, rate)
				assert.Equal(t, unit*int64(q), b.Subtotal)

				sum := decimal.NewFromInt(b.Subtotal).Add(b.Taxes)
				assert.True(t, sum.Equal(b.Total))
				assert.True(t, b.Taxes.Equal(decimal.NewFromInt(b.Subtotal).Mul(rate.Decimal())))
			}
		}
	}
}

func TestPrice_NoIntermediateRounding(t *testing.T) {
	// 1500 × 0.055 = 82.5 exactly; the total keeps the half unit.
	b := Price(1500, 1, MustRate("0.055"))

	assert.Equal(t, "82.50", b.TaxesText())
	assert.Equal(t, "1582.50", b.TotalText())
	assert.Equal(t, int64(83), b.TaxesRounded())
	assert.Equal(t, int64(1583), b.TotalRounded())
}

func TestPrice_ThirdDecimalIsKept(t *testing.T) {
	// 1201 × 0.055 = 66.055
	b := Price(1201, 1, MustRate("0.055"))

	assert.Equal(t, "66.055", b.Taxes.String())
	assert.Equal(t, "1267.055", b.Total.String())
	assert.Equal(t, int64(66), b.TaxesRounded())
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"2.5", 3},
		{"-2.5", -3},
		{"4.9", 5},
		{"4.1", 4},
		{"7", 7},
		{"0", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Round(decimal.RequireFromString(c.in)), c.in)
	}
}
