package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btp-catalogue/constants"
)

func validLine() map[string]any {
	return map[string]any{
		"fournisseur":     "BigMat",
		"designation_raw": "Sac ciment CEM II 25kg",
		"designation_fr":  "Sac de ciment CEM II 25kg",
		"famille":         "Ciment",
		"unite":           "sac",
		"prix_brut_ht":    10.0,
		"remise_pct":      20.0,
		"prix_remise_ht":  8.0,
	}
}

func TestNormalizeMissingIdentityFields(t *testing.T) {
	for _, field := range []string{"fournisseur", "designation_raw", "designation_fr"} {
		raw := validLine()
		raw[field] = "  "
		_, err := Normalize(raw)
		require.Error(t, err, "empty %s must be rejected", field)
	}
}

func TestNormalizeDerivesTTC(t *testing.T) {
	p, err := Normalize(validLine())
	require.NoError(t, err)
	assert.InDelta(t, 8.0*IVAMultiplier, p.PrixTTCIVA21, 1e-9)
	assert.Equal(t, string(constants.ConfidenceHigh), p.Confidence)
}

func TestNormalizeTTCNeverTrusted(t *testing.T) {
	raw := validLine()
	raw["prix_ttc_iva21"] = 999.0
	p, err := Normalize(raw)
	require.NoError(t, err)
	assert.InDelta(t, 9.68, p.PrixTTCIVA21, 1e-9)
}

func TestNormalizeAdoptsComputedDiscountPrice(t *testing.T) {
	raw := validLine()
	raw["prix_remise_ht"] = 0.0
	p, err := Normalize(raw)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, p.PrixRemiseHT, 1e-9)
	assert.Equal(t, string(constants.ConfidenceHigh), p.Confidence)
}

func TestNormalizeArithmeticMismatchLowersConfidence(t *testing.T) {
	raw := validLine()
	raw["prix_remise_ht"] = 8.5 // expected 8.0, error 6.25% > 2%
	p, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ConfidenceLow), p.Confidence)
}

func TestNormalizeWithinToleranceKeepsConfidence(t *testing.T) {
	raw := validLine()
	raw["prix_remise_ht"] = 8.1 // 1.25% off
	p, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ConfidenceHigh), p.Confidence)
}

func TestNormalizeZeroPriceForcesLow(t *testing.T) {
	raw := validLine()
	raw["prix_brut_ht"] = 0.0
	raw["remise_pct"] = 0.0
	raw["prix_remise_ht"] = 0.0
	p, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ConfidenceLow), p.Confidence)
	assert.Zero(t, p.PrixTTCIVA21)
}

func TestNormalizeFamilleAllowListClosure(t *testing.T) {
	for _, famille := range []any{"Tuberías", "random free text", nil, 42} {
		raw := validLine()
		raw["famille"] = famille
		p, err := Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, string(constants.FamilleAutre), p.Famille)
	}

	raw := validLine()
	raw["famille"] = "plomberie"
	p, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FamillePlomberie), p.Famille)
}

func TestNormalizeClampsDiscount(t *testing.T) {
	raw := validLine()
	raw["remise_pct"] = 250.0
	raw["prix_remise_ht"] = 8.0
	p, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.RemisePct)
}

func TestCoerceFloatTotalFunction(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{"", 0},
		{"N/A", 0},
		{"-", 0},
		{"12,50", 12.5},
		{"€45", 45},
		{"1.234,56 €", 1234.56},
		{"100", 100},
		{-3.14, -3.14},
		{map[string]any{}, 0},
		{[]any{}, 0},
		{true, 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		assert.NotPanics(t, func() {
			got := CoerceFloat(tc.in, 0)
			assert.InDelta(t, tc.want, got, 1e-9, "input %#v", tc.in)
		})
	}

	assert.InDelta(t, 7.5, CoerceFloat("nonsense", 7.5), 1e-9)
}

func TestParseDate(t *testing.T) {
	d := ParseDate("15/03/2026")
	require.NotNil(t, d)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 15, d.Day())

	assert.NotNil(t, ParseDate("2026-03-15"))
	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not a date"))
}

func TestRound4(t *testing.T) {
	assert.True(t, math.Abs(round4(1.23456)-1.2346) < 1e-9)
}
