package catalog

import (
	"math"
	"time"

	"btp-catalogue/constants"
	"btp-catalogue/internal/common"
)

// IVAMultiplier is the fixed Spanish VAT applied to discounted prices.
const IVAMultiplier = 1.21

// priceTolerance is the accepted relative error between the declared
// discounted price and brut × (1 − remise/100).
const priceTolerance = 0.02

// Product is the canonical catalogue line. Values are immutable once
// returned by Normalize; JSON tags match the wire and column names.
type Product struct {
	Fournisseur    string  `json:"fournisseur"`
	DesignationRaw string  `json:"designation_raw"`
	DesignationFR  string  `json:"designation_fr"`
	Famille        string  `json:"famille"`
	Unite          string  `json:"unite"`
	PrixBrutHT     float64 `json:"prix_brut_ht"`
	RemisePct      float64 `json:"remise_pct"`
	PrixRemiseHT   float64 `json:"prix_remise_ht"`
	PrixTTCIVA21   float64 `json:"prix_ttc_iva21"`
	NumeroFacture  string  `json:"numero_facture,omitempty"`
	DateFacture    string  `json:"date_facture,omitempty"`
	Confidence     string  `json:"confidence"`
}

// Normalize turns a raw extracted line into a canonical Product.
//
// Identity fields (fournisseur, designation_raw, designation_fr) are
// structural: missing or empty values fail with ErrValidation. Everything
// else is noisy AI output and degrades gracefully: unknown famille becomes
// Autre, unparseable prices coerce to zero, arithmetic mismatches flag the
// line low-confidence. The TTC price is always derived here, never trusted
// from input.
func Normalize(raw map[string]any) (Product, error) {
	fournisseur := CoerceString(raw["fournisseur"])
	designationRaw := CoerceString(raw["designation_raw"])
	designationFR := CoerceString(raw["designation_fr"])

	if fournisseur == "" {
		return Product{}, common.NewAppError("MISSING_FIELD", "fournisseur is required", common.ErrValidation)
	}
	if designationRaw == "" {
		return Product{}, common.NewAppError("MISSING_FIELD", "designation_raw is required", common.ErrValidation)
	}
	if designationFR == "" {
		return Product{}, common.NewAppError("MISSING_FIELD", "designation_fr is required", common.ErrValidation)
	}

	famille, _ := constants.CanonicalizeFamille(CoerceString(raw["famille"]))

	unite := CoerceString(raw["unite"])
	if unite == "" {
		unite = "unité"
	}

	brut := CoerceFloat(raw["prix_brut_ht"], 0)
	remise := CoerceFloat(raw["remise_pct"], 0)
	remiseHT := CoerceFloat(raw["prix_remise_ht"], 0)

	if brut < 0 {
		brut = 0
	}
	if remiseHT < 0 {
		remiseHT = 0
	}
	remise = math.Min(100, math.Max(0, remise))

	confidence := constants.ConfidenceHigh
	if c := CoerceString(raw["confidence"]); c == string(constants.ConfidenceLow) {
		confidence = constants.ConfidenceLow
	}

	// Arithmetic cross-check against the declared discount.
	if brut > 0 && remise > 0 {
		expected := brut * (1 - remise/100)
		switch {
		case remiseHT == 0:
			remiseHT = round4(expected)
		case expected <= 0:
			confidence = constants.ConfidenceLow
		case math.Abs(remiseHT-expected)/expected > priceTolerance:
			confidence = constants.ConfidenceLow
		}
	}

	// TTC is derived, whatever the extraction declared.
	var ttc float64
	if remiseHT > 0 {
		ttc = round4(remiseHT * IVAMultiplier)
	}

	if remiseHT == 0 {
		confidence = constants.ConfidenceLow
	}

	return Product{
		Fournisseur:    fournisseur,
		DesignationRaw: designationRaw,
		DesignationFR:  designationFR,
		Famille:        string(famille),
		Unite:          unite,
		PrixBrutHT:     round4(brut),
		RemisePct:      remise,
		PrixRemiseHT:   round4(remiseHT),
		PrixTTCIVA21:   ttc,
		NumeroFacture:  CoerceString(raw["numero_facture"]),
		DateFacture:    CoerceString(raw["date_facture"]),
		Confidence:     string(confidence),
	}, nil
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

var dateLayouts = []string{"02/01/2006", "02/01/06", "2006-01-02", "02-01-2006", "02.01.2006"}

// ParseDate parses the invoice date formats suppliers actually print.
// Returns nil for empty or unrecognized input.
func ParseDate(s string) *time.Time {
	s = CoerceString(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
