package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btp-catalogue/constants"
)

func invoiceSchema(t *testing.T) map[string]any {
	t.Helper()
	return BuildInvoiceJSONSchema(constants.FamillesAsStringSlice())
}

func TestValidateAcceptsWellFormedEnvelope(t *testing.T) {
	doc := `{
	  "fournisseur": "BigMat",
	  "numero_facture": "2024-117",
	  "date_facture": "02/05/2024",
	  "langue": "es",
	  "products": [
	    {"designation_raw": "Saco cemento", "designation_fr": "Sac de ciment",
	     "famille": "Ciment", "prix_brut_ht": 7.9, "remise_pct": "5",
	     "prix_remise_ht": null, "confidence": "low"}
	  ]
	}`
	assert.NoError(t, ValidateJSONAgainstSchema(invoiceSchema(t), []byte(doc)))
}

func TestValidateRejectsBadEnvelopes(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing fournisseur", `{"products":[]}`},
		{"missing products", `{"fournisseur":"X"}`},
		{"bad language", `{"fournisseur":"X","langue":"de","products":[]}`},
		{"bad confidence", `{"fournisseur":"X","products":[{"designation_raw":"a","designation_fr":"b","confidence":"medium"}]}`},
		{"empty designation", `{"fournisseur":"X","products":[{"designation_raw":"","designation_fr":"b"}]}`},
		{"unknown line field", `{"fournisseur":"X","products":[{"designation_raw":"a","designation_fr":"b","extra":1}]}`},
		{"not json", `products: []`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, ValidateJSONAgainstSchema(invoiceSchema(t), []byte(tc.doc)))
		})
	}
}

func TestSystemPromptEnumeratesFamilles(t *testing.T) {
	p := BuildSystemPrompt(constants.FamillesAsStringSlice())
	for _, f := range constants.FamillesAsStringSlice() {
		assert.Contains(t, p, f)
	}
	assert.Contains(t, p, "1.21")
}
