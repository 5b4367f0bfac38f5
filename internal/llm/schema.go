package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is sent to the provider as a structured-output constraint
// and used locally to validate what comes back. Confidence and language are
// hard enums; famille is deliberately left as a plain string, since off-list
// values are soft errors the normalizer collapses to "Autre", not a reason
// to reject the whole batch.
func BuildInvoiceJSONSchema(familles []string) map[string]any {
	lineProps := map[string]any{
		"fournisseur":     map[string]any{"type": "string"},
		"designation_raw": map[string]any{"type": "string", "minLength": 1},
		"designation_fr":  map[string]any{"type": "string", "minLength": 1},
		"famille":         map[string]any{"type": "string"},
		"unite":           map[string]any{"type": "string"},
		"prix_brut_ht":    numberProp(),
		"remise_pct":      numberProp(),
		"prix_remise_ht":  numberProp(),
		"prix_ttc_iva21":  numberProp(),
		"confidence": map[string]any{
			"type": "string",
			"enum": []string{"high", "low"},
		},
	}
	_ = familles // enumerated in the prompt, enforced by normalization

	line := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           lineProps,
		"required":             []string{"designation_raw", "designation_fr"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"fournisseur":    map[string]any{"type": "string"},
			"numero_facture": map[string]any{"type": "string"},
			"date_facture":   map[string]any{"type": "string"},
			"langue": map[string]any{
				"type": "string",
				"enum": []string{"fr", "es", "ca", "en"},
			},
			"products": map[string]any{
				"type":  "array",
				"items": line,
			},
		},
		"required": []string{"fournisseur", "products"},
	}
}

func numberProp() map[string]any {
	return map[string]any{"type": []string{"number", "string", "null"}}
}

// ValidateJSONAgainstSchema validates raw JSON output against the schema map.
func ValidateJSONAgainstSchema(schema map[string]any, doc []byte) error {
	sb, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("invoice.schema.json", bytes.NewReader(sb)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("invoice.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("output is not valid JSON: %w", err)
	}
	return compiled.Validate(v)
}
