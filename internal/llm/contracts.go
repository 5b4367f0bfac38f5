package llm

import (
	"context"

	"btp-catalogue/internal/extract"
)

// ExtractRequest carries one invoice to the AI provider. Either FileBytes
// (multimodal) or OCRText (text mode, cheaper) must be set.
type ExtractRequest struct {
	FileBytes    []byte
	MimeType     string
	OCRText      string
	FilenameHint string
}

// InvoiceEnvelope is the top-level shape the provider is constrained to
// return. Lines stay as raw maps so each one can go through the catalogue
// normalizer independently.
type InvoiceEnvelope struct {
	Fournisseur   string           `json:"fournisseur"`
	NumeroFacture string           `json:"numero_facture"`
	DateFacture   string           `json:"date_facture"`
	Langue        string           `json:"langue,omitempty"`
	Products      []map[string]any `json:"products"`
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractInvoice(ctx context.Context, req ExtractRequest) (*extract.Result, error)
	Model() string
}
