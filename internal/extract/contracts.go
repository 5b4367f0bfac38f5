package extract

import (
	"btp-catalogue/internal/catalog"
)

// TokenUsage is the provider-reported token accounting for one extraction.
// Deterministic extraction always reports zeros.
type TokenUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Result is what any extractor hands the pipeline: normalized product lines
// plus invoice-level metadata.
type Result struct {
	Products      []catalog.Product
	Fournisseur   string
	NumeroFacture string
	DateFacture   string
	Langue        string
	RawLineCount  int
	Usage         TokenUsage
}
