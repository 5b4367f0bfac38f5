package llm

import "btp-catalogue/internal/extract"

// ModelPricing is USD per million tokens.
type ModelPricing struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

var pricingTable = map[string]ModelPricing{
	"gemini-2.5-flash":      {InputPerMTok: 0.30, OutputPerMTok: 2.50},
	"gemini-2.5-flash-lite": {InputPerMTok: 0.10, OutputPerMTok: 0.40},
	"gemini-2.5-pro":        {InputPerMTok: 1.25, OutputPerMTok: 10.00},
}

// KnownModel reports whether the id is in the pricing table, which doubles
// as the allow-list for the model override on upload.
func KnownModel(id string) bool {
	_, ok := pricingTable[id]
	return ok
}

// ModelsAsStringSlice returns the allowed model ids, for error messages.
func ModelsAsStringSlice() []string {
	out := make([]string, 0, len(pricingTable))
	for id := range pricingTable {
		out = append(out, id)
	}
	return out
}

// EstimateCostUSD converts token usage to an approximate dollar cost.
// Unknown models cost zero rather than failing the pipeline.
func EstimateCostUSD(model string, usage extract.TokenUsage) float64 {
	p, ok := pricingTable[model]
	if !ok {
		return 0
	}
	return float64(usage.PromptTokens)/1e6*p.InputPerMTok +
		float64(usage.OutputTokens)/1e6*p.OutputPerMTok
}
