package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"btp-catalogue/internal/extract"
)

func TestEstimateCostUSD(t *testing.T) {
	usage := extract.TokenUsage{PromptTokens: 1_000_000, OutputTokens: 1_000_000}

	assert.InDelta(t, 2.80, EstimateCostUSD("gemini-2.5-flash", usage), 1e-9)
	assert.InDelta(t, 0.50, EstimateCostUSD("gemini-2.5-flash-lite", usage), 1e-9)
	assert.Zero(t, EstimateCostUSD("made-up-model", usage), "unknown model never fails the pipeline")
}

func TestKnownModel(t *testing.T) {
	assert.True(t, KnownModel("gemini-2.5-flash"))
	assert.False(t, KnownModel(""))
	assert.False(t, KnownModel("gpt-4o"))

	assert.Len(t, ModelsAsStringSlice(), 3)
}
