package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btp-catalogue/internal/common"
	"btp-catalogue/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "gemini-2.5-flash",
		Temperature: 0.1,
		Timeout:     5 * time.Second,
		MaxAttempts: 3,
		RetryBase:   time.Millisecond,
	}, nil)
}

func candidateResponse(t *testing.T, text string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]any{{"text": text}},
			}},
		},
		"usageMetadata": map[string]any{
			"promptTokenCount":     1200,
			"candidatesTokenCount": 340,
			"totalTokenCount":      1540,
		},
	})
	require.NoError(t, err)
	return b
}

const sampleEnvelope = `{
  "fournisseur": "Point P",
  "numero_facture": "F-2024-0117",
  "date_facture": "15/03/2024",
  "langue": "fr",
  "products": [
    {
      "designation_raw": "CIMENT CEM II/B-L 32,5 SAC 25KG",
      "designation_fr": "Ciment CEM II 32,5 sac 25 kg",
      "famille": "Ciment",
      "unite": "sac",
      "prix_brut_ht": 8.50,
      "remise_pct": 10,
      "prix_remise_ht": 7.65,
      "confidence": "high"
    },
    {
      "designation_raw": "TUBE PVC D100 2M",
      "designation_fr": "Tube PVC diamètre 100, 2 m",
      "famille": "Plomberie",
      "unite": "unité",
      "prix_brut_ht": "4,20 €",
      "prix_remise_ht": 4.20,
      "confidence": "high"
    },
    {
      "designation_raw": "   ",
      "designation_fr": "ligne illisible"
    }
  ]
}`

func TestExtractInvoiceSuccess(t *testing.T) {
	var gotPath, gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		// fenced output still parses
		_, _ = w.Write(candidateResponse(t, "```json\n"+sampleEnvelope+"\n```"))
	})

	res, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{
		FileBytes:    []byte("fake-jpeg"),
		MimeType:     "image/jpeg",
		FilenameHint: "facture.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	assert.Equal(t, "Point P", res.Fournisseur)
	assert.Equal(t, "F-2024-0117", res.NumeroFacture)
	assert.Equal(t, "fr", res.Langue)
	assert.Equal(t, 3, res.RawLineCount)
	require.Len(t, res.Products, 2, "blank designation line is dropped")

	ciment := res.Products[0]
	assert.Equal(t, "Point P", ciment.Fournisseur, "header fournisseur flows into lines")
	assert.Equal(t, "F-2024-0117", ciment.NumeroFacture)
	assert.Equal(t, "15/03/2024", ciment.DateFacture)
	assert.InDelta(t, 7.65, ciment.PrixRemiseHT, 1e-9)
	assert.InDelta(t, 9.2565, ciment.PrixTTCIVA21, 1e-9)

	tube := res.Products[1]
	assert.InDelta(t, 4.20, tube.PrixBrutHT, 1e-9, "locale price string coerced")

	assert.Equal(t, 1200, res.Usage.PromptTokens)
	assert.Equal(t, 340, res.Usage.OutputTokens)
	assert.Equal(t, 1540, res.Usage.TotalTokens)
}

func TestExtractInvoiceQuotaRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{
		FileBytes: []byte("x"), MimeType: "image/png",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRateLimited))
	assert.EqualValues(t, 3, calls.Load(), "quota errors retry up to MaxAttempts")
}

func TestExtractInvoiceQuotaRecoversMidway(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED"}}`))
			return
		}
		_, _ = w.Write(candidateResponse(t, sampleEnvelope))
	})

	res, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{
		FileBytes: []byte("x"), MimeType: "image/png",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
	assert.Len(t, res.Products, 2)
}

func TestExtractInvoiceAuthErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{
		FileBytes: []byte("x"), MimeType: "image/png",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidCredentials))
	assert.EqualValues(t, 1, calls.Load())
}

func TestExtractInvoiceRejectsOffSchemaOutput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(candidateResponse(t, `{"fournisseur":"X","products":[{"designation_raw":"a","designation_fr":"b","confidence":"medium"}]}`))
	})

	_, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{
		FileBytes: []byte("x"), MimeType: "image/png",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestRegistryReusesClientPerModel(t *testing.T) {
	r := NewRegistry(common.AIConfig{
		APIKey:       "k",
		DefaultModel: "gemini-2.5-flash",
	}, nil)

	a := r.ForModel("")
	b := r.ForModel("gemini-2.5-flash")
	assert.Same(t, a, b, "default resolves to the same cached client")
	assert.Equal(t, "gemini-2.5-flash", a.Model())

	lite := r.ForModel("gemini-2.5-flash-lite")
	assert.NotSame(t, a, lite)
	assert.Equal(t, "gemini-2.5-flash-lite", lite.Model())
}
