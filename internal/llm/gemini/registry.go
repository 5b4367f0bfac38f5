package gemini

import (
	"sync"

	"go.uber.org/zap"

	"btp-catalogue/internal/common"
	"btp-catalogue/internal/llm"
)

// Registry hands out one lazily created client per model id, so an upload
// that overrides the model does not rebuild HTTP clients on every request.
type Registry struct {
	mu      sync.Mutex
	cfg     common.AIConfig
	log     *zap.SugaredLogger
	clients map[string]*Client
}

func NewRegistry(cfg common.AIConfig, log *zap.SugaredLogger) *Registry {
	return &Registry{
		cfg:     cfg,
		log:     log,
		clients: make(map[string]*Client),
	}
}

// ForModel returns the client bound to the given model, creating it on first
// use. An empty model id falls back to the configured default.
func (r *Registry) ForModel(model string) llm.FieldExtractor {
	if model == "" {
		model = r.cfg.DefaultModel
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[model]; ok {
		return c
	}
	c := NewClient(Config{
		APIKey:      r.cfg.APIKey,
		BaseURL:     r.cfg.BaseURL,
		Model:       model,
		Temperature: r.cfg.Temperature,
		Timeout:     r.cfg.Timeout,
	}, r.log)
	r.clients[model] = c
	return c
}
