package pipeline

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"btp-catalogue/constants"
	"btp-catalogue/internal/catalog"
	"btp-catalogue/internal/common"
	"btp-catalogue/internal/extract"
	"btp-catalogue/internal/health"
	"btp-catalogue/internal/imageprep"
	"btp-catalogue/internal/llm"
	"btp-catalogue/internal/repository"
	"btp-catalogue/internal/storage"
)

// extraction methods recorded on factures and job results
const (
	MethodFacturX = "facturx"
	MethodAI      = "ai"
)

// ProcessInput is one uploaded invoice.
type ProcessInput struct {
	Bytes    []byte
	Filename string
	Model    string
	Source   string
	UserID   int
}

// ProcessResult is the job payload handed back on completion.
type ProcessResult struct {
	Fournisseur   string  `json:"fournisseur,omitempty"`
	NumeroFacture string  `json:"numero_facture,omitempty"`
	DateFacture   string  `json:"date_facture,omitempty"`
	Langue        string  `json:"langue,omitempty"`
	NbProduits    int     `json:"nb_produits"`
	Saved         int     `json:"saved"`
	HistoryErrors int     `json:"historique_errors,omitempty"`
	Method        string  `json:"method"`
	Model         string  `json:"model,omitempty"`
	CoutUSD       float64 `json:"cout_usd,omitempty"`
	PromptTokens  int     `json:"prompt_tokens,omitempty"`
	OutputTokens  int     `json:"output_tokens,omitempty"`
	ArchiveRef    string  `json:"archive_ref,omitempty"`
}

// ExtractorRegistry hands out one AI client per model id.
type ExtractorRegistry interface {
	ForModel(model string) llm.FieldExtractor
}

// Processor runs the extraction pipeline: deterministic Factur-X first, AI
// fallback under a concurrency cap, then catalogue upsert and archival in
// parallel, then the facture bookkeeping record.
type Processor struct {
	facturx  *extract.FacturX
	registry ExtractorRegistry
	products repository.ProductRepository
	factures repository.FactureRepository
	archive  storage.ObjectStore // nil disables archival
	health   *health.ProviderHealth
	sem      *semaphore.Weighted
	timeout  time.Duration
	log      *zap.SugaredLogger
}

func NewProcessor(
	facturx *extract.FacturX,
	registry ExtractorRegistry,
	products repository.ProductRepository,
	factures repository.FactureRepository,
	archive storage.ObjectStore,
	providerHealth *health.ProviderHealth,
	maxConcurrentAI int64,
	timeout time.Duration,
	log *zap.SugaredLogger,
) *Processor {
	if maxConcurrentAI <= 0 {
		maxConcurrentAI = 3
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Processor{
		facturx:  facturx,
		registry: registry,
		products: products,
		factures: factures,
		archive:  archive,
		health:   providerHealth,
		sem:      semaphore.NewWeighted(maxConcurrentAI),
		timeout:  timeout,
		log:      log,
	}
}

// ProcessFile runs one invoice end to end. Errors returned here carry the
// pipeline sentinels; callers translate them with common.UserSafeMessage.
func (p *Processor) ProcessFile(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	mime := extract.DetectMime(in.Filename, in.Bytes)
	p.log.Infow("pipeline.start",
		"fichier", in.Filename, "mime", mime, "bytes", len(in.Bytes),
		"source", in.Source, "user_id", in.UserID)

	res, method, modelName, err := p.extractProducts(ctx, in, mime)
	if err != nil {
		p.recordFailure(ctx, in, mime, modelName, err)
		return nil, err
	}

	if len(res.Products) == 0 {
		err := common.NewAppError("NO_PRODUCTS", "extraction yielded zero lines", common.ErrNoProducts)
		p.recordFailure(ctx, in, mime, modelName, err)
		return nil, err
	}

	var (
		stats      repository.UpsertStats
		archiveRef string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var uErr error
		stats, uErr = p.products.UpsertBatch(gctx, in.UserID, in.Source, res.Products)
		return uErr
	})
	g.Go(func() error {
		// best effort: a failed archive never fails the invoice
		if p.archive == nil {
			return nil
		}
		key := storage.ArchiveKey(in.Filename, in.Bytes, time.Now())
		ref, aErr := p.archive.Upload(gctx, key, mime, in.Bytes)
		if aErr != nil {
			p.log.Warnw("pipeline.archive_failed", "fichier", in.Filename, "error", aErr)
			return nil
		}
		archiveRef = ref
		return nil
	})
	if err := g.Wait(); err != nil {
		p.recordFailure(ctx, in, mime, modelName, err)
		return nil, err
	}

	cost := 0.0
	if method == MethodAI {
		cost = llm.EstimateCostUSD(modelName, res.Usage)
	}

	p.recordFacture(ctx, in, mime, repository.FactureInput{
		Fournisseur:   res.Fournisseur,
		NumeroFacture: res.NumeroFacture,
		DateFacture:   catalog.ParseDate(res.DateFacture),
		NbProduits:    stats.Saved,
		Statut:        string(constants.FactureStatusProcessed),
		ModelName:     modelName,
		CoutUSD:       cost,
		PromptTokens:  res.Usage.PromptTokens,
		OutputTokens:  res.Usage.OutputTokens,
		Langue:        res.Langue,
		ArchiveRef:    archiveRef,
	})

	p.log.Infow("pipeline.ok",
		"fichier", in.Filename, "method", method,
		"products", len(res.Products), "saved", stats.Saved,
		"history_errors", stats.HistoryErrors, "cost_usd", cost,
		"elapsed_ms", time.Since(start).Milliseconds())

	return &ProcessResult{
		Fournisseur:   res.Fournisseur,
		NumeroFacture: res.NumeroFacture,
		DateFacture:   res.DateFacture,
		Langue:        res.Langue,
		NbProduits:    len(res.Products),
		Saved:         stats.Saved,
		HistoryErrors: stats.HistoryErrors,
		Method:        method,
		Model:         modelName,
		CoutUSD:       cost,
		PromptTokens:  res.Usage.PromptTokens,
		OutputTokens:  res.Usage.OutputTokens,
		ArchiveRef:    archiveRef,
	}, nil
}

// extractProducts tries Factur-X for PDFs, then falls back to the AI client
// under the concurrency semaphore and the provider breaker.
func (p *Processor) extractProducts(ctx context.Context, in ProcessInput, mime string) (*extract.Result, string, string, error) {
	if mime == constants.MimePDF {
		res, err := p.facturx.Extract(in.Bytes)
		if err == nil {
			p.log.Infow("pipeline.facturx.ok", "fichier", in.Filename, "products", len(res.Products))
			return res, MethodFacturX, "", nil
		}
		if !errors.Is(err, extract.ErrNotFacturX) {
			return nil, MethodFacturX, "", err
		}
		p.log.Debugw("pipeline.facturx.not_applicable", "fichier", in.Filename)
	}

	data, sendMime := in.Bytes, mime
	if constants.IsImageMime(mime) {
		data, sendMime = imageprep.Clean(in.Bytes, mime, p.log)
	}

	client := p.registry.ForModel(in.Model)
	modelName := client.Model()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, MethodAI, modelName, common.NewAppError("PIPELINE_TIMEOUT", "queue wait exceeded deadline", common.ErrProviderTimeout)
	}
	defer p.sem.Release(1)

	res, err := client.ExtractInvoice(ctx, llm.ExtractRequest{
		FileBytes:    data,
		MimeType:     sendMime,
		FilenameHint: in.Filename,
	})
	if err != nil {
		if p.health != nil && p.health.RecordFailure() {
			p.log.Errorw("pipeline.provider_degraded", "model", modelName)
		}
		return nil, MethodAI, modelName, err
	}
	if p.health != nil {
		p.health.RecordSuccess()
	}
	return res, MethodAI, modelName, nil
}

// recordFailure writes the errored facture row with the user-safe message.
func (p *Processor) recordFailure(ctx context.Context, in ProcessInput, mime, modelName string, cause error) {
	p.log.Errorw("pipeline.failed", "fichier", in.Filename, "error", cause)
	p.recordFacture(ctx, in, mime, repository.FactureInput{
		Statut:    string(constants.FactureStatusError),
		Erreur:    common.UserSafeMessage(cause),
		ModelName: modelName,
	})
}

// recordFacture fills the shared columns and saves; bookkeeping failures are
// logged, never propagated. The row must land even when the failure being
// recorded is the pipeline deadline itself, so the write detaches from the
// caller's cancellation and runs on its own short deadline.
func (p *Processor) recordFacture(ctx context.Context, in ProcessInput, mime string, f repository.FactureInput) {
	f.UserID = in.UserID
	f.Fichier = in.Filename
	f.MimeType = mime
	f.Source = in.Source
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if _, err := p.factures.Create(ctx, f); err != nil {
		p.log.Warnw("pipeline.facture_record_failed", "fichier", in.Filename, "error", err)
	}
}
