package pipeline

import (
	"bytes"
	"compress/zlib"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"btp-catalogue/constants"
	"btp-catalogue/gen/ent"
	"btp-catalogue/internal/catalog"
	"btp-catalogue/internal/common"
	"btp-catalogue/internal/extract"
	"btp-catalogue/internal/health"
	"btp-catalogue/internal/llm"
	"btp-catalogue/internal/repository"
	"btp-catalogue/internal/storage"
)

// --- fakes ---

type fakeExtractor struct {
	res   *extract.Result
	err   error
	calls int
}

func (f *fakeExtractor) ExtractInvoice(_ context.Context, _ llm.ExtractRequest) (*extract.Result, error) {
	f.calls++
	return f.res, f.err
}

func (f *fakeExtractor) Model() string { return "gemini-2.5-flash" }

type fakeRegistry struct{ ex *fakeExtractor }

func (f *fakeRegistry) ForModel(string) llm.FieldExtractor { return f.ex }

type fakeProducts struct {
	stats    repository.UpsertStats
	err      error
	upserted []catalog.Product
	source   string
	userID   int
}

func (f *fakeProducts) UpsertBatch(_ context.Context, userID int, source string, products []catalog.Product) (repository.UpsertStats, error) {
	f.upserted = products
	f.source = source
	f.userID = userID
	return f.stats, f.err
}

func (f *fakeProducts) GetCatalogue(context.Context, repository.CatalogueFilter) (*repository.CataloguePage, error) {
	return &repository.CataloguePage{}, nil
}
func (f *fakeProducts) ListAll(context.Context, int) ([]repository.CatalogueProduct, error) {
	return nil, nil
}
func (f *fakeProducts) ComparePrices(context.Context, int, string, bool) ([]repository.Offer, error) {
	return nil, nil
}
func (f *fakeProducts) Stats(context.Context, *int) (*repository.CatalogueStats, error) {
	return &repository.CatalogueStats{}, nil
}
func (f *fakeProducts) Reset(context.Context, *int) (int64, error) { return 0, nil }

type fakeFactures struct {
	records []repository.FactureInput
}

func (f *fakeFactures) Create(_ context.Context, in repository.FactureInput) (*ent.Facture, error) {
	f.records = append(f.records, in)
	return nil, nil
}

func (f *fakeFactures) ListByUser(context.Context, int, int) ([]*ent.Facture, error) {
	return nil, nil
}

type fakeArchive struct {
	ref  string
	err  error
	keys []string
}

func (f *fakeArchive) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	f.keys = append(f.keys, key)
	return f.ref, f.err
}

func (f *fakeArchive) TemporaryURL(string) (string, error) { return "", nil }

// --- helpers ---

func aiResult(n int) *extract.Result {
	products := make([]catalog.Product, n)
	for i := range products {
		products[i] = catalog.Product{
			Fournisseur:    "Point P",
			DesignationRaw: "CIMENT",
			DesignationFR:  "Ciment",
			Famille:        "Ciment",
			PrixRemiseHT:   7.65,
			Confidence:     "high",
		}
	}
	return &extract.Result{
		Products:      products,
		Fournisseur:   "Point P",
		NumeroFacture: "F-1",
		DateFacture:   "15/03/2024",
		Langue:        "fr",
		RawLineCount:  n,
		Usage:         extract.TokenUsage{PromptTokens: 1000, OutputTokens: 500, TotalTokens: 1500},
	}
}

type env struct {
	proc     *Processor
	ex       *fakeExtractor
	products *fakeProducts
	factures *fakeFactures
	archive  *fakeArchive
	breaker  *health.ProviderHealth
}

func newEnv(ex *fakeExtractor, archive *fakeArchive) *env {
	log := zap.NewNop().Sugar()
	e := &env{
		ex:       ex,
		products: &fakeProducts{stats: repository.UpsertStats{Saved: 1}},
		factures: &fakeFactures{},
		archive:  archive,
		breaker:  health.NewProviderHealth(5, log),
	}
	var store storage.ObjectStore
	if archive != nil {
		store = archive
	}
	e.proc = NewProcessor(
		extract.NewFacturX(log),
		&fakeRegistry{ex: ex},
		e.products,
		e.factures,
		store,
		e.breaker,
		3,
		time.Minute,
		log,
	)
	return e
}

const minimalCII = `<CrossIndustryInvoice>
<ExchangedDocument><ID>FA-7</ID></ExchangedDocument>
<SupplyChainTradeTransaction>
<IncludedSupplyChainTradeLineItem>
<SpecifiedTradeProduct><Name>Plaque BA13</Name></SpecifiedTradeProduct>
<SpecifiedLineTradeAgreement><NetPriceProductTradePrice><ChargeAmount>3.10</ChargeAmount></NetPriceProductTradePrice></SpecifiedLineTradeAgreement>
<SpecifiedLineTradeDelivery><BilledQuantity>5</BilledQuantity></SpecifiedLineTradeDelivery>
</IncludedSupplyChainTradeLineItem>
<ApplicableHeaderTradeAgreement><SellerTradeParty><Name>Gedimat</Name></SellerTradeParty></ApplicableHeaderTradeAgreement>
</SupplyChainTradeTransaction>
</CrossIndustryInvoice>`

func facturxPDF(t *testing.T) []byte {
	t.Helper()
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write([]byte(minimalCII))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var pdf bytes.Buffer
	pdf.WriteString("%PDF-1.7\n1 0 obj\n<< /Filter /FlateDecode >>\nstream\n")
	pdf.Write(compressed.Bytes())
	pdf.WriteString("\nendstream\nendobj\n%%EOF\n")
	return pdf.Bytes()
}

// --- tests ---

func TestFacturXPDFBypassesAI(t *testing.T) {
	ex := &fakeExtractor{res: aiResult(1)}
	e := newEnv(ex, nil)

	res, err := e.proc.ProcessFile(context.Background(), ProcessInput{
		Bytes: facturxPDF(t), Filename: "facture.pdf", Source: "pc", UserID: 1,
	})
	require.NoError(t, err)

	assert.Zero(t, ex.calls, "deterministic path must not hit the AI provider")
	assert.Equal(t, MethodFacturX, res.Method)
	assert.Equal(t, "Gedimat", res.Fournisseur)
	assert.Zero(t, res.CoutUSD)
	require.Len(t, e.factures.records, 1)
	assert.Equal(t, string(constants.FactureStatusProcessed), e.factures.records[0].Statut)
}

func TestAISuccessPersistsAndArchives(t *testing.T) {
	ex := &fakeExtractor{res: aiResult(3)}
	archive := &fakeArchive{ref: "gs://bucket/2024/03/abc_photo.jpg"}
	e := newEnv(ex, archive)
	e.products.stats = repository.UpsertStats{Saved: 3, HistoryErrors: 1}

	res, err := e.proc.ProcessFile(context.Background(), ProcessInput{
		Bytes: []byte{0xFF, 0xD8, 0xFF, 0x01}, Filename: "photo.jpg", Source: "mobile", UserID: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, ex.calls)
	assert.Equal(t, MethodAI, res.Method)
	assert.Equal(t, 3, res.Saved)
	assert.Equal(t, 1, res.HistoryErrors)
	assert.Equal(t, "gs://bucket/2024/03/abc_photo.jpg", res.ArchiveRef)
	assert.Greater(t, res.CoutUSD, 0.0, "token usage priced for the AI path")

	assert.Equal(t, 9, e.products.userID)
	assert.Equal(t, "mobile", e.products.source)
	require.Len(t, archive.keys, 1)

	require.Len(t, e.factures.records, 1)
	rec := e.factures.records[0]
	assert.Equal(t, string(constants.FactureStatusProcessed), rec.Statut)
	assert.Equal(t, "gemini-2.5-flash", rec.ModelName)
	assert.Equal(t, 3, rec.NbProduits)
}

func TestArchiveFailureIsNonFatal(t *testing.T) {
	ex := &fakeExtractor{res: aiResult(1)}
	archive := &fakeArchive{err: errors.New("bucket unavailable")}
	e := newEnv(ex, archive)

	res, err := e.proc.ProcessFile(context.Background(), ProcessInput{
		Bytes: []byte{0xFF, 0xD8, 0xFF, 0x01}, Filename: "photo.jpg", Source: "pc", UserID: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, res.ArchiveRef)
	assert.Equal(t, 1, res.Saved)
}

func TestZeroProductsIsAnError(t *testing.T) {
	ex := &fakeExtractor{res: aiResult(0)}
	e := newEnv(ex, nil)

	_, err := e.proc.ProcessFile(context.Background(), ProcessInput{
		Bytes: []byte{0xFF, 0xD8, 0xFF, 0x01}, Filename: "photo.jpg", Source: "pc", UserID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoProducts))

	require.Len(t, e.factures.records, 1)
	rec := e.factures.records[0]
	assert.Equal(t, string(constants.FactureStatusError), rec.Statut)
	assert.Equal(t, common.MsgNoProducts, rec.Erreur)
}

func TestProviderErrorTranslatesToUserSafeMessage(t *testing.T) {
	ex := &fakeExtractor{err: common.NewAppError("RATE_LIMITED", "quota", common.ErrRateLimited)}
	e := newEnv(ex, nil)

	_, err := e.proc.ProcessFile(context.Background(), ProcessInput{
		Bytes: []byte{0xFF, 0xD8, 0xFF, 0x01}, Filename: "photo.jpg", Source: "pc", UserID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRateLimited))

	require.Len(t, e.factures.records, 1)
	assert.Equal(t, common.MsgQuotaExceeded, e.factures.records[0].Erreur)
	assert.Equal(t, 1, e.breaker.ConsecutiveFailures())
}

// stalledExtractor holds the request open until the pipeline deadline fires,
// then reports the timeout, like a provider call cut off mid-flight.
type stalledExtractor struct{}

func (stalledExtractor) ExtractInvoice(ctx context.Context, _ llm.ExtractRequest) (*extract.Result, error) {
	<-ctx.Done()
	return nil, common.NewAppError("PROVIDER_TIMEOUT", "provider call cut off", common.ErrProviderTimeout)
}

func (stalledExtractor) Model() string { return "gemini-2.5-flash" }

type staticRegistry struct{ ex llm.FieldExtractor }

func (r staticRegistry) ForModel(string) llm.FieldExtractor { return r.ex }

// liveCtxFactures refuses writes on an expired context, the way a real
// database round trip would.
type liveCtxFactures struct {
	records []repository.FactureInput
}

func (f *liveCtxFactures) Create(ctx context.Context, in repository.FactureInput) (*ent.Facture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.records = append(f.records, in)
	return nil, nil
}

func (f *liveCtxFactures) ListByUser(context.Context, int, int) ([]*ent.Facture, error) {
	return nil, nil
}

func TestTimedOutPipelineStillRecordsFacture(t *testing.T) {
	log := zap.NewNop().Sugar()
	factures := &liveCtxFactures{}
	proc := NewProcessor(
		extract.NewFacturX(log),
		staticRegistry{ex: stalledExtractor{}},
		&fakeProducts{},
		factures,
		nil,
		health.NewProviderHealth(5, log),
		1,
		50*time.Millisecond,
		log,
	)

	_, err := proc.ProcessFile(context.Background(), ProcessInput{
		Bytes: []byte{0xFF, 0xD8, 0xFF, 0x01}, Filename: "photo.jpg", Source: "pc", UserID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrProviderTimeout))

	// one facture row per upload, success or not, even when the pipeline
	// context already expired
	require.Len(t, factures.records, 1)
	rec := factures.records[0]
	assert.Equal(t, string(constants.FactureStatusError), rec.Statut)
	assert.Equal(t, common.MsgTimeout, rec.Erreur)
}

func TestRepeatedProviderFailuresTripBreaker(t *testing.T) {
	ex := &fakeExtractor{err: common.NewAppError("RATE_LIMITED", "quota", common.ErrRateLimited)}
	e := newEnv(ex, nil)

	for i := 0; i < 5; i++ {
		_, err := e.proc.ProcessFile(context.Background(), ProcessInput{
			Bytes: []byte{0xFF, 0xD8, 0xFF, 0x01}, Filename: "photo.jpg", Source: "pc", UserID: 1,
		})
		require.Error(t, err)
	}
	// 5th failure tripped and reset the counter
	assert.Zero(t, e.breaker.ConsecutiveFailures())
}
