package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"btp-catalogue/constants"
	"btp-catalogue/gen/ent"
	"btp-catalogue/internal/catalog"
	"btp-catalogue/internal/common"
	"btp-catalogue/internal/export"
	"btp-catalogue/internal/extract"
	"btp-catalogue/internal/health"
	"btp-catalogue/internal/llm"
	"btp-catalogue/internal/pipeline"
	"btp-catalogue/internal/repository"
)

const testSecret = "test-secret"

// --- fakes ---

type fakeJobs struct {
	mu        sync.Mutex
	started   []string
	completed []uuid.UUID
	failed    map[uuid.UUID]string
	getJob    *ent.Job
	getErr    error
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{failed: map[uuid.UUID]string{}}
}

func (f *fakeJobs) Start(_ context.Context, _ int, fichier string) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, fichier)
	return &ent.Job{ID: uuid.New(), Status: string(constants.JobStatusProcessing)}, nil
}

func (f *fakeJobs) Complete(_ context.Context, id uuid.UUID, _ json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, id)
	return nil
}

func (f *fakeJobs) Fail(_ context.Context, id uuid.UUID, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[id] = msg
	return nil
}

func (f *fakeJobs) startedFiles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.started...)
}

func (f *fakeJobs) Get(context.Context, uuid.UUID, int) (*ent.Job, error) {
	return f.getJob, f.getErr
}

type fakeProducts struct {
	stats     repository.UpsertStats
	resetErr  error
	resets    []*int
	lastBatch []catalog.Product
}

func (f *fakeProducts) UpsertBatch(_ context.Context, _ int, _ string, products []catalog.Product) (repository.UpsertStats, error) {
	f.lastBatch = products
	if f.stats == (repository.UpsertStats{}) {
		f.stats = repository.UpsertStats{Saved: len(products)}
	}
	return f.stats, nil
}

func (f *fakeProducts) GetCatalogue(context.Context, repository.CatalogueFilter) (*repository.CataloguePage, error) {
	return &repository.CataloguePage{Products: []repository.CatalogueProduct{}}, nil
}
func (f *fakeProducts) ListAll(context.Context, int) ([]repository.CatalogueProduct, error) {
	return nil, nil
}
func (f *fakeProducts) ComparePrices(context.Context, int, string, bool) ([]repository.Offer, error) {
	return nil, nil
}
func (f *fakeProducts) Stats(context.Context, *int) (*repository.CatalogueStats, error) {
	return &repository.CatalogueStats{ByFamille: map[string]int{}}, nil
}
func (f *fakeProducts) Reset(_ context.Context, userID *int) (int64, error) {
	f.resets = append(f.resets, userID)
	return 3, f.resetErr
}

type fakeFactures struct{}

func (f *fakeFactures) Create(context.Context, repository.FactureInput) (*ent.Facture, error) {
	return nil, nil
}
func (f *fakeFactures) ListByUser(context.Context, int, int) ([]*ent.Facture, error) {
	return nil, nil
}

type fakeUsers struct{}

func (f *fakeUsers) Create(context.Context, string, string, string, string) (*ent.User, error) {
	return nil, nil
}
func (f *fakeUsers) GetByEmail(context.Context, string) (*ent.User, error) { return nil, nil }
func (f *fakeUsers) GetByID(context.Context, int) (*ent.User, error) {
	return &ent.User{ID: 1, Email: "chef@chantier.fr", Role: constants.RoleUser}, nil
}

type fakeExtractor struct{}

func (fakeExtractor) ExtractInvoice(context.Context, llm.ExtractRequest) (*extract.Result, error) {
	return &extract.Result{
		Products: []catalog.Product{{
			Fournisseur: "Point P", DesignationRaw: "CIMENT", DesignationFR: "Ciment",
			Famille: "Ciment", PrixRemiseHT: 7.65, Confidence: "high",
		}},
		Fournisseur: "Point P",
	}, nil
}
func (fakeExtractor) Model() string { return "gemini-2.5-flash" }

type fakeRegistry struct{}

func (fakeRegistry) ForModel(string) llm.FieldExtractor { return fakeExtractor{} }

// --- harness ---

type harness struct {
	svc      *Service
	router   *gin.Engine
	jobs     *fakeJobs
	products *fakeProducts
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := zap.NewNop().Sugar()
	cfg := &common.Config{}
	cfg.Server.JWTSecret = testSecret
	cfg.Server.CORSOrigins = "*"

	jobs := newFakeJobs()
	products := &fakeProducts{}
	factures := &fakeFactures{}

	proc := pipeline.NewProcessor(
		extract.NewFacturX(log),
		fakeRegistry{},
		products,
		factures,
		nil,
		health.NewProviderHealth(5, log),
		3,
		time.Minute,
		log,
	)
	exports := export.NewService(products, factures, log)

	svc := NewService(cfg, nil, proc, products, factures, jobs, &fakeUsers{},
		exports, health.NewProviderHealth(5, log), log)
	return &harness{svc: svc, router: svc.Router(), jobs: jobs, products: products}
}

func (h *harness) do(t *testing.T, req *http.Request, userID int, role string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := SignToken(testSecret, userID, role, time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func multipartUpload(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/process", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// --- tests ---

func TestMissingTokenIsUnauthorized(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadRejectsOversizeBeforeExtraction(t *testing.T) {
	h := newHarness(t)
	big := bytes.Repeat([]byte("x"), constants.MaxUploadBytes+1)
	req := multipartUpload(t, "facture.pdf", big, nil)

	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, h.jobs.startedFiles(), "no job must be created for a rejected upload")
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	h := newHarness(t)
	req := multipartUpload(t, "facture.docx", []byte("doc"), nil)

	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestUploadRejectsUnknownModel(t *testing.T) {
	h := newHarness(t)
	req := multipartUpload(t, "facture.pdf", []byte("%PDF-"), map[string]string{"model": "gpt-9"})

	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "allowed_models")
}

func TestUploadRejectsUnknownSource(t *testing.T) {
	h := newHarness(t)
	req := multipartUpload(t, "facture.pdf", []byte("%PDF-"), map[string]string{"source": "fax"})

	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadAccepted(t *testing.T) {
	h := newHarness(t)
	req := multipartUpload(t, "photo.jpg", []byte{0xFF, 0xD8, 0xFF, 0x01}, map[string]string{"source": "mobile"})

	w := h.do(t, req, 1, constants.RoleUser)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp struct {
		JobID  string `json:"job_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, "processing", resp.Status)
	assert.Equal(t, []string{"photo.jpg"}, h.jobs.startedFiles())
}

func TestGetJobCrossTenantIs404(t *testing.T) {
	h := newHarness(t)
	h.jobs.getErr = common.NewAppError("JOB_NOT_FOUND", "job not found", common.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+uuid.NewString(), nil)
	w := h.do(t, req, 2, constants.RoleUser)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetJobReturnsErrorMessage(t *testing.T) {
	h := newHarness(t)
	msg := common.MsgQuotaExceeded
	h.jobs.getJob = &ent.Job{
		ID:           uuid.New(),
		Status:       string(constants.JobStatusError),
		ErrorMessage: &msg,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+h.jobs.getJob.ID.String(), nil)
	w := h.do(t, req, 1, constants.RoleUser)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), common.MsgQuotaExceeded)
}

func TestCompareRequiresTwoCharacters(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/compare?search=c", nil)
	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchRejectsOversizedPayload(t *testing.T) {
	h := newHarness(t)
	products := make([]map[string]any, 501)
	for i := range products {
		products[i] = map[string]any{"fournisseur": "X", "designation_raw": "a", "designation_fr": "b"}
	}
	body, err := json.Marshal(map[string]any{"products": products})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalogue/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBatchRejectsNonArray(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalogue/batch",
		strings.NewReader(`{"products": "not-an-array"}`))
	req.Header.Set("Content-Type", "application/json")
	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBatchDropsInvalidLines(t *testing.T) {
	h := newHarness(t)
	body := `{"products":[
		{"fournisseur":"Point P","designation_raw":"CIMENT","designation_fr":"Ciment","famille":"Ciment","prix_remise_ht":7.65},
		{"designation_raw":"orphan line"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalogue/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := h.do(t, req, 1, constants.RoleUser)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"partial_success":true`)
	require.Len(t, h.products.lastBatch, 1)
	assert.Equal(t, "Ciment", h.products.lastBatch[0].Famille)
}

func TestResetRequiresAdmin(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset",
		strings.NewReader(`{"confirm":"RESET"}`))
	req.Header.Set("Content-Type", "application/json")
	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, h.products.resets)
}

func TestResetRequiresConfirmation(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset",
		strings.NewReader(`{"confirm":"yes please"}`))
	req.Header.Set("Content-Type", "application/json")
	w := h.do(t, req, 1, constants.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetScopesToTenantByDefault(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset",
		strings.NewReader(`{"confirm":"RESET"}`))
	req.Header.Set("Content-Type", "application/json")
	w := h.do(t, req, 42, constants.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, h.products.resets, 1)
	require.NotNil(t, h.products.resets[0])
	assert.Equal(t, 42, *h.products.resets[0])
}

func TestResetGlobalWithAllFlag(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset",
		strings.NewReader(`{"confirm":"RESET","all":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := h.do(t, req, 42, constants.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, h.products.resets, 1)
	assert.Nil(t, h.products.resets[0])
}

func TestCatalogueRejectsBadCursor(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue?cursor=yesterday", nil)
	w := h.do(t, req, 1, constants.RoleUser)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
