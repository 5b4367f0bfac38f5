package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"btp-catalogue/gen/ent"
	"btp-catalogue/internal/catalog"
	"btp-catalogue/internal/repository"
)

type stubProducts struct {
	rows []repository.CatalogueProduct
}

func (s *stubProducts) ListAll(context.Context, int) ([]repository.CatalogueProduct, error) {
	return s.rows, nil
}
func (s *stubProducts) UpsertBatch(context.Context, int, string, []catalog.Product) (repository.UpsertStats, error) {
	return repository.UpsertStats{}, nil
}
func (s *stubProducts) GetCatalogue(context.Context, repository.CatalogueFilter) (*repository.CataloguePage, error) {
	return nil, nil
}
func (s *stubProducts) ComparePrices(context.Context, int, string, bool) ([]repository.Offer, error) {
	return nil, nil
}
func (s *stubProducts) Stats(context.Context, *int) (*repository.CatalogueStats, error) {
	return nil, nil
}
func (s *stubProducts) Reset(context.Context, *int) (int64, error) { return 0, nil }

type stubFactures struct{}

func (s *stubFactures) Create(context.Context, repository.FactureInput) (*ent.Facture, error) {
	return nil, nil
}
func (s *stubFactures) ListByUser(context.Context, int, int) ([]*ent.Facture, error) {
	return nil, nil
}

func TestExportCatalogueXLSX(t *testing.T) {
	num := "F-2024-1"
	rows := []repository.CatalogueProduct{
		{
			Fournisseur:    "Point P",
			DesignationRaw: "CIMENT CEM II 25KG",
			DesignationFR:  "Ciment CEM II sac 25 kg",
			Famille:        "Ciment",
			Unite:          "sac",
			PrixBrutHT:     8.5,
			RemisePct:      10,
			PrixRemiseHT:   7.65,
			PrixTTCIVA21:   9.2565,
			NumeroFacture:  &num,
			Confidence:     "high",
			UpdatedAt:      time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	svc := NewService(&stubProducts{rows: rows}, &stubFactures{}, zap.NewNop().Sugar())
	out, err := svc.ExportCatalogueXLSX(context.Background(), 1)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	got, err := wb.GetCellValue("Catalogue", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fournisseur", got)

	got, err = wb.GetCellValue("Catalogue", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ciment CEM II sac 25 kg", got)

	got, err = wb.GetCellValue("Catalogue", "J2")
	require.NoError(t, err)
	assert.Equal(t, "F-2024-1", got)
}

func TestExportJSONNeverReturnsNilSlices(t *testing.T) {
	svc := NewService(&stubProducts{}, &stubFactures{}, zap.NewNop().Sugar())
	out, err := svc.ExportJSON(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, out.Products)
	assert.NotNil(t, out.Factures)
	assert.False(t, out.ExportedAt.IsZero())
}
