package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"btp-catalogue/gen/ent"
	"btp-catalogue/internal/repository"
)

// Service is a tiny façade over repositories that produces catalogue exports.
type Service struct {
	products repository.ProductRepository
	factures repository.FactureRepository
	log      *zap.SugaredLogger
}

func NewService(products repository.ProductRepository, factures repository.FactureRepository, log *zap.SugaredLogger) *Service {
	return &Service{products: products, factures: factures, log: log}
}

// UserExport is the JSON takeout payload: everything one user owns.
type UserExport struct {
	ExportedAt time.Time                     `json:"exported_at"`
	Products   []repository.CatalogueProduct `json:"products"`
	Factures   []*ent.Facture                `json:"factures"`
}

// ExportJSON collects the caller's catalogue and invoice history.
func (s *Service) ExportJSON(ctx context.Context, userID int) (*UserExport, error) {
	products, err := s.products.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	factures, err := s.factures.ListByUser(ctx, userID, 200)
	if err != nil {
		return nil, fmt.Errorf("export factures: %w", err)
	}
	if products == nil {
		products = []repository.CatalogueProduct{}
	}
	if factures == nil {
		factures = []*ent.Facture{}
	}
	return &UserExport{
		ExportedAt: time.Now().UTC(),
		Products:   products,
		Factures:   factures,
	}, nil
}

// ExportCatalogueXLSX returns an XLSX workbook (as bytes) of the caller's
// catalogue, ordered by fournisseur then famille.
func (s *Service) ExportCatalogueXLSX(ctx context.Context, userID int) ([]byte, error) {
	start := time.Now()

	products, err := s.products.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query catalogue: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Catalogue"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Fournisseur",
		"Désignation",
		"Désignation (origine)",
		"Famille",
		"Unité",
		"Prix brut HT",
		"Remise %",
		"Prix remisé HT",
		"Prix TTC (IVA 21%)",
		"N° facture",
		"Date facture",
		"Confiance",
		"Mis à jour",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range products {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, p.Fournisseur)
		write(2, p.DesignationFR)
		write(3, p.DesignationRaw)
		write(4, p.Famille)
		write(5, p.Unite)
		write(6, p.PrixBrutHT)
		write(7, p.RemisePct)
		write(8, p.PrixRemiseHT)
		write(9, p.PrixTTCIVA21)
		if p.NumeroFacture != nil {
			write(10, *p.NumeroFacture)
		}
		if p.DateFacture != nil {
			write(11, p.DateFacture.Format("02/01/2006"))
		}
		write(12, p.Confidence)
		write(13, p.UpdatedAt.Format("2006-01-02 15:04"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "C", 40)
	_ = f.SetColWidth(sheet, "D", "E", 14)
	_ = f.SetColWidth(sheet, "F", "I", 14)
	_ = f.SetColWidth(sheet, "J", "K", 16)
	_ = f.SetColWidth(sheet, "L", "M", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.log.Infow("export.xlsx.ok",
		"user_id", userID,
		"rows", len(products),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
