package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"btp-catalogue/gen/ent"
	entfacture "btp-catalogue/gen/ent/facture"
	"btp-catalogue/internal/common"
)

// FactureInput is everything recorded about one processed invoice.
type FactureInput struct {
	UserID        int
	Fournisseur   string
	NumeroFacture string
	DateFacture   *time.Time
	NbProduits    int
	Fichier       string
	MimeType      string
	Source        string
	Statut        string
	Erreur        string
	ModelName     string
	CoutUSD       float64
	PromptTokens  int
	OutputTokens  int
	Langue        string
	ArchiveRef    string
}

type FactureRepository interface {
	Create(ctx context.Context, in FactureInput) (*ent.Facture, error)
	ListByUser(ctx context.Context, userID, limit int) ([]*ent.Facture, error)
}

type factureRepo struct {
	ent *ent.Client
	log *zap.SugaredLogger
}

func NewFactureRepository(entc *ent.Client, log *zap.SugaredLogger) FactureRepository {
	return &factureRepo{ent: entc, log: log}
}

func (r *factureRepo) Create(ctx context.Context, in FactureInput) (*ent.Facture, error) {
	c := r.ent.Facture.
		Create().
		SetUserID(in.UserID).
		SetFichier(in.Fichier).
		SetSource(in.Source).
		SetStatut(in.Statut).
		SetNbProduits(in.NbProduits)
	if in.Fournisseur != "" {
		c.SetFournisseur(in.Fournisseur)
	}
	if in.NumeroFacture != "" {
		c.SetNumeroFacture(in.NumeroFacture)
	}
	if in.DateFacture != nil {
		c.SetDateFacture(*in.DateFacture)
	}
	if in.MimeType != "" {
		c.SetMimeType(in.MimeType)
	}
	if in.Erreur != "" {
		c.SetErreur(in.Erreur)
	}
	if in.ModelName != "" {
		c.SetModelName(in.ModelName)
	}
	if in.CoutUSD > 0 {
		c.SetCoutUsd(in.CoutUSD)
	}
	if in.PromptTokens > 0 {
		c.SetPromptTokens(in.PromptTokens)
	}
	if in.OutputTokens > 0 {
		c.SetOutputTokens(in.OutputTokens)
	}
	if in.Langue != "" {
		c.SetLangue(in.Langue)
	}
	if in.ArchiveRef != "" {
		c.SetArchiveRef(in.ArchiveRef)
	}

	facture, err := c.Save(ctx)
	if err != nil {
		r.log.Errorw("facture create failed", "user_id", in.UserID, "fichier", in.Fichier, "error", err)
		return nil, common.NewAppError("FACTURE_CREATE", "could not record facture", common.ErrDatabase)
	}
	r.log.Infow("facture recorded",
		"facture_id", facture.ID, "statut", in.Statut, "nb_produits", in.NbProduits)
	return facture, nil
}

func (r *factureRepo) ListByUser(ctx context.Context, userID, limit int) ([]*ent.Facture, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	factures, err := r.ent.Facture.
		Query().
		Where(entfacture.UserID(userID)).
		Order(ent.Desc(entfacture.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, common.NewAppError("FACTURE_LIST", "could not list factures", common.ErrDatabase)
	}
	return factures, nil
}
