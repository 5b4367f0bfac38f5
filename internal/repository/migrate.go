package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"btp-catalogue/gen/ent"
	"btp-catalogue/internal/common"
)

// catalogueDDL covers the tables Ent does not manage. produits needs
// NULLS NOT DISTINCT on its identity key (user_id may be NULL for shared
// rows) and pg_trgm GIN indexes for fuzzy search, neither of which Ent can
// express.
var catalogueDDL = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,

	`CREATE TABLE IF NOT EXISTS produits (
		id              SERIAL PRIMARY KEY,
		fournisseur     TEXT NOT NULL,
		designation_raw TEXT NOT NULL,
		designation_fr  TEXT NOT NULL,
		famille         TEXT NOT NULL DEFAULT 'Autre',
		unite           TEXT NOT NULL DEFAULT 'unité',
		prix_brut_ht    NUMERIC(12,4) NOT NULL DEFAULT 0 CHECK (prix_brut_ht >= 0),
		remise_pct      NUMERIC(5,2)  NOT NULL DEFAULT 0 CHECK (remise_pct >= 0 AND remise_pct <= 100),
		prix_remise_ht  NUMERIC(12,4) NOT NULL DEFAULT 0 CHECK (prix_remise_ht >= 0),
		prix_ttc_iva21  NUMERIC(12,4) NOT NULL DEFAULT 0 CHECK (prix_ttc_iva21 >= 0),
		numero_facture  TEXT,
		date_facture    DATE,
		confidence      TEXT NOT NULL DEFAULT 'high' CHECK (confidence IN ('high', 'low')),
		source          TEXT NOT NULL DEFAULT 'pc',
		user_id         INTEGER,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT produits_identity_key
			UNIQUE NULLS NOT DISTINCT (designation_raw, fournisseur, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS prix_historique (
		id             SERIAL PRIMARY KEY,
		produit_id     INTEGER NOT NULL REFERENCES produits(id) ON DELETE CASCADE,
		prix_remise_ht NUMERIC(12,4) NOT NULL DEFAULT 0,
		remise_pct     NUMERIC(5,2)  NOT NULL DEFAULT 0,
		numero_facture TEXT,
		date_facture   DATE,
		recorded_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_produits_designation_fr_trgm
		ON produits USING gin (designation_fr gin_trgm_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_produits_designation_raw_trgm
		ON produits USING gin (designation_raw gin_trgm_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_produits_user_updated
		ON produits (user_id, updated_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_prix_historique_produit
		ON prix_historique (produit_id, recorded_at DESC)`,

	`CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
	BEGIN
		NEW.updated_at = now();
		RETURN NEW;
	END
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS produits_set_updated_at ON produits`,

	`CREATE TRIGGER produits_set_updated_at
		BEFORE UPDATE ON produits
		FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,
}

// Migrate brings the schema up to date: Ent-managed tables first, then the
// raw catalogue DDL. Every statement is idempotent.
func Migrate(ctx context.Context, entc *ent.Client, pool *pgxpool.Pool, log *zap.SugaredLogger) error {
	if err := entc.Schema.Create(ctx); err != nil {
		log.Errorw("ent schema migration failed", "error", err)
		return common.WrapError(err, "ent schema migration")
	}
	for _, stmt := range catalogueDDL {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Errorw("catalogue migration failed", "error", err, "stmt", stmt)
			return common.WrapError(err, "catalogue migration")
		}
	}
	log.Infow("database schema up to date")
	return nil
}
