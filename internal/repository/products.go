package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"btp-catalogue/internal/catalog"
	"btp-catalogue/internal/common"
)

// searchThreshold is the minimum trigram similarity for catalogue search.
const searchThreshold = 0.2

// compareThreshold is stricter: price comparison should only group lines
// that are very likely the same product.
const compareThreshold = 0.3

const maxCompareOffers = 20

// CatalogueProduct is a produits row as served by search and export.
type CatalogueProduct struct {
	ID             int        `json:"id"`
	Fournisseur    string     `json:"fournisseur"`
	DesignationRaw string     `json:"designation_raw"`
	DesignationFR  string     `json:"designation_fr"`
	Famille        string     `json:"famille"`
	Unite          string     `json:"unite"`
	PrixBrutHT     float64    `json:"prix_brut_ht"`
	RemisePct      float64    `json:"remise_pct"`
	PrixRemiseHT   float64    `json:"prix_remise_ht"`
	PrixTTCIVA21   float64    `json:"prix_ttc_iva21"`
	NumeroFacture  *string    `json:"numero_facture,omitempty"`
	DateFacture    *time.Time `json:"date_facture,omitempty"`
	Confidence     string     `json:"confidence"`
	Source         string     `json:"source"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Score          float64    `json:"score,omitempty"`
}

// CatalogueFilter narrows a catalogue page. A nil UserID means
// administrative scope (no tenant condition). Cursor is an exclusive
// updated_at upper bound carried over from the previous page.
type CatalogueFilter struct {
	UserID      *int
	Search      string
	Famille     string
	Fournisseur string
	Limit       int
	Cursor      *time.Time
}

// CataloguePage is one page plus the total matching count.
type CataloguePage struct {
	Products   []CatalogueProduct `json:"products"`
	Total      int                `json:"total"`
	HasMore    bool               `json:"has_more"`
	NextCursor *time.Time         `json:"next_cursor,omitempty"`
}

// UpsertStats reports a batch upsert. History failures never fail the batch.
type UpsertStats struct {
	Saved         int `json:"saved"`
	Failed        int `json:"failed"`
	HistoryErrors int `json:"history_errors"`
}

// PricePoint is one prix_historique row.
type PricePoint struct {
	PrixRemiseHT  float64    `json:"prix_remise_ht"`
	RemisePct     float64    `json:"remise_pct"`
	NumeroFacture *string    `json:"numero_facture,omitempty"`
	DateFacture   *time.Time `json:"date_facture,omitempty"`
	RecordedAt    time.Time  `json:"recorded_at"`
}

// Offer is one supplier's current price for a compared designation.
type Offer struct {
	ProduitID     int          `json:"produit_id"`
	Fournisseur   string       `json:"fournisseur"`
	DesignationFR string       `json:"designation_fr"`
	PrixRemiseHT  float64      `json:"prix_remise_ht"`
	RemisePct     float64      `json:"remise_pct"`
	NumeroFacture *string      `json:"numero_facture,omitempty"`
	DateFacture   *time.Time   `json:"date_facture,omitempty"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Score         float64      `json:"score"`
	History       []PricePoint `json:"history,omitempty"`
}

// CatalogueStats summarizes a catalogue scope.
type CatalogueStats struct {
	TotalProducts int            `json:"total_products"`
	Fournisseurs  int            `json:"fournisseurs"`
	ByFamille     map[string]int `json:"by_famille"`
	LowConfidence int            `json:"low_confidence"`
	LastUpdatedAt *time.Time     `json:"last_updated_at,omitempty"`
}

type ProductRepository interface {
	UpsertBatch(ctx context.Context, userID int, source string, products []catalog.Product) (UpsertStats, error)
	GetCatalogue(ctx context.Context, f CatalogueFilter) (*CataloguePage, error)
	ListAll(ctx context.Context, userID int) ([]CatalogueProduct, error)
	ComparePrices(ctx context.Context, userID int, designation string, withHistory bool) ([]Offer, error)
	Stats(ctx context.Context, userID *int) (*CatalogueStats, error)
	Reset(ctx context.Context, userID *int) (int64, error)
}

type productRepo struct {
	pool *pgxpool.Pool
	log  *zap.SugaredLogger
}

func NewProductRepository(pool *pgxpool.Pool, log *zap.SugaredLogger) ProductRepository {
	return &productRepo{pool: pool, log: log}
}

const upsertSQL = `
INSERT INTO produits (
	fournisseur, designation_raw, designation_fr, famille, unite,
	prix_brut_ht, remise_pct, prix_remise_ht, prix_ttc_iva21,
	numero_facture, date_facture, confidence, source, user_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (designation_raw, fournisseur, user_id) DO UPDATE SET
	designation_fr = EXCLUDED.designation_fr,
	famille        = EXCLUDED.famille,
	unite          = EXCLUDED.unite,
	prix_brut_ht   = EXCLUDED.prix_brut_ht,
	remise_pct     = EXCLUDED.remise_pct,
	prix_remise_ht = EXCLUDED.prix_remise_ht,
	prix_ttc_iva21 = EXCLUDED.prix_ttc_iva21,
	numero_facture = EXCLUDED.numero_facture,
	date_facture   = EXCLUDED.date_facture,
	confidence     = EXCLUDED.confidence,
	source         = EXCLUDED.source
RETURNING id`

const historySQL = `
INSERT INTO prix_historique (produit_id, prix_remise_ht, remise_pct, numero_facture, date_facture)
VALUES ($1, $2, $3, $4, $5)`

// UpsertBatch writes products in one transaction. Each row runs under its
// own savepoint, so a failing insert is skipped without poisoning the
// surrounding transaction; a failing history insert only increments
// HistoryErrors.
func (r *productRepo) UpsertBatch(ctx context.Context, userID int, source string, products []catalog.Product) (UpsertStats, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return UpsertStats{}, common.NewAppError("DB_TX", "begin upsert transaction", common.ErrDatabase)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats := r.upsertAll(ctx, tx, userID, source, products)

	if err := tx.Commit(ctx); err != nil {
		return UpsertStats{}, common.NewAppError("DB_TX", "commit upsert transaction", common.ErrDatabase)
	}
	return stats, nil
}

// upsertAll runs the per-row loop on an open transaction. Split out so the
// savepoint semantics can be exercised without a live database.
func (r *productRepo) upsertAll(ctx context.Context, tx pgx.Tx, userID int, source string, products []catalog.Product) UpsertStats {
	var stats UpsertStats
	for _, p := range products {
		produitID, err := upsertRow(ctx, tx, userID, source, p)
		if err != nil {
			stats.Failed++
			r.log.Warnw("produit upsert failed",
				"designation", p.DesignationRaw, "fournisseur", p.Fournisseur, "error", err)
			continue
		}
		stats.Saved++

		if p.PrixRemiseHT <= 0 {
			continue
		}
		if err := insertHistory(ctx, tx, produitID, p); err != nil {
			stats.HistoryErrors++
			r.log.Warnw("prix_historique insert failed", "produit_id", produitID, "error", err)
		}
	}
	return stats
}

// upsertRow inserts one product under a savepoint (pgx nested Begin). A
// failing statement aborts the rest of a Postgres transaction (SQLSTATE
// 25P02 on every later statement), so rolling back to the savepoint is what
// keeps sibling rows insertable.
func upsertRow(ctx context.Context, tx pgx.Tx, userID int, source string, p catalog.Product) (int, error) {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return 0, err
	}
	var produitID int
	if err := sp.QueryRow(ctx, upsertSQL,
		p.Fournisseur, p.DesignationRaw, p.DesignationFR, p.Famille, p.Unite,
		p.PrixBrutHT, p.RemisePct, p.PrixRemiseHT, p.PrixTTCIVA21,
		nullableString(p.NumeroFacture), catalog.ParseDate(p.DateFacture),
		p.Confidence, source, userID,
	).Scan(&produitID); err != nil {
		_ = sp.Rollback(ctx)
		return 0, err
	}
	if err := sp.Commit(ctx); err != nil {
		return 0, err
	}
	return produitID, nil
}

// insertHistory appends one price point under its own savepoint, so a
// refused history row never takes the already-saved product with it.
func insertHistory(ctx context.Context, tx pgx.Tx, produitID int, p catalog.Product) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	if _, err := sp.Exec(ctx, historySQL,
		produitID, p.PrixRemiseHT, p.RemisePct,
		nullableString(p.NumeroFacture), catalog.ParseDate(p.DateFacture),
	); err != nil {
		_ = sp.Rollback(ctx)
		return err
	}
	return sp.Commit(ctx)
}

// catalogueConds builds the WHERE conditions shared by the page and count
// queries. arg appends a parameter and returns its placeholder.
func catalogueConds(f CatalogueFilter, arg func(any) string) []string {
	var conds []string
	if f.UserID != nil {
		conds = append(conds, "user_id = "+arg(*f.UserID))
	}
	if f.Search != "" {
		s := arg(f.Search)
		like := arg("%" + EscapeLike(f.Search) + "%")
		conds = append(conds, fmt.Sprintf(
			"(designation_raw ILIKE %[2]s OR designation_fr ILIKE %[2]s OR fournisseur ILIKE %[2]s"+
				" OR similarity(designation_fr, %[1]s) > %[3]v OR similarity(designation_raw, %[1]s) > %[3]v)",
			s, like, searchThreshold))
	}
	if f.Famille != "" {
		conds = append(conds, "famille = "+arg(f.Famille))
	}
	if f.Fournisseur != "" {
		conds = append(conds, "fournisseur = "+arg(f.Fournisseur))
	}
	if f.Cursor != nil {
		conds = append(conds, "updated_at < "+arg(*f.Cursor))
	}
	if len(conds) == 0 {
		conds = append(conds, "TRUE")
	}
	return conds
}

// buildCatalogueQuery assembles the page query. Split out for testing.
// Search results rank by trigram score first; the updated_at tiebreak keeps
// the cursor usable either way.
func buildCatalogueQuery(f CatalogueFilter) (string, []any) {
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conds := catalogueConds(f, arg)

	score := "0::float8 AS score"
	order := "updated_at DESC, id DESC"
	if f.Search != "" {
		s := arg(f.Search)
		score = fmt.Sprintf(
			"GREATEST(similarity(designation_fr, %[1]s), similarity(designation_raw, %[1]s))::float8 AS score", s)
		order = "score DESC, updated_at DESC, id DESC"
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	q := `SELECT id, fournisseur, designation_raw, designation_fr, famille, unite,
	prix_brut_ht, remise_pct, prix_remise_ht, prix_ttc_iva21,
	numero_facture, date_facture, confidence, source, updated_at, ` + score + `
FROM produits
WHERE ` + strings.Join(conds, " AND ") + `
ORDER BY ` + order + `
LIMIT ` + arg(limit+1)

	return q, args
}

// buildCatalogueCount is the matching COUNT query, without cursor or limit.
func buildCatalogueCount(f CatalogueFilter) (string, []any) {
	f.Cursor = nil
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	conds := catalogueConds(f, arg)
	return "SELECT COUNT(*) FROM produits WHERE " + strings.Join(conds, " AND "), args
}

// GetCatalogue returns one cursor page plus the total count. The page query
// fetches limit+1 rows to detect whether more remain.
func (r *productRepo) GetCatalogue(ctx context.Context, f CatalogueFilter) (*CataloguePage, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	q, args := buildCatalogueQuery(f)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, common.NewAppError("DB_QUERY", "catalogue query failed", common.ErrDatabase)
	}
	products, err := scanCatalogueRows(rows)
	if err != nil {
		return nil, common.NewAppError("DB_SCAN", "catalogue scan failed", common.ErrDatabase)
	}

	page := &CataloguePage{}
	if len(products) > limit {
		page.HasMore = true
		products = products[:limit]
	}
	page.Products = products
	if page.HasMore && len(products) > 0 {
		last := products[len(products)-1].UpdatedAt
		page.NextCursor = &last
	}

	cq, cargs := buildCatalogueCount(f)
	if err := r.pool.QueryRow(ctx, cq, cargs...).Scan(&page.Total); err != nil {
		return nil, common.NewAppError("DB_QUERY", "catalogue count failed", common.ErrDatabase)
	}
	return page, nil
}

// ListAll loads the whole catalogue for export, ordered for readability.
func (r *productRepo) ListAll(ctx context.Context, userID int) ([]CatalogueProduct, error) {
	q := `SELECT id, fournisseur, designation_raw, designation_fr, famille, unite,
	prix_brut_ht, remise_pct, prix_remise_ht, prix_ttc_iva21,
	numero_facture, date_facture, confidence, source, updated_at, 0::float8 AS score
FROM produits
WHERE user_id = $1
ORDER BY fournisseur, famille, designation_fr`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, common.NewAppError("DB_QUERY", "catalogue export query failed", common.ErrDatabase)
	}
	return scanCatalogueRows(rows)
}

func scanCatalogueRows(rows pgx.Rows) ([]CatalogueProduct, error) {
	defer rows.Close()
	var out []CatalogueProduct
	for rows.Next() {
		var p CatalogueProduct
		if err := rows.Scan(
			&p.ID, &p.Fournisseur, &p.DesignationRaw, &p.DesignationFR, &p.Famille, &p.Unite,
			&p.PrixBrutHT, &p.RemisePct, &p.PrixRemiseHT, &p.PrixTTCIVA21,
			&p.NumeroFacture, &p.DateFacture, &p.Confidence, &p.Source, &p.UpdatedAt, &p.Score,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ComparePrices finds near-identical designations across suppliers, cheapest
// first, optionally attaching each offer's price history in one batch query.
func (r *productRepo) ComparePrices(ctx context.Context, userID int, designation string, withHistory bool) ([]Offer, error) {
	q := fmt.Sprintf(`SELECT id, fournisseur, designation_fr, prix_remise_ht, remise_pct,
	numero_facture, date_facture, updated_at,
	GREATEST(similarity(designation_fr, $2), similarity(designation_raw, $2))::float8 AS score
FROM produits
WHERE user_id = $1
  AND (designation_fr ILIKE $3 OR designation_raw ILIKE $3
       OR similarity(designation_fr, $2) > %[1]v OR similarity(designation_raw, $2) > %[1]v)
ORDER BY prix_remise_ht ASC, score DESC
LIMIT %d`, compareThreshold, maxCompareOffers)

	like := "%" + EscapeLike(designation) + "%"
	rows, err := r.pool.Query(ctx, q, userID, designation, like)
	if err != nil {
		return nil, common.NewAppError("DB_QUERY", "compare query failed", common.ErrDatabase)
	}
	defer rows.Close()

	var offers []Offer
	var ids []int
	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ProduitID, &o.Fournisseur, &o.DesignationFR, &o.PrixRemiseHT, &o.RemisePct,
			&o.NumeroFacture, &o.DateFacture, &o.UpdatedAt, &o.Score,
		); err != nil {
			return nil, common.NewAppError("DB_SCAN", "compare scan failed", common.ErrDatabase)
		}
		offers = append(offers, o)
		ids = append(ids, o.ProduitID)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("DB_SCAN", "compare rows failed", common.ErrDatabase)
	}
	if !withHistory || len(offers) == 0 {
		return offers, nil
	}

	hq := `SELECT produit_id, prix_remise_ht, remise_pct, numero_facture, date_facture, recorded_at
FROM prix_historique
WHERE produit_id = ANY($1)
ORDER BY recorded_at DESC`
	hrows, err := r.pool.Query(ctx, hq, ids)
	if err != nil {
		return nil, common.NewAppError("DB_QUERY", "history query failed", common.ErrDatabase)
	}
	defer hrows.Close()

	byID := make(map[int]*Offer, len(offers))
	for i := range offers {
		offers[i].History = []PricePoint{}
		byID[offers[i].ProduitID] = &offers[i]
	}
	for hrows.Next() {
		var (
			pid int
			pt  PricePoint
		)
		if err := hrows.Scan(&pid, &pt.PrixRemiseHT, &pt.RemisePct, &pt.NumeroFacture, &pt.DateFacture, &pt.RecordedAt); err != nil {
			return nil, common.NewAppError("DB_SCAN", "history scan failed", common.ErrDatabase)
		}
		if o, ok := byID[pid]; ok {
			o.History = append(o.History, pt)
		}
	}
	return offers, hrows.Err()
}

// Stats aggregates a catalogue scope in two cheap queries. A nil userID
// aggregates across all tenants.
func (r *productRepo) Stats(ctx context.Context, userID *int) (*CatalogueStats, error) {
	s := &CatalogueStats{ByFamille: map[string]int{}}

	scope := "TRUE"
	var args []any
	if userID != nil {
		scope = "user_id = $1"
		args = append(args, *userID)
	}

	err := r.pool.QueryRow(ctx, `SELECT COUNT(*), COUNT(DISTINCT fournisseur),
	COUNT(*) FILTER (WHERE confidence = 'low'), MAX(updated_at)
FROM produits WHERE `+scope, args...).
		Scan(&s.TotalProducts, &s.Fournisseurs, &s.LowConfidence, &s.LastUpdatedAt)
	if err != nil {
		return nil, common.NewAppError("DB_QUERY", "stats query failed", common.ErrDatabase)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT famille, COUNT(*) FROM produits WHERE `+scope+` GROUP BY famille`, args...)
	if err != nil {
		return nil, common.NewAppError("DB_QUERY", "stats famille query failed", common.ErrDatabase)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			famille string
			n       int
		)
		if err := rows.Scan(&famille, &n); err != nil {
			return nil, common.NewAppError("DB_SCAN", "stats famille scan failed", common.ErrDatabase)
		}
		s.ByFamille[famille] = n
	}
	return s, rows.Err()
}

// Reset wipes one user's catalogue, or everything when userID is nil.
// History rows follow via ON DELETE CASCADE; the global path truncates both
// tables and resets sequences. Returns rows deleted, or -1 for a truncate.
func (r *productRepo) Reset(ctx context.Context, userID *int) (int64, error) {
	if userID == nil {
		if _, err := r.pool.Exec(ctx, `TRUNCATE produits, prix_historique RESTART IDENTITY CASCADE`); err != nil {
			return 0, common.NewAppError("DB_EXEC", "global reset failed", common.ErrDatabase)
		}
		r.log.Warnw("catalogue reset", "scope", "global")
		return -1, nil
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM produits WHERE user_id = $1`, *userID)
	if err != nil {
		return 0, common.NewAppError("DB_EXEC", "user reset failed", common.ErrDatabase)
	}
	r.log.Warnw("catalogue reset", "scope", "user", "user_id", *userID, "deleted", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

// EscapeLike escapes LIKE metacharacters in user input.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
