package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"btp-catalogue/internal/catalog"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `ciment`, EscapeLike(`ciment`))
	assert.Equal(t, `100\%`, EscapeLike(`100%`))
	assert.Equal(t, `a\_b`, EscapeLike(`a_b`))
	assert.Equal(t, `c:\\tmp`, EscapeLike(`c:\tmp`))
}

func TestBuildCatalogueQueryDefault(t *testing.T) {
	uid := 7
	q, args := buildCatalogueQuery(CatalogueFilter{UserID: &uid, Limit: 50})

	assert.Contains(t, q, "user_id = $1")
	assert.Contains(t, q, "ORDER BY updated_at DESC, id DESC")
	assert.NotContains(t, q, "similarity")
	// limit+1 to detect has_more
	require.Len(t, args, 2)
	assert.Equal(t, 7, args[0])
	assert.Equal(t, 51, args[1])
}

func TestBuildCatalogueQuerySearchRanksByScore(t *testing.T) {
	uid := 1
	q, args := buildCatalogueQuery(CatalogueFilter{UserID: &uid, Search: "ciment 32,5", Limit: 20})

	assert.Contains(t, q, "similarity(designation_fr, $2)")
	assert.Contains(t, q, "ILIKE $3")
	assert.Contains(t, q, "ORDER BY score DESC, updated_at DESC, id DESC")
	assert.Contains(t, args, "%ciment 32,5%")
}

func TestBuildCatalogueQueryEscapesSearchPattern(t *testing.T) {
	uid := 1
	_, args := buildCatalogueQuery(CatalogueFilter{UserID: &uid, Search: "100%_raw"})
	assert.Contains(t, args, `%100\%\_raw%`)
}

func TestBuildCatalogueQueryCursorAndFilters(t *testing.T) {
	uid := 3
	cur := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	q, args := buildCatalogueQuery(CatalogueFilter{
		UserID:      &uid,
		Famille:     "Ciment",
		Fournisseur: "Point P",
		Cursor:      &cur,
		Limit:       10,
	})

	assert.Contains(t, q, "famille = $2")
	assert.Contains(t, q, "fournisseur = $3")
	assert.Contains(t, q, "updated_at < $4")
	require.Len(t, args, 5)
	assert.Equal(t, cur, args[3])
	assert.Equal(t, 11, args[4])
}

func TestBuildCatalogueQueryAdminScopeHasNoTenantClause(t *testing.T) {
	q, _ := buildCatalogueQuery(CatalogueFilter{})
	assert.NotContains(t, q, "user_id")
}

func TestBuildCatalogueCountIgnoresCursor(t *testing.T) {
	uid := 3
	cur := time.Now()
	q, args := buildCatalogueCount(CatalogueFilter{UserID: &uid, Cursor: &cur, Limit: 10})

	assert.True(t, strings.HasPrefix(q, "SELECT COUNT(*)"))
	assert.NotContains(t, q, "updated_at <")
	assert.NotContains(t, q, "LIMIT")
	require.Len(t, args, 1)
}

// --- upsert loop fakes ---

type idRow struct{ id int }

func (r idRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.id
	return nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// scriptedTx stands in for an open transaction. Begin hands out a child
// sharing the same failure script, mirroring how pgx maps nested Begin to
// savepoints.
type scriptedTx struct {
	pgx.Tx
	failUpsert  map[string]error
	failHistory map[int]error
	nextID      *int
	rollbacks   *int
}

func (t *scriptedTx) Begin(context.Context) (pgx.Tx, error) {
	return &scriptedTx{
		failUpsert:  t.failUpsert,
		failHistory: t.failHistory,
		nextID:      t.nextID,
		rollbacks:   t.rollbacks,
	}, nil
}

func (t *scriptedTx) Commit(context.Context) error { return nil }

func (t *scriptedTx) Rollback(context.Context) error {
	*t.rollbacks++
	return nil
}

func (t *scriptedTx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	raw := args[1].(string) // designation_raw
	if err, ok := t.failUpsert[raw]; ok {
		return errRow{err: err}
	}
	*t.nextID++
	return idRow{id: *t.nextID}
}

func (t *scriptedTx) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	id := args[0].(int) // produit_id
	if err, ok := t.failHistory[id]; ok {
		return pgconn.CommandTag{}, err
	}
	return pgconn.CommandTag{}, nil
}

func newScriptedTx() (*scriptedTx, *int) {
	var nextID, rollbacks int
	return &scriptedTx{
		failUpsert:  map[string]error{},
		failHistory: map[int]error{},
		nextID:      &nextID,
		rollbacks:   &rollbacks,
	}, &rollbacks
}

func TestUpsertAllIsolatesRowFailures(t *testing.T) {
	tx, rollbacks := newScriptedTx()
	tx.failUpsert["LIGNE CASSEE"] = errors.New("numeric field overflow (SQLSTATE 22003)")

	repo := &productRepo{log: zap.NewNop().Sugar()}
	stats := repo.upsertAll(context.Background(), tx, 1, "pc", []catalog.Product{
		{Fournisseur: "Point P", DesignationRaw: "CIMENT", DesignationFR: "Ciment", PrixRemiseHT: 7.65},
		{Fournisseur: "Point P", DesignationRaw: "LIGNE CASSEE", DesignationFR: "Ligne cassée", PrixRemiseHT: 1},
		{Fournisseur: "Point P", DesignationRaw: "TUBE PVC", DesignationFR: "Tube PVC", PrixRemiseHT: 4.2},
	})

	assert.Equal(t, 2, stats.Saved)
	assert.Equal(t, 1, stats.Failed)
	assert.Zero(t, stats.HistoryErrors)
	// only the failing row's savepoint rolls back; the siblings commit
	assert.Equal(t, 1, *rollbacks)
}

func TestUpsertAllHistoryFailureOnlyCounts(t *testing.T) {
	tx, rollbacks := newScriptedTx()
	tx.failHistory[1] = errors.New("prix_historique insert refused")

	repo := &productRepo{log: zap.NewNop().Sugar()}
	stats := repo.upsertAll(context.Background(), tx, 1, "pc", []catalog.Product{
		{Fournisseur: "Gedimat", DesignationRaw: "BA13", DesignationFR: "Plaque BA13", PrixRemiseHT: 3.1},
		{Fournisseur: "Gedimat", DesignationRaw: "RAIL R48", DesignationFR: "Rail R48", PrixRemiseHT: 1.2},
		{Fournisseur: "Gedimat", DesignationRaw: "VIS TTPC", DesignationFR: "Vis TTPC"},
	})

	// the product row stays saved even when its price point is refused,
	// and a zero price never writes history at all
	assert.Equal(t, 3, stats.Saved)
	assert.Zero(t, stats.Failed)
	assert.Equal(t, 1, stats.HistoryErrors)
	assert.Equal(t, 1, *rollbacks)
}
