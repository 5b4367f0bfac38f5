package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"btp-catalogue/constants"
	"btp-catalogue/internal/catalog"
	"btp-catalogue/internal/repository"
)

const (
	maxPageSize  = 100
	maxBatchSize = 500
)

// tenantScope resolves the tenant condition: admins may drop it with
// ?all=true, everyone else is pinned to their own rows.
func tenantScope(c *gin.Context) *int {
	id := identityFrom(c)
	if id.IsAdmin() && c.Query("all") == "true" {
		return nil
	}
	uid := id.UserID
	return &uid
}

func intQuery(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func (s *Service) handleGetCatalogue(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	if limit > maxPageSize {
		limit = maxPageSize
	}

	f := repository.CatalogueFilter{
		UserID:      tenantScope(c),
		Search:      strings.TrimSpace(c.Query("search")),
		Famille:     c.Query("famille"),
		Fournisseur: c.Query("fournisseur"),
		Limit:       limit,
	}
	if cur := c.Query("cursor"); cur != "" {
		t, err := time.Parse(time.RFC3339Nano, cur)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cursor, expected RFC3339 timestamp"})
			return
		}
		f.Cursor = &t
	}

	page, err := s.products.GetCatalogue(c.Request.Context(), f)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if page.Products == nil {
		page.Products = []repository.CatalogueProduct{}
	}
	c.JSON(http.StatusOK, page)
}

type batchRequest struct {
	Products []map[string]any `json:"products"`
	Source   string           `json:"source"`
}

// handleBatchUpsert ingests pre-extracted products directly, bypassing the
// AI pipeline. Invalid lines are dropped and reported, not fatal.
func (s *Service) handleBatchUpsert(c *gin.Context) {
	id := identityFrom(c)

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "products must be a JSON array"})
		return
	}
	if len(req.Products) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "products must be a non-empty array"})
		return
	}
	if len(req.Products) > maxBatchSize {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "at most 500 products per batch"})
		return
	}
	source := req.Source
	if source == "" {
		source = string(constants.SourcePC)
	}
	if !constants.ValidSource(source) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown source"})
		return
	}

	normalized := make([]catalog.Product, 0, len(req.Products))
	dropped := 0
	for i, raw := range req.Products {
		p, err := catalog.Normalize(raw)
		if err != nil {
			dropped++
			s.log.Warnw("batch line dropped", "line", i, "error", err)
			continue
		}
		normalized = append(normalized, p)
	}
	if len(normalized) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no valid products in batch"})
		return
	}

	stats, err := s.products.UpsertBatch(c.Request.Context(), id.UserID, source, normalized)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := gin.H{
		"saved": stats.Saved,
		"total": len(req.Products),
	}
	if dropped > 0 || stats.Failed > 0 {
		resp["partial_success"] = true
		resp["dropped"] = dropped + stats.Failed
	}
	if stats.HistoryErrors > 0 {
		resp["historique_errors"] = stats.HistoryErrors
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleCompare(c *gin.Context) {
	id := identityFrom(c)

	search := strings.TrimSpace(c.Query("search"))
	if len(search) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search must be at least 2 characters"})
		return
	}
	withHistory := c.Query("with_history") == "true"

	offers, err := s.products.ComparePrices(c.Request.Context(), id.UserID, search, withHistory)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if offers == nil {
		offers = []repository.Offer{}
	}
	c.JSON(http.StatusOK, gin.H{
		"results": offers,
		"search":  search,
		"count":   len(offers),
	})
}

func (s *Service) handleStats(c *gin.Context) {
	stats, err := s.products.Stats(c.Request.Context(), tenantScope(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
