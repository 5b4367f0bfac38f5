package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"btp-catalogue/constants"
	"btp-catalogue/internal/common"
	"btp-catalogue/internal/export"
	"btp-catalogue/internal/health"
	"btp-catalogue/internal/pipeline"
	"btp-catalogue/internal/repository"
)

// Service wires the HTTP surface. Handlers validate, log and delegate; all
// domain behavior lives in the pipeline and the repositories.
type Service struct {
	cfg       *common.Config
	pool      *pgxpool.Pool
	processor *pipeline.Processor
	products  repository.ProductRepository
	factures  repository.FactureRepository
	jobs      repository.JobRepository
	users     repository.UserRepository
	exports   *export.Service
	health    *health.ProviderHealth
	log       *zap.SugaredLogger
}

func NewService(
	cfg *common.Config,
	pool *pgxpool.Pool,
	processor *pipeline.Processor,
	products repository.ProductRepository,
	factures repository.FactureRepository,
	jobs repository.JobRepository,
	users repository.UserRepository,
	exports *export.Service,
	providerHealth *health.ProviderHealth,
	log *zap.SugaredLogger,
) *Service {
	return &Service{
		cfg:       cfg,
		pool:      pool,
		processor: processor,
		products:  products,
		factures:  factures,
		jobs:      jobs,
		users:     users,
		exports:   exports,
		health:    providerHealth,
		log:       log,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Service) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.Use(cors.New(s.corsConfig()))
	r.MaxMultipartMemory = constants.MaxUploadBytes

	r.GET("/health", s.handleHealth)

	api := r.Group("/api/v1", AuthMiddleware(s.cfg.Server.JWTSecret))
	api.POST("/invoices/process", s.handleProcessInvoice)
	api.GET("/invoices", s.handleListInvoices)
	api.GET("/jobs/:job_id", s.handleGetJob)
	api.GET("/catalogue", s.handleGetCatalogue)
	api.POST("/catalogue/batch", s.handleBatchUpsert)
	api.GET("/catalogue/compare", s.handleCompare)
	api.GET("/stats", s.handleStats)
	api.GET("/me", s.handleMe)
	api.POST("/admin/reset", s.handleAdminReset)
	api.GET("/export", s.handleExportJSON)
	api.GET("/export/xlsx", s.handleExportXLSX)

	return r
}

func (s *Service) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	origins := strings.TrimSpace(s.cfg.Server.CORSOrigins)
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	return cfg
}

func (s *Service) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Infow("http.request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Service) handleHealth(c *gin.Context) {
	if err := s.pool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"provider_failures": s.health.ConsecutiveFailures(),
	})
}

func (s *Service) handleMe(c *gin.Context) {
	id := identityFrom(c)
	u, err := s.users.GetByID(c.Request.Context(), id.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
	})
}

// respondError maps sentinel errors to HTTP statuses; anything unclassified
// is a 500 with the generic message.
func (s *Service) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, common.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		s.log.Errorw("http.internal_error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.MsgGenericFailure})
	}
}
