package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"btp-catalogue/constants"
	"btp-catalogue/gen/ent"
	"btp-catalogue/internal/common"
	"btp-catalogue/internal/llm"
	"btp-catalogue/internal/pipeline"
)

// handleProcessInvoice accepts a multipart upload, validates it cheaply, and
// answers 202 with a job id. The pipeline runs in the background; callers
// poll the job.
func (s *Service) handleProcessInvoice(c *gin.Context) {
	id := identityFrom(c)

	model := c.PostForm("model")
	if model != "" && !llm.KnownModel(model) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "unknown model",
			"allowed_models": llm.ModelsAsStringSlice(),
		})
		return
	}
	source := c.PostForm("source")
	if source == "" {
		source = string(constants.SourcePC)
	}
	if !constants.ValidSource(source) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "unknown source",
			"allowed_sources": constants.SourcesAsStringSlice(),
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	defer func() { _ = file.Close() }()

	// size check before reading anything
	if header.Size > constants.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds 50MB limit"})
		return
	}

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	if _, ok := constants.MimeByExtension[ext]; !ok {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error": "unsupported file type, expected pdf/jpg/jpeg/png/webp",
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, constants.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	if len(data) > constants.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds 50MB limit"})
		return
	}

	job, err := s.jobs.Start(c.Request.Context(), id.UserID, header.Filename)
	if err != nil {
		s.respondError(c, err)
		return
	}

	go s.runJob(job.ID, pipeline.ProcessInput{
		Bytes:    data,
		Filename: header.Filename,
		Model:    model,
		Source:   source,
		UserID:   id.UserID,
	})

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": job.ID,
		"status": string(constants.JobStatusProcessing),
	})
}

// runJob executes the pipeline detached from the HTTP request; the pipeline
// applies its own wall-clock timeout.
func (s *Service) runJob(jobID uuid.UUID, in pipeline.ProcessInput) {
	ctx := context.Background()

	res, err := s.processor.ProcessFile(ctx, in)
	if err != nil {
		if fErr := s.jobs.Fail(ctx, jobID, common.UserSafeMessage(err)); fErr != nil {
			s.log.Errorw("job finalize failed", "job_id", jobID, "error", fErr)
		}
		return
	}

	payload, err := json.Marshal(res)
	if err != nil {
		s.log.Errorw("job result marshal failed", "job_id", jobID, "error", err)
		_ = s.jobs.Fail(ctx, jobID, common.MsgGenericFailure)
		return
	}
	if err := s.jobs.Complete(ctx, jobID, payload); err != nil {
		s.log.Errorw("job finalize failed", "job_id", jobID, "error", err)
	}
}

// handleListInvoices returns the caller's facture history, newest first.
func (s *Service) handleListInvoices(c *gin.Context) {
	id := identityFrom(c)
	limit := intQuery(c, "limit", 50)

	factures, err := s.factures.ListByUser(c.Request.Context(), id.UserID, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if factures == nil {
		factures = []*ent.Facture{}
	}
	c.JSON(http.StatusOK, gin.H{
		"factures": factures,
		"count":    len(factures),
	})
}
