package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"btp-catalogue/constants"
)

// handleGetJob polls one job. Jobs owned by another user answer 404, never
// 403, so job ids leak nothing about other tenants.
func (s *Service) handleGetJob(c *gin.Context) {
	id := identityFrom(c)

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := s.jobs.Get(c.Request.Context(), jobID, id.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := gin.H{
		"job_id": job.ID,
		"status": job.Status,
	}
	if job.Status == string(constants.JobStatusCompleted) && len(job.Result) > 0 {
		resp["result"] = json.RawMessage(job.Result)
	}
	if job.Status == string(constants.JobStatusError) && job.ErrorMessage != nil {
		resp["error"] = *job.ErrorMessage
	}
	c.JSON(http.StatusOK, resp)
}
