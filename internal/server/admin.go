package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// resetConfirmToken must be sent verbatim; the reset is unrecoverable.
const resetConfirmToken = "RESET"

type resetRequest struct {
	Confirm string `json:"confirm"`
	All     bool   `json:"all"`
}

// handleAdminReset wipes the caller's catalogue, or every tenant's with
// all=true. Admin only, explicit confirmation required.
func (s *Service) handleAdminReset(c *gin.Context) {
	id := identityFrom(c)
	if !id.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}

	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Confirm != resetConfirmToken {
		c.JSON(http.StatusBadRequest, gin.H{"error": `confirmation required: {"confirm":"RESET"}`})
		return
	}

	scope := &id.UserID
	if req.All {
		scope = nil
	}
	deleted, err := s.products.Reset(c.Request.Context(), scope)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := gin.H{"status": "reset"}
	if req.All {
		resp["scope"] = "global"
	} else {
		resp["scope"] = "user"
		resp["deleted"] = deleted
	}
	c.JSON(http.StatusOK, resp)
}
