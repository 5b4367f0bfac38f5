package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExportJSON returns a takeout attachment of the caller's products and
// invoice history.
func (s *Service) handleExportJSON(c *gin.Context) {
	id := identityFrom(c)

	out, err := s.exports.ExportJSON(c.Request.Context(), id.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("catalogue_export_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, out)
}

// handleExportXLSX streams the catalogue workbook.
func (s *Service) handleExportXLSX(c *gin.Context) {
	id := identityFrom(c)

	data, err := s.exports.ExportCatalogueXLSX(c.Request.Context(), id.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("catalogue_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
