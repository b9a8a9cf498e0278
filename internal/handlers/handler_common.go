package handlers

import (
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps err to its status code and writes {"error": message}.
// Client errors are logged at Warn, everything else at Error.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseIDParam reads a positive integer path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid id in path", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// sendFile writes a rendered document as an attachment.
func sendFile(c *gin.Context, file *domain.ExportFile) {
	c.Header("Content-Disposition", contentDisposition(file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// contentDisposition quotes plain ASCII names and falls back to the RFC 2231
// filename* form for Thai truck numbers.
func contentDisposition(name string) string {
	for _, r := range name {
		if r >= utf8.RuneSelf || r == '"' || r == '\\' {
			return mime.FormatMediaType("attachment", map[string]string{"filename": name})
		}
	}
	return `attachment; filename="` + name + `"`
}
