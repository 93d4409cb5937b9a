package api

import (
	"net/http"

	"github.com/avialab/ticketmodule/internal/audit"
	"github.com/gin-gonic/gin"
)

// AuditReader exposes the recorded audit trail for the admin surface.
type AuditReader interface {
	AuditEntries() ([]audit.AuditEntry, error)
}

type AdminHandler struct {
	auditTrail AuditReader
}

func NewAdminHandler(auditTrail AuditReader) *AdminHandler {
	return &AdminHandler{auditTrail: auditTrail}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/audit", h.audit)
}

func (h *AdminHandler) audit(c *gin.Context) {
	entries, err := h.auditTrail.AuditEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if entries == nil {
		entries = []audit.AuditEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
