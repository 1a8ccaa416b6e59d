package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	portssvc "github.com/bizopshq/ledger_engine/internal/core/ports/services"
	"github.com/bizopshq/ledger_engine/internal/dto"
	"github.com/bizopshq/ledger_engine/internal/middleware"
)

// sequenceHandler exposes document number allocation to callers outside the
// posting paths, e.g. stock numbering.
type sequenceHandler struct {
	sequenceService portssvc.SequenceSvcFacade
}

// registerSequenceRoutes registers the document number allocation route.
func registerSequenceRoutes(rg *gin.RouterGroup, sequenceService portssvc.SequenceSvcFacade) {
	h := &sequenceHandler{sequenceService: sequenceService}
	rg.POST("/document-numbers", h.allocateDocumentNumber)
}

func (h *sequenceHandler) allocateDocumentNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AllocateDocumentNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	scope := domain.SequenceScope{
		Kind:       req.Kind,
		BranchCode: req.BranchCode,
		FundCode:   req.FundCode,
	}
	allocated, err := h.sequenceService.AllocateDocumentNumber(c.Request.Context(), scope, req.Date)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DocumentNumberResponse{
		DocumentNumber: allocated.DocumentNumber,
		Counter:        allocated.Counter,
	})
}
