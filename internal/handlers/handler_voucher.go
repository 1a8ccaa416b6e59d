package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizopshq/ledger_engine/internal/core/ports/services"
	"github.com/bizopshq/ledger_engine/internal/dto"
	"github.com/bizopshq/ledger_engine/internal/middleware"
)

// voucherHandler handles HTTP requests related to cash vouchers.
type voucherHandler struct {
	postingService portssvc.PostingSvcFacade
}

// registerVoucherRoutes registers routes related to cash vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := &voucherHandler{postingService: postingService}

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.POST("/:voucherID/post", h.postVoucher)
	}
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator, ok := requireActor(c)
	if !ok {
		return
	}

	voucher, err := h.postingService.CreateVoucher(c.Request.Context(), req, creator)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	voucher, err := h.postingService.GetVoucherByID(c.Request.Context(), c.Param("voucherID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	entry, err := h.postingService.PostVoucher(c.Request.Context(), c.Param("voucherID"), req, actor)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
