package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/bizopshq/ledger_engine/internal/core/services"
	"github.com/bizopshq/ledger_engine/internal/middleware"
)

// RegisterRoutes sets up all application routes, injecting dependencies.
func RegisterRoutes(r *gin.Engine, svc *services.ServiceContainer) {
	registerCustomValidators()

	r.GET("/healthz", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Every v1 route carries an acting user for audit stamping.
	v1 := r.Group("/api/v1", middleware.ActorMiddleware())

	registerAccountRoutes(v1, svc.AccountSvc)
	registerJournalRoutes(v1, svc.JournalSvc)
	registerVoucherRoutes(v1, svc.PostingSvc)
	registerSequenceRoutes(v1, svc.SequenceSvc)
}

func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// registerCustomValidators wires the positiveamount rule into gin's validator
// engine so DTO binding rejects zero and negative decimal amounts.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("positiveamount", func(fl validator.FieldLevel) bool {
			amount, ok := fl.Field().Interface().(decimal.Decimal)
			if !ok {
				return false
			}
			return amount.IsPositive()
		})
	}
}
