package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Ledger Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Purchase godoc
// @Summary Purchase a sweet
// @Description Atomically decrement stock and append a purchase transaction
// @Tags Ledger
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sweet_id path int true "Sweet ID"
// @Param request body object{quantity=int} true "Purchase quantity"
// @Success 200 {object} object{success=bool,data=object{transaction=object,remaining_stock=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{sweet_id}/purchase [post]
func (h *LedgerHandler) PurchaseDoc() {}

// Restock godoc
// @Summary Restock a sweet
// @Description Atomically increment stock (creating the record on first restock) and append a restock transaction (Admin only)
// @Tags Ledger
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sweet_id path int true "Sweet ID"
// @Param request body object{quantity=int} true "Restock quantity"
// @Success 200 {object} object{success=bool,data=object{transaction=object,new_stock=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{sweet_id}/restock [post]
func (h *LedgerHandler) RestockDoc() {}

// GetStockStatus godoc
// @Summary Stock status
// @Description List every inventory record with its derived stock tier
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/inventory/status [get]
func (h *LedgerHandler) GetStockStatusDoc() {}

// GetStockAlerts godoc
// @Summary Stock alerts
// @Description Partition inventory records into low-stock and out-of-stock tiers
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Param threshold query int false "Low-stock threshold (default 5)"
// @Success 200 {object} object{success=bool,data=object{low_stock=array,out_of_stock=array,alert_count=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory/alerts [get]
func (h *LedgerHandler) GetStockAlertsDoc() {}

// ListTransactions godoc
// @Summary Transaction history
// @Description Filterable, paginated movement history, newest first (Admin only)
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Param sweet_id query int false "Filter by sweet"
// @Param user_id query int false "Filter by actor"
// @Param kind query string false "purchase or restock"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory/transactions [get]
func (h *LedgerHandler) ListTransactionsDoc() {}

// GetMyTransactions godoc
// @Summary My transaction history
// @Description Movement history restricted to the caller's own transactions
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/inventory/transactions/my [get]
func (h *LedgerHandler) GetMyTransactionsDoc() {}
