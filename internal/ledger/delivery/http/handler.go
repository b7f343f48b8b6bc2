package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ayse/sweetshop/internal/ledger/domain"
	"github.com/ayse/sweetshop/internal/ledger/usecase/command"
	"github.com/ayse/sweetshop/internal/ledger/usecase/query"
	"github.com/ayse/sweetshop/kafka"
	"github.com/ayse/sweetshop/pkg/logger"
)

// LedgerHandler handles HTTP requests for the stock ledger using CQRS pattern
type LedgerHandler struct {
	// Command handlers
	purchaseHandler *command.PurchaseHandler
	restockHandler  *command.RestockHandler

	// Query handlers
	listHandler   *query.ListTransactionsHandler
	myHandler     *query.GetMyTransactionsHandler
	alertsHandler *query.GetStockAlertsHandler
	statusHandler *query.GetStockStatusHandler

	publisher *kafka.Publisher
}

// NewLedgerHandler creates a new ledger handler (manual DI)
func NewLedgerHandler(repo domain.LedgerRepository, catalog domain.CatalogReader) *LedgerHandler {
	return &LedgerHandler{
		purchaseHandler: command.NewPurchaseHandler(repo),
		restockHandler:  command.NewRestockHandler(repo, catalog),
		listHandler:     query.NewListTransactionsHandler(repo),
		myHandler:       query.NewGetMyTransactionsHandler(repo),
		alertsHandler:   query.NewGetStockAlertsHandler(repo),
		statusHandler:   query.NewGetStockStatusHandler(repo),
	}
}

// NewLedgerHandlerWithDI creates a new ledger handler using dependency injection
func NewLedgerHandlerWithDI(
	purchaseHandler *command.PurchaseHandler,
	restockHandler *command.RestockHandler,
	listHandler *query.ListTransactionsHandler,
	myHandler *query.GetMyTransactionsHandler,
	alertsHandler *query.GetStockAlertsHandler,
	statusHandler *query.GetStockStatusHandler,
) *LedgerHandler {
	return &LedgerHandler{
		purchaseHandler: purchaseHandler,
		restockHandler:  restockHandler,
		listHandler:     listHandler,
		myHandler:       myHandler,
		alertsHandler:   alertsHandler,
		statusHandler:   statusHandler,
	}
}

// SetPublisher attaches the Kafka publisher for stock movement events
func (h *LedgerHandler) SetPublisher(publisher *kafka.Publisher) {
	h.publisher = publisher
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Purchase handles POST /api/inventory/{sweet_id}/purchase
func (h *LedgerHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	sweetID, ok := sweetIDFromRequest(w, r)
	if !ok {
		return
	}

	actorID, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.purchaseHandler.Handle(r.Context(), command.PurchaseCommand{
		SweetID:  sweetID,
		UserID:   actorID,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.publishMovement(r, kafka.EventTypeStockPurchased, result.Transaction, result.RemainingStock)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Purchase recorded",
		Data:    result,
	})
}

// Restock handles POST /api/inventory/{sweet_id}/restock
func (h *LedgerHandler) Restock(w http.ResponseWriter, r *http.Request) {
	sweetID, ok := sweetIDFromRequest(w, r)
	if !ok {
		return
	}

	actorID, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.restockHandler.Handle(r.Context(), command.RestockCommand{
		SweetID:  sweetID,
		UserID:   actorID,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.publishMovement(r, kafka.EventTypeStockRestocked, result.Transaction, result.NewStock)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Restock recorded",
		Data:    result,
	})
}

// GetStockStatus handles GET /api/inventory/status
func (h *LedgerHandler) GetStockStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.statusHandler.Handle(r.Context())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    statuses,
	})
}

// GetStockAlerts handles GET /api/inventory/alerts
func (h *LedgerHandler) GetStockAlerts(w http.ResponseWriter, r *http.Request) {
	threshold := domain.DefaultLowStockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Threshold must be an integer",
			})
			return
		}
		threshold = parsed
	}

	alerts, err := h.alertsHandler.Handle(r.Context(), query.StockAlertsQuery{Threshold: threshold})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    alerts,
	})
}

// ListTransactions handles GET /api/inventory/transactions
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q, ok := transactionQueryFromRequest(w, r)
	if !ok {
		return
	}

	page, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    page,
	})
}

// GetMyTransactions handles GET /api/inventory/transactions/my
func (h *LedgerHandler) GetMyTransactions(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	q, ok := transactionQueryFromRequest(w, r)
	if !ok {
		return
	}

	page, err := h.myHandler.Handle(r.Context(), query.GetMyTransactionsQuery{
		UserID:  actorID,
		SweetID: q.SweetID,
		Kind:    q.Kind,
		Page:    q.Page,
		Limit:   q.Limit,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    page,
	})
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory/status", h.GetStockStatus).Methods("GET")
	router.HandleFunc("/api/inventory/alerts", h.GetStockAlerts).Methods("GET")
	router.HandleFunc("/api/inventory/transactions", h.ListTransactions).Methods("GET")
	router.HandleFunc("/api/inventory/transactions/my", h.GetMyTransactions).Methods("GET")
	router.HandleFunc("/api/inventory/{sweet_id}/purchase", h.Purchase).Methods("POST")
	router.HandleFunc("/api/inventory/{sweet_id}/restock", h.Restock).Methods("POST")
}

// RegisterHealthCheck registers the health check endpoint
func (h *LedgerHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Ledger service is healthy",
		})
	}).Methods("GET")
}

// respondDomainError maps ledger errors to HTTP status codes without string
// matching. Unclassified errors are logged and reported as a generic failure.
func (h *LedgerHandler) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   stockErr.Error(),
			Data: map[string]int{
				"requested": stockErr.Requested,
				"available": stockErr.Available,
			},
		})
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidThreshold),
		errors.Is(err, domain.ErrInvalidFilter):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
	case errors.Is(err, domain.ErrItemNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Inventory record not found",
		})
	case errors.Is(err, domain.ErrMissingActor):
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Actor identity required",
		})
	default:
		logger.Error(r.Context()).Err(err).Msg("Ledger operation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

// publishMovement emits the stock movement event after the mutation has
// committed. Publishing is best effort; the ledger state is already durable.
func (h *LedgerHandler) publishMovement(r *http.Request, eventType string, txn *domain.Transaction, stockAfter int) {
	if h.publisher == nil {
		return
	}

	event := kafka.StockMovementEvent{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		TransactionID: txn.ID,
		SweetID:       txn.SweetID,
		UserID:        txn.UserID,
		Quantity:      txn.Quantity,
		StockAfter:    stockAfter,
		Value:         txn.Value,
		Timestamp:     time.Now(),
	}

	if err := h.publisher.PublishStockMovement(r.Context(), event); err != nil {
		logger.Error(r.Context()).
			Err(err).
			Uint("transaction_id", txn.ID).
			Msg("Movement committed but event publish failed")
	}
}

func sweetIDFromRequest(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["sweet_id"], 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid sweet ID",
		})
		return 0, false
	}
	return uint(id), true
}

// actorFromRequest reads the actor identity injected by the API gateway.
// Authorization itself happened there; the ledger only needs the identity.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Actor identity required",
		})
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid actor identity",
		})
		return 0, false
	}
	return uint(id), true
}

func transactionQueryFromRequest(w http.ResponseWriter, r *http.Request) (query.ListTransactionsQuery, bool) {
	var q query.ListTransactionsQuery
	params := r.URL.Query()

	if raw := params.Get("sweet_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "sweet_id must be an integer",
			})
			return q, false
		}
		sweetID := uint(id)
		q.SweetID = &sweetID
	}

	if raw := params.Get("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "user_id must be an integer",
			})
			return q, false
		}
		userID := uint(id)
		q.UserID = &userID
	}

	if raw := params.Get("kind"); raw != "" {
		kind := raw
		q.Kind = &kind
	}

	q.Page, _ = strconv.Atoi(params.Get("page"))
	q.Limit, _ = strconv.Atoi(params.Get("limit"))

	return q, true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
