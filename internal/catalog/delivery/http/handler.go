package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ayse/sweetshop/internal/catalog/domain"
	"github.com/ayse/sweetshop/internal/catalog/usecase/command"
	"github.com/ayse/sweetshop/internal/catalog/usecase/query"
	"github.com/ayse/sweetshop/pkg/logger"
)

// SweetHandler handles HTTP requests for the catalog using CQRS pattern
type SweetHandler struct {
	createHandler *command.CreateSweetHandler
	updateHandler *command.UpdateSweetHandler

	getHandler  *query.GetSweetHandler
	listHandler *query.ListSweetsHandler
}

// NewSweetHandler creates a new catalog handler (manual DI)
func NewSweetHandler(repo domain.SweetRepository) *SweetHandler {
	return &SweetHandler{
		createHandler: command.NewCreateSweetHandler(repo),
		updateHandler: command.NewUpdateSweetHandler(repo),
		getHandler:    query.NewGetSweetHandler(repo),
		listHandler:   query.NewListSweetsHandler(repo),
	}
}

// NewSweetHandlerWithDI creates a new catalog handler using dependency injection
func NewSweetHandlerWithDI(
	createHandler *command.CreateSweetHandler,
	updateHandler *command.UpdateSweetHandler,
	getHandler *query.GetSweetHandler,
	listHandler *query.ListSweetsHandler,
) *SweetHandler {
	return &SweetHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateSweet handles POST /api/sweets
func (h *SweetHandler) CreateSweet(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateSweetCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sweet, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sweet created",
		Data:    sweet,
	})
}

// UpdateSweet handles PUT /api/sweets/{id}
func (h *SweetHandler) UpdateSweet(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetIDFromRequest(w, r)
	if !ok {
		return
	}

	var cmd command.UpdateSweetCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	cmd.ID = id

	sweet, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sweet updated",
		Data:    sweet,
	})
}

// GetSweet handles GET /api/sweets/{id}
func (h *SweetHandler) GetSweet(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetIDFromRequest(w, r)
	if !ok {
		return
	}

	sweet, err := h.getHandler.Handle(r.Context(), query.GetSweetQuery{ID: id})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sweet,
	})
}

// ListSweets handles GET /api/sweets
func (h *SweetHandler) ListSweets(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListSweetsQuery{
		Category: params.Get("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// RegisterRoutes registers all catalog routes
func (h *SweetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sweets", h.ListSweets).Methods("GET")
	router.HandleFunc("/api/sweets/{id}", h.GetSweet).Methods("GET")
	router.HandleFunc("/api/sweets", h.CreateSweet).Methods("POST")
	router.HandleFunc("/api/sweets/{id}", h.UpdateSweet).Methods("PUT")
}

// RegisterHealthCheck registers the health check endpoint
func (h *SweetHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

func (h *SweetHandler) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, command.ErrInvalidName), errors.Is(err, command.ErrInvalidPrice):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
	case errors.Is(err, domain.ErrSweetNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Sweet not found",
		})
	default:
		logger.Error(r.Context()).Err(err).Msg("Catalog operation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

func sweetIDFromRequest(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid sweet ID",
		})
		return 0, false
	}
	return uint(id), true
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
