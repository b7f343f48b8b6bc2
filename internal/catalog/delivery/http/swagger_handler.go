package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Catalog Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListSweets godoc
// @Summary List sweets
// @Description List catalog entries with optional category filter and pagination
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{success=bool,data=object{sweets=array,total_count=int}}
// @Router /api/sweets [get]
func (h *SweetHandler) ListSweetsDoc() {}

// GetSweet godoc
// @Summary Get a sweet
// @Description Fetch a single catalog entry by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Sweet ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/sweets/{id} [get]
func (h *SweetHandler) GetSweetDoc() {}

// CreateSweet godoc
// @Summary Create a sweet
// @Description Create a new catalog entry (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,category=string,price=number} true "Sweet data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/sweets [post]
func (h *SweetHandler) CreateSweetDoc() {}

// UpdateSweet godoc
// @Summary Update a sweet
// @Description Update an existing catalog entry (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Sweet ID"
// @Param request body object{name=string,description=string,category=string,price=number,is_active=bool} true "Fields to update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/sweets/{id} [put]
func (h *SweetHandler) UpdateSweetDoc() {}
