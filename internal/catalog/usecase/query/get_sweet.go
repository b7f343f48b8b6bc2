package query

import (
	"context"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

// GetSweetQuery represents the get sweet query
type GetSweetQuery struct {
	ID uint
}

// GetSweetHandler handles get sweet queries
type GetSweetHandler struct {
	repo domain.SweetRepository
}

func NewGetSweetHandler(repo domain.SweetRepository) *GetSweetHandler {
	return &GetSweetHandler{repo: repo}
}

func (h *GetSweetHandler) Handle(ctx context.Context, q GetSweetQuery) (*domain.Sweet, error) {
	return h.repo.FindByID(ctx, q.ID)
}
