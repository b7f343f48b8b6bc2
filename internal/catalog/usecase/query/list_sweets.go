package query

import (
	"context"
	"fmt"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListSweetsQuery represents the list sweets query
type ListSweetsQuery struct {
	Category string
	Page     int
	Limit    int
}

// SweetPage is one page of catalog entries
type SweetPage struct {
	Sweets     []domain.Sweet `json:"sweets"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// ListSweetsHandler handles list sweets queries
type ListSweetsHandler struct {
	repo domain.SweetRepository
}

func NewListSweetsHandler(repo domain.SweetRepository) *ListSweetsHandler {
	return &ListSweetsHandler{repo: repo}
}

func (h *ListSweetsHandler) Handle(ctx context.Context, q ListSweetsQuery) (*SweetPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := (page - 1) * limit

	var (
		sweets []domain.Sweet
		err    error
	)
	if q.Category != "" {
		sweets, err = h.repo.FindByCategory(ctx, q.Category, limit, offset)
	} else {
		sweets, err = h.repo.FindAll(ctx, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sweets: %w", err)
	}

	total, err := h.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sweets: %w", err)
	}

	if sweets == nil {
		sweets = []domain.Sweet{}
	}
	return &SweetPage{
		Sweets:     sweets,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}
