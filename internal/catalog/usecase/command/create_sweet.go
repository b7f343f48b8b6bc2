package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

var (
	ErrInvalidName  = errors.New("sweet name is required")
	ErrInvalidPrice = errors.New("sweet price must be positive")
)

// CreateSweetCommand represents the create sweet command
type CreateSweetCommand struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// CreateSweetHandler handles create sweet commands
type CreateSweetHandler struct {
	repo domain.SweetRepository
}

func NewCreateSweetHandler(repo domain.SweetRepository) *CreateSweetHandler {
	return &CreateSweetHandler{repo: repo}
}

func (h *CreateSweetHandler) Handle(ctx context.Context, cmd CreateSweetCommand) (*domain.Sweet, error) {
	if cmd.Name == "" {
		return nil, ErrInvalidName
	}
	if cmd.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	sweet := &domain.Sweet{
		Name:        cmd.Name,
		Description: cmd.Description,
		Category:    cmd.Category,
		Price:       cmd.Price,
		IsActive:    true,
	}
	if err := h.repo.Create(ctx, sweet); err != nil {
		return nil, fmt.Errorf("failed to create sweet: %w", err)
	}
	return sweet, nil
}
