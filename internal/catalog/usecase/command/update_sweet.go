package command

import (
	"context"
	"fmt"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

// UpdateSweetCommand represents the update sweet command. Nil fields are
// left untouched.
type UpdateSweetCommand struct {
	ID          uint     `json:"-"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// UpdateSweetHandler handles update sweet commands
type UpdateSweetHandler struct {
	repo domain.SweetRepository
}

func NewUpdateSweetHandler(repo domain.SweetRepository) *UpdateSweetHandler {
	return &UpdateSweetHandler{repo: repo}
}

func (h *UpdateSweetHandler) Handle(ctx context.Context, cmd UpdateSweetCommand) (*domain.Sweet, error) {
	sweet, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, ErrInvalidName
		}
		sweet.Name = *cmd.Name
	}
	if cmd.Description != nil {
		sweet.Description = *cmd.Description
	}
	if cmd.Category != nil {
		sweet.Category = *cmd.Category
	}
	if cmd.Price != nil {
		if *cmd.Price <= 0 {
			return nil, ErrInvalidPrice
		}
		sweet.Price = *cmd.Price
	}
	if cmd.IsActive != nil {
		sweet.IsActive = *cmd.IsActive
	}

	if err := h.repo.Update(ctx, sweet); err != nil {
		return nil, fmt.Errorf("failed to update sweet: %w", err)
	}
	return sweet, nil
}
