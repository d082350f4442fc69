// Package domain defines the types and interfaces for the games service
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"palpite/internal/core/lotto"
)

// SavedGame is one game kept by the user
type SavedGame struct {
	ID        uuid.UUID     `json:"id"`
	Numbers   lotto.Numbers `json:"numbers"`
	Pinned    bool          `json:"pinned"`
	CreatedAt time.Time     `json:"created_at"`
}

// SaveInput carries a batch of games to keep
type SaveInput struct {
	Games [][]int `json:"games" validate:"required,min=1,max=100,dive,len=15"`
}

// ListInput narrows a listing
type ListInput struct {
	PinnedOnly bool `json:"pinned_only"`
}

// PinInput toggles the pinned flag of one game
type PinInput struct {
	ID     string `json:"id" validate:"required,uuid"`
	Pinned bool   `json:"pinned"`
}

// DeleteInput identifies one game to remove
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid"`
}

// GamesPort stores and lists the user's kept games
type GamesPort interface {
	Save(ctx context.Context, in SaveInput) ([]SavedGame, error)
	List(ctx context.Context, in ListInput) ([]SavedGame, error)
	SetPinned(ctx context.Context, in PinInput) (SavedGame, error)
	Delete(ctx context.Context, in DeleteInput) error
}
