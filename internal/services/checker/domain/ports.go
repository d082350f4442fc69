// Package domain defines the types and interfaces for the checker service
package domain

import (
	"context"

	"palpite/internal/core/check"
)

// CheckInput carries one game to score against history
type CheckInput struct {
	Numbers []int `json:"numbers" validate:"required,len=15,dive,min=1,max=25"`
}

// CheckerPort scores games against the stored draw history
type CheckerPort interface {
	Check(ctx context.Context, in CheckInput) (check.Result, error)
}
