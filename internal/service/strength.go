package service

import (
	"errors"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// StrengthService rates caller-supplied passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check rates the password in req.
func (s *StrengthService) Check(req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}

	score := strength.Score(req.Password)
	return model.StrengthResponse{
		Strength: strength.LabelFor(score),
		Score:    score,
		Estimate: strength.EstimateOf(req.Password, req.UserInputs),
	}, nil
}
