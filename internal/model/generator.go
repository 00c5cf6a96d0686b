package model

import "github.com/vaultpass/passgen/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string            `json:"password"`
	Length   int               `json:"length"`
	Strength strength.Label    `json:"strength"`
	Score    int               `json:"score"`
	Estimate strength.Estimate `json:"estimate"`
}

// StrengthRequest represents a request to rate an existing password.
type StrengthRequest struct {
	Password   string   `json:"password"`
	UserInputs []string `json:"user_inputs,omitempty"`
}

// StrengthResponse represents the rating of a password.
type StrengthResponse struct {
	Strength strength.Label    `json:"strength"`
	Score    int               `json:"score"`
	Estimate strength.Estimate `json:"estimate"`
}
