package utils

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseError          = errors.New("database error")
	ErrInvalidInput           = errors.New("invalid input")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUsernameTaken          = errors.New("username already exists")
	ErrSessionNotFound        = errors.New("wizard session not found")
	ErrBrandRequired          = errors.New("please select a brand")
	ErrNotOnRecommendation    = errors.New("wizard has not reached the recommendation step")
	ErrMissingField           = errors.New("missing field")
	ErrInvalidImage           = errors.New("invalid image")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI service")
	ErrAINotConfigured        = errors.New("AI provider not configured")
)

// MissingField reports the questionnaire field a screen left unanswered.
func MissingField(name string) error {
	return fmt.Errorf("%w: please select %s", ErrMissingField, name)
}
