package presenters

import (
	"errors"
	"fmt"
	"testing"

	"recipe-box/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("title is required"), fiber.StatusBadRequest},
		{"not found", domain.NewNotFoundError("recipe"), fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", domain.NewNotFoundError("cook")), fiber.StatusNotFound},
		{"conflict", domain.NewConflictError("duplicate title"), fiber.StatusConflict},
		{"upstream", &domain.UpstreamError{Kind: domain.UpstreamFetchFailed}, fiber.StatusBadGateway},
		{"expired token", domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{"bad credentials", domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"auth disabled", domain.ErrAuthDisabled, fiber.StatusNotFound},
		{"transaction", &domain.TransactionError{Op: "digest", Err: errors.New("disk full")}, fiber.StatusInternalServerError},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}
