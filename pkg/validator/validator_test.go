package validator_test

import (
	"errors"
	"strings"
	"testing"

	"healthcare-assistant-client/pkg/validator"
)

type samplePayload struct {
	Email string `validate:"required,email"`
	Date  string `validate:"omitempty,datetime=2006-01-02"`
	Limit int    `validate:"omitempty,min=1"`
}

func TestValidate(t *testing.T) {
	rv := validator.NewRequestValidator()

	t.Run("valid payload", func(t *testing.T) {
		if err := rv.Validate(&samplePayload{Email: "ana@example.com", Date: "2025-11-01", Limit: 5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("optional fields may be zero", func(t *testing.T) {
		if err := rv.Validate(&samplePayload{Email: "ana@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("aggregates field failures", func(t *testing.T) {
		err := rv.Validate(&samplePayload{Email: "nope", Date: "01/02/2025"})
		if err == nil {
			t.Fatal("expected error")
		}
		var vErr *validator.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if len(vErr.Fields) != 2 {
			t.Errorf("expected 2 failing fields, got %v", vErr.Fields)
		}
		if !strings.Contains(vErr.Error(), "validation failed") {
			t.Errorf("unexpected error text %q", vErr.Error())
		}
	})
}
