package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	wrapped := fmt.Errorf("ask: %w", terminal.InterruptErr)
	if err := translateSurveyErr(wrapped); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted for wrapped interrupt, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()
	cfg := SelectConfig{Options: []string{"a", "b"}}

	got, err := Static{Choice: "b"}.Select(ctx, cfg)
	if err != nil || got != "b" {
		t.Fatalf("Select = %q, %v", got, err)
	}
	if _, err := (Static{Choice: "z"}).Select(ctx, cfg); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if _, err := (Static{Choice: "a"}).Select(ctx, SelectConfig{}); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := (Static{Choice: "a"}).Select(cancelled, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSurveyDriver_NoOptions(t *testing.T) {
	if _, err := NewSurveyDriver().Select(context.Background(), SelectConfig{}); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
}
