// Package prompt asks the user to pick a catalog entry when the CLI is run
// without a target.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoOptions is returned when there is nothing to choose from.
	ErrNoOptions = errors.New("prompt: no options")
)

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message  string
	Options  []string
	Default  string
	Help     string
	PageSize int
}

// Driver abstracts the terminal so callers can be tested without one.
type Driver interface {
	Select(ctx context.Context, cfg SelectConfig) (string, error)
}

// NewSurveyDriver returns a Driver backed by survey/v2.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

type surveyDriver struct{}

func (surveyDriver) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(cfg.Options) == 0 {
		return "", ErrNoOptions
	}
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if indexOf(cfg.Options, cfg.Default) >= 0 {
		prompt.Default = cfg.Default
	}
	var out string
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Static is a Driver that always answers with Choice. Useful in tests and
// non-interactive runs.
type Static struct {
	Choice string
}

// Select returns the configured choice when it is one of the options.
func (s Static) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(cfg.Options) == 0 {
		return "", ErrNoOptions
	}
	if indexOf(cfg.Options, s.Choice) < 0 {
		return "", ErrAborted
	}
	return s.Choice, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
