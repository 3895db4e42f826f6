package cli

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt with Ctrl+C.
var ErrAborted = errors.New("cli: aborted")

// SelectConfig describes a single-choice question.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Prompter asks the user questions. Commands depend on it instead of the
// terminal so they can run under test.
type Prompter interface {
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}

// NewSurveyPrompter returns the interactive Prompter.
func NewSurveyPrompter() Prompter {
	return surveyPrompter{}
}

type surveyPrompter struct{}

func (surveyPrompter) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	question := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		question.Default = cfg.DefaultIndex
	}
	var opts []survey.AskOpt
	if cfg.PageSize > 0 {
		opts = append(opts, survey.WithPageSize(cfg.PageSize))
	}

	// survey stores the chosen index when the answer is an int.
	index := -1
	if err := survey.AskOne(question, &index, opts...); err != nil {
		return -1, askErr(err)
	}
	return index, nil
}

func (surveyPrompter) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false, askErr(err)
	}
	return answer, nil
}

func askErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
