package wizard

import (
	"errors"
	"fmt"

	"github.com/nogeniuss/ZygoKit/internal/answers"
)

var (
	// ErrBack is returned by an Asker to go back one step.
	ErrBack = errors.New("go back")
	// ErrSkip is returned by an Asker when a step has nothing to ask. The
	// answer is stored and the wizard keeps moving in its current direction.
	ErrSkip = errors.New("nothing to ask")
)

// Asker asks one question per method.
type Asker interface {
	AskLanguage() (string, error)
	AskProjectName() (string, error)
	AskDomain() (string, error)
	AskArchitecture(domain string) (string, error)
	AskFramework(domain, language string) (string, error)
	// AskFeatures returns nil when the user configures no features.
	AskFeatures(domain, language string) (*answers.Features, error)
}

// Step names one state of the wizard.
type Step int

const (
	StepLanguage Step = iota
	StepProjectName
	StepDomain
	StepArchitecture
	StepFramework
	StepFeatures
	StepDone
)

var stepNames = [...]string{
	StepLanguage:     "language",
	StepProjectName:  "projectName",
	StepDomain:       "domain",
	StepArchitecture: "architecture",
	StepFramework:    "framework",
	StepFeatures:     "features",
	StepDone:         "done",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// back returns the step before s. The language step has no predecessor.
func (s Step) back() Step {
	if s <= StepLanguage {
		return StepLanguage
	}
	return s - 1
}

// Run asks every question in order and returns the collected answers. Any
// error other than ErrBack or ErrSkip aborts the run.
func Run(a Asker) (answers.RawAnswers, error) {
	var raw answers.RawAnswers
	step := StepLanguage
	backward := false

	for step != StepDone {
		err := ask(a, step, &raw)
		switch {
		case err == nil:
			step, backward = step+1, false
		case errors.Is(err, ErrSkip):
			if backward && step > StepLanguage {
				step = step.back()
			} else {
				step, backward = step+1, false
			}
		case errors.Is(err, ErrBack):
			step, backward = step.back(), true
		default:
			return answers.RawAnswers{}, fmt.Errorf("%s step: %w", step, err)
		}
	}
	return raw, nil
}

// answered reports whether v should be stored for a step that returned err.
func answered(err error) bool {
	return err == nil || errors.Is(err, ErrSkip)
}

func ask(a Asker, step Step, raw *answers.RawAnswers) error {
	var (
		v   string
		err error
	)
	switch step {
	case StepLanguage:
		if v, err = a.AskLanguage(); answered(err) {
			raw.Language = v
		}
	case StepProjectName:
		if v, err = a.AskProjectName(); answered(err) {
			raw.ProjectName = v
		}
	case StepDomain:
		if v, err = a.AskDomain(); answered(err) {
			raw.Domain = v
		}
	case StepArchitecture:
		if v, err = a.AskArchitecture(raw.Domain); answered(err) {
			raw.Architecture = v
		}
	case StepFramework:
		if v, err = a.AskFramework(raw.Domain, raw.Language); answered(err) {
			raw.Framework = v
		}
	case StepFeatures:
		var f *answers.Features
		if f, err = a.AskFeatures(raw.Domain, raw.Language); answered(err) {
			raw.Features = f
		}
	default:
		err = fmt.Errorf("unknown step %d", int(step))
	}
	return err
}
