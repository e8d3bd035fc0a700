package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nogeniuss/ZygoKit/internal/answers"
)

type reply struct {
	value string
	err   error
}

// scriptedAsker replays queued replies and records the order of questions.
type scriptedAsker struct {
	replies  map[Step][]reply
	features *answers.Features
	asked    []Step
	args     [][2]string
}

func (s *scriptedAsker) next(step Step) (string, error) {
	s.asked = append(s.asked, step)
	q := s.replies[step]
	if len(q) == 0 {
		return "", errors.New("script exhausted at " + step.String())
	}
	r := q[0]
	s.replies[step] = q[1:]
	return r.value, r.err
}

func (s *scriptedAsker) AskLanguage() (string, error)    { return s.next(StepLanguage) }
func (s *scriptedAsker) AskProjectName() (string, error) { return s.next(StepProjectName) }
func (s *scriptedAsker) AskDomain() (string, error)      { return s.next(StepDomain) }

func (s *scriptedAsker) AskArchitecture(domain string) (string, error) {
	s.args = append(s.args, [2]string{"architecture", domain})
	return s.next(StepArchitecture)
}

func (s *scriptedAsker) AskFramework(domain, lang string) (string, error) {
	s.args = append(s.args, [2]string{domain, lang})
	return s.next(StepFramework)
}

func (s *scriptedAsker) AskFeatures(_, _ string) (*answers.Features, error) {
	if _, err := s.next(StepFeatures); err != nil {
		return nil, err
	}
	return s.features, nil
}

func ok(v string) reply { return reply{value: v} }

var back = reply{err: ErrBack}

func TestRunStraightThrough(t *testing.T) {
	a := &scriptedAsker{
		replies: map[Step][]reply{
			StepLanguage:     {ok("ts")},
			StepProjectName:  {ok("shop-api")},
			StepDomain:       {ok("backend")},
			StepArchitecture: {ok("Feature-based (modular)")},
			StepFramework:    {ok("Express.js")},
			StepFeatures:     {ok("")},
		},
		features: &answers.Features{Containerization: "docker"},
	}

	raw, err := Run(a)
	require.NoError(t, err)
	assert.Equal(t, answers.RawAnswers{
		Language:     "ts",
		ProjectName:  "shop-api",
		Domain:       "backend",
		Architecture: "Feature-based (modular)",
		Framework:    "Express.js",
		Features:     &answers.Features{Containerization: "docker"},
	}, raw)
	assert.Equal(t, []Step{StepLanguage, StepProjectName, StepDomain, StepArchitecture, StepFramework, StepFeatures}, a.asked)
	assert.Equal(t, [][2]string{{"architecture", "backend"}, {"backend", "ts"}}, a.args)
}

func TestRunBackNavigation(t *testing.T) {
	a := &scriptedAsker{
		replies: map[Step][]reply{
			StepLanguage:     {ok("js")},
			StepProjectName:  {ok("first"), ok("web")},
			StepDomain:       {back, ok("backend"), ok("frontend")},
			StepArchitecture: {back, ok("Atomic Design")},
			StepFramework:    {ok("React")},
			StepFeatures:     {ok("")},
		},
	}

	raw, err := Run(a)
	require.NoError(t, err)
	assert.Equal(t, "web", raw.ProjectName)
	assert.Equal(t, "frontend", raw.Domain)
	assert.Equal(t, "Atomic Design", raw.Architecture)
	assert.Equal(t, "React", raw.Framework)
	assert.Nil(t, raw.Features)

	assert.Equal(t, []Step{
		StepLanguage, StepProjectName,
		StepDomain, StepProjectName,
		StepDomain, StepArchitecture, StepDomain,
		StepArchitecture, StepFramework, StepFeatures,
	}, a.asked)
}

func TestRunFrameworkBackRevisitsArchitecture(t *testing.T) {
	a := &scriptedAsker{
		replies: map[Step][]reply{
			StepLanguage:     {ok("py")},
			StepProjectName:  {ok("svc")},
			StepDomain:       {ok("backend")},
			StepArchitecture: {ok("Monolithic"), ok("Clean Architecture")},
			StepFramework:    {back, ok("FastAPI")},
			StepFeatures:     {ok("")},
		},
	}
	raw, err := Run(a)
	require.NoError(t, err)
	assert.Equal(t, "Clean Architecture", raw.Architecture)
	assert.Equal(t, "FastAPI", raw.Framework)
}

func TestRunBackSkipsEmptyArchitecture(t *testing.T) {
	skip := reply{err: ErrSkip}
	a := &scriptedAsker{
		replies: map[Step][]reply{
			StepLanguage:     {ok("ts")},
			StepProjectName:  {ok("app")},
			StepDomain:       {ok("mobile"), ok("backend")},
			StepArchitecture: {skip, skip, ok("Monolithic")},
			StepFramework:    {back, ok("NestJS")},
			StepFeatures:     {ok("")},
		},
	}
	raw, err := Run(a)
	require.NoError(t, err)
	assert.Equal(t, []Step{
		StepLanguage, StepProjectName, StepDomain, StepArchitecture, StepFramework,
		StepArchitecture, StepDomain, StepArchitecture, StepFramework, StepFeatures,
	}, a.asked)
	assert.Equal(t, "backend", raw.Domain)
	assert.Equal(t, "Monolithic", raw.Architecture)
	assert.Equal(t, "NestJS", raw.Framework)
}

func TestRunSkipClearsEarlierAnswer(t *testing.T) {
	a := &scriptedAsker{
		replies: map[Step][]reply{
			StepLanguage:     {ok("py")},
			StepProjectName:  {ok("app")},
			StepDomain:       {ok("backend"), ok("desktop")},
			StepArchitecture: {ok("Monolithic"), back, {err: ErrSkip}},
			StepFramework:    {back, ok("Kivy")},
			StepFeatures:     {ok("")},
		},
	}
	raw, err := Run(a)
	require.NoError(t, err)
	assert.Equal(t, "desktop", raw.Domain)
	assert.Empty(t, raw.Architecture)
	assert.Equal(t, "Kivy", raw.Framework)
}

func TestRunBackOnLanguageStays(t *testing.T) {
	a := &scriptedAsker{
		replies: map[Step][]reply{
			StepLanguage:     {back, ok("ts")},
			StepProjectName:  {ok("x")},
			StepDomain:       {ok("mobile")},
			StepArchitecture: {{err: ErrSkip}},
			StepFramework:    {ok("Expo")},
			StepFeatures:     {ok("")},
		},
	}
	raw, err := Run(a)
	require.NoError(t, err)
	assert.Equal(t, "ts", raw.Language)
	assert.Equal(t, []Step{StepLanguage, StepLanguage}, a.asked[:2])
}

func TestRunAbortsOnError(t *testing.T) {
	boom := errors.New("stdin closed")
	a := &scriptedAsker{
		replies: map[Step][]reply{
			StepLanguage:    {ok("ts")},
			StepProjectName: {{err: boom}},
		},
	}
	raw, err := Run(a)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "projectName step: stdin closed", err.Error())
	assert.Equal(t, answers.RawAnswers{}, raw)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "language", StepLanguage.String())
	assert.Equal(t, "features", StepFeatures.String())
	assert.Equal(t, "done", StepDone.String())
	assert.Equal(t, "Step(42)", Step(42).String())
}
