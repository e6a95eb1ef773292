package main

import (
	"io"

	"github.com/Veraticus/minigrep/pkg/config"
	"github.com/Veraticus/minigrep/pkg/filter"
	"github.com/Veraticus/minigrep/pkg/matcher"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config  *config.Config
	Matcher matcher.Matcher
	Filter  *filter.Filter
}

// NewDependencies creates all dependencies with the given configuration.
// Compiling the pattern happens here, once, before any input is read.
func NewDependencies(cfg *config.Config, pattern string) (*Dependencies, error) {
	m, err := matcher.CompileWithTimeout(pattern, cfg.MatchTimeout)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:  cfg,
		Matcher: m,
		Filter:  filter.New(m, cfg.MaxLineBytes),
	}, nil
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run filters in to out until end of input.
func (a *Application) Run(in io.Reader, out io.Writer) error {
	return a.deps.Filter.Run(in, out)
}
