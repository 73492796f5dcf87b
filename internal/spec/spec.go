package spec

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Supported frontend frameworks.
const (
	FrameworkReact   = "react"
	FrameworkVue     = "vue"
	FrameworkVanilla = "vanilla"
)

// Supported frontend languages.
const (
	LanguageJS = "js"
	LanguageTS = "ts"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var titleCaser = cases.Title(language.English)

// Options holds backend feature toggles.
type Options struct {
	EnableLogging   bool
	EnableDevServer bool
}

// Spec describes what to generate. Immutable once validated.
type Spec struct {
	Name            string
	Version         string
	FrontendEnabled bool
	BackendEnabled  bool
	Framework       string
	Language        string
	Options         Options
}

// New returns a Spec with defaults applied (version 0.1.0, both parts enabled).
func New(name string) Spec {
	return Spec{
		Name:            name,
		Version:         "0.1.0",
		FrontendEnabled: true,
		BackendEnabled:  true,
		Framework:       FrameworkReact,
		Language:        LanguageJS,
		Options: Options{
			EnableLogging:   true,
			EnableDevServer: true,
		},
	}
}

// Validate checks the name pattern and enum membership. It reports the first
// problem found; callers prompt or re-flag and try again.
func (s Spec) Validate() error {
	if !namePattern.MatchString(s.Name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9-]*", s.Name)
	}
	switch s.Framework {
	case FrameworkReact, FrameworkVue, FrameworkVanilla:
	default:
		return fmt.Errorf("unknown framework %q: supported frameworks are %q, %q, and %q",
			s.Framework, FrameworkReact, FrameworkVue, FrameworkVanilla)
	}
	switch s.Language {
	case LanguageJS, LanguageTS:
	default:
		return fmt.Errorf("unknown language %q: supported languages are %q and %q",
			s.Language, LanguageJS, LanguageTS)
	}
	if !s.FrontendEnabled && !s.BackendEnabled {
		return fmt.Errorf("nothing to generate: enable the frontend, the backend, or both")
	}
	return nil
}

// TemplateSet returns the frontend template directory name, e.g. "react-ts".
func (s Spec) TemplateSet() string {
	return s.Framework + "-" + s.Language
}

// DisplayName derives a human-readable title from the project name,
// e.g. "hello-counter" → "Hello Counter".
func (s Spec) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(s.Name, "-", " "))
}
