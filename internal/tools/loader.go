package tools

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// RouterSymbol is the conventional name a tool file exports to declare its
// endpoints. The exported value must satisfy http.Handler.
const RouterSymbol = "Router"

// Loader evaluates tool source files, each in its own interpreter so that
// one broken file cannot affect another.
type Loader struct {
	maxFileSize int64
}

// NewLoader creates a loader. Files larger than maxFileSize bytes are
// refused; zero disables the limit.
func NewLoader(maxFileSize int64) *Loader {
	return &Loader{maxFileSize: maxFileSize}
}

// LoadedTool holds the interpreter state for one evaluated candidate.
type LoadedTool struct {
	candidate Candidate
	interp    *interp.Interpreter
}

// Load reads and evaluates the candidate's source in a fresh interpreter
// with full standard library symbols. Top-level declarations and
// initializers run exactly once, here. Every failure mode, including
// panics raised by the evaluated code, is returned as an error scoped to
// this candidate.
func (l *Loader) Load(c Candidate) (lt *LoadedTool, err error) {
	defer func() {
		if r := recover(); r != nil {
			lt = nil
			err = fmt.Errorf("load %s: panic: %v", c.ModuleID, r)
		}
	}()

	info, err := os.Stat(c.AbsPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.ModuleID, err)
	}
	if l.maxFileSize > 0 && info.Size() > l.maxFileSize {
		return nil, fmt.Errorf("load %s: source is %d bytes, limit is %d", c.ModuleID, info.Size(), l.maxFileSize)
	}

	src, err := os.ReadFile(c.AbsPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.ModuleID, err)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load %s: stdlib symbols: %w", c.ModuleID, err)
	}

	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("load %s: %w", c.ModuleID, err)
	}

	return &LoadedTool{candidate: c, interp: i}, nil
}

// Candidate returns the candidate this tool was loaded from.
func (t *LoadedTool) Candidate() Candidate {
	return t.candidate
}

// Router looks up the tool's conventional router export. A missing symbol
// returns ErrNoRouter, the valid helper-file outcome; a symbol of the
// wrong shape, or any other lookup failure, returns a candidate-scoped
// error.
func (t *LoadedTool) Router() (h http.Handler, err error) {
	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = fmt.Errorf("%s: %s lookup panic: %v", t.candidate.ModuleID, RouterSymbol, r)
		}
	}()

	v, err := t.interp.Eval("main." + RouterSymbol)
	if err != nil {
		if isUndefined(err) {
			return nil, ErrNoRouter
		}
		return nil, fmt.Errorf("%s: evaluate %s: %w", t.candidate.ModuleID, RouterSymbol, err)
	}

	handler, ok := v.Interface().(http.Handler)
	if !ok {
		return nil, fmt.Errorf("%s: %s is %T, want http.Handler", t.candidate.ModuleID, RouterSymbol, v.Interface())
	}

	return handler, nil
}

// isUndefined reports whether an eval error means the symbol does not
// exist, as opposed to an interpreter failure. The interpreter has no
// sentinel for this, so the error text is the contract.
func isUndefined(err error) bool {
	return strings.Contains(err.Error(), "undefined")
}
