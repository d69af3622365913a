package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/pkg/module"
)

// NewModule runs one discovery and registration pass over cfg.Root and
// returns the resulting tools module alongside the pass report. The pass
// is single-threaded and runs to completion before the server accepts
// requests. Only a missing root aborts; every per-candidate failure is
// recorded and the pass continues.
func NewModule(cfg *config.ToolsConfig, logger *slog.Logger) (*module.Module, *Report, error) {
	candidates, err := Walk(cfg.Root, cfg.Exclude)
	if err != nil {
		return nil, nil, err
	}

	loader := NewLoader(cfg.MaxFileSizeBytes())
	report := &Report{}

	// Resolve every candidate to a mount spec first, then commit the
	// specs in a second pass. Mapping is pure, so specs never conflict
	// and commit order cannot change the result.
	var specs []mountSpec
	for _, c := range candidates {
		spec, ok := resolve(loader, c, cfg.BasePath, report, logger)
		if ok {
			specs = append(specs, spec)
		}
	}

	mux := http.NewServeMux()
	for _, spec := range specs {
		if err := mount(mux, spec.local, spec.unit); err != nil {
			report.append(spec.candidate, spec.public, OutcomeMountFailed, err)
			logger.Error("tool mount failed", "module", spec.candidate.ModuleID, "path", spec.candidate.RelPath, "error", err)
			continue
		}
		report.append(spec.candidate, spec.public, OutcomeRegistered, nil)
		logger.Info("tool registered", "module", spec.candidate.ModuleID, "mount", spec.public)
	}

	return module.New(cfg.BasePath, mux), report, nil
}

// mountSpec pairs a tool's registrable unit with its computed mount paths.
type mountSpec struct {
	candidate Candidate
	unit      http.Handler
	local     string
	public    string
}

// resolve loads a candidate and extracts its router, recording failed and
// routerless candidates in the report. It returns the candidate's mount
// spec and whether the candidate should be committed.
func resolve(loader *Loader, c Candidate, basePath string, report *Report, logger *slog.Logger) (mountSpec, bool) {
	lt, err := loader.Load(c)
	if err != nil {
		report.append(c, "", OutcomeLoadFailed, err)
		logger.Error("tool load failed", "module", c.ModuleID, "path", c.RelPath, "error", err)
		return mountSpec{}, false
	}

	unit, err := lt.Router()
	if err != nil {
		if errors.Is(err, ErrNoRouter) {
			report.append(c, "", OutcomeNoRouter, nil)
			logger.Info("no router declared", "module", c.ModuleID, "path", c.RelPath)
		} else {
			report.append(c, "", OutcomeBadRouter, err)
			logger.Error("tool router rejected", "module", c.ModuleID, "path", c.RelPath, "error", err)
		}
		return mountSpec{}, false
	}

	return mountSpec{
		candidate: c,
		unit:      unit,
		local:     localMountPath(c.RelPath),
		public:    MountPath(basePath, c.RelPath),
	}, true
}

// mount attaches the unit at path and its subtree on the module mux,
// converting any registration panic into a candidate-scoped error.
func mount(mux *http.ServeMux, path string, unit http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mount %s: %v", path, r)
		}
	}()

	mux.Handle(path+"/", http.StripPrefix(path, unit))
	mux.Handle(path, rootRewrite(unit))
	return nil
}

// rootRewrite serves a request for the tool's bare mount path as the
// tool's own root, avoiding ServeMux's canonical-path redirect.
func rootRewrite(unit http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(r.Context())
		r2.URL.Path = "/"
		unit.ServeHTTP(w, r2)
	})
}
