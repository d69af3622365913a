package tools

// Outcome is the terminal state a candidate reaches during a registration
// pass.
type Outcome string

// Terminal outcomes. Only OutcomeRegistered contributes a public mount
// path; every other outcome is diagnostic.
const (
	OutcomeRegistered  Outcome = "registered"
	OutcomeLoadFailed  Outcome = "load_failed"
	OutcomeNoRouter    Outcome = "no_router"
	OutcomeBadRouter   Outcome = "bad_router"
	OutcomeMountFailed Outcome = "mount_failed"
)

// Entry records the terminal outcome for a single candidate.
type Entry struct {
	Module  string  `json:"module"`
	Path    string  `json:"path"`
	Mount   string  `json:"mount,omitempty"`
	Outcome Outcome `json:"outcome"`
	Error   string  `json:"error,omitempty"`
}

// Report is the append-only record of one registration pass, one entry per
// candidate in discovery order. It lives for the process lifetime and backs
// the diagnostics API; it is never persisted.
type Report struct {
	Entries []Entry `json:"entries"`
}

// Registered returns the mount paths of every successfully registered tool,
// in discovery order.
func (r *Report) Registered() []string {
	paths := make([]string, 0, len(r.Entries))
	for _, entry := range r.Entries {
		if entry.Outcome == OutcomeRegistered {
			paths = append(paths, entry.Mount)
		}
	}
	return paths
}

func (r *Report) append(c Candidate, mount string, outcome Outcome, err error) {
	entry := Entry{
		Module:  c.ModuleID,
		Path:    c.RelPath,
		Mount:   mount,
		Outcome: outcome,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	r.Entries = append(r.Entries, entry)
}
