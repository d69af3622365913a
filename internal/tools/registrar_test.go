package tools_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/tools"
	"github.com/JaimeStill/tool-server/pkg/module"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func toolsConfig(t *testing.T, root string) *config.ToolsConfig {
	t.Helper()

	cfg := &config.ToolsConfig{Root: root}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	return cfg
}

func buildTree(t *testing.T) string {
	root := t.TempDir()

	writeFile(t, root, "weather/wind.go", windSrc)
	writeFile(t, root, "helper.go", helperSrc)
	writeFile(t, root, "broken.go", brokenSrc)
	writeFile(t, root, "shape.go", badRouterSrc)
	writeFile(t, root, "_template.go", windSrc)

	return root
}

func TestNewModule(t *testing.T) {
	cfg := toolsConfig(t, buildTree(t))

	m, report, err := tools.NewModule(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewModule() failed: %v", err)
	}

	if m.Prefix() != "/tools" {
		t.Errorf("Prefix() = %q, want %q", m.Prefix(), "/tools")
	}

	wantOutcomes := map[string]tools.Outcome{
		"broken":       tools.OutcomeLoadFailed,
		"helper":       tools.OutcomeNoRouter,
		"shape":        tools.OutcomeBadRouter,
		"weather.wind": tools.OutcomeRegistered,
	}

	if len(report.Entries) != len(wantOutcomes) {
		t.Fatalf("len(Entries) = %d, want %d", len(report.Entries), len(wantOutcomes))
	}

	for _, entry := range report.Entries {
		want, ok := wantOutcomes[entry.Module]
		if !ok {
			t.Errorf("unexpected entry for module %q", entry.Module)
			continue
		}
		if entry.Outcome != want {
			t.Errorf("module %q outcome = %q, want %q", entry.Module, entry.Outcome, want)
		}
	}

	registered := report.Registered()
	if len(registered) != 1 || registered[0] != "/tools/weather/wind/" {
		t.Errorf("Registered() = %v, want [/tools/weather/wind/]", registered)
	}
}

func TestNewModule_FailureEntries(t *testing.T) {
	cfg := toolsConfig(t, buildTree(t))

	_, report, err := tools.NewModule(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewModule() failed: %v", err)
	}

	for _, entry := range report.Entries {
		switch entry.Outcome {
		case tools.OutcomeLoadFailed, tools.OutcomeBadRouter:
			if entry.Error == "" {
				t.Errorf("module %q: %s entry should carry an error", entry.Module, entry.Outcome)
			}
			if entry.Mount != "" {
				t.Errorf("module %q: failed entry should not carry a mount", entry.Module)
			}
		case tools.OutcomeNoRouter:
			if entry.Error != "" {
				t.Errorf("module %q: no_router is not an error, got %q", entry.Module, entry.Error)
			}
		}
	}
}

func TestNewModule_Serving(t *testing.T) {
	cfg := toolsConfig(t, buildTree(t))

	m, _, err := tools.NewModule(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewModule() failed: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"tool root", http.MethodPost, "/tools/weather/wind/", http.StatusOK, "wind ok"},
		{"tool root no slash", http.MethodPost, "/tools/weather/wind", http.StatusOK, "wind ok"},
		{"tool subroute", http.MethodGet, "/tools/weather/wind/gust", http.StatusOK, "gust ok"},
		{"wrong method", http.MethodGet, "/tools/weather/wind/", http.StatusMethodNotAllowed, ""},
		{"failed tool absent", http.MethodPost, "/tools/broken/", http.StatusNotFound, ""},
		{"helper absent", http.MethodPost, "/tools/helper/", http.StatusNotFound, ""},
		{"excluded template absent", http.MethodPost, "/tools/_template/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", string(body), tt.wantBody)
				}
			}
		})
	}
}

func TestNewModule_Idempotent(t *testing.T) {
	cfg := toolsConfig(t, buildTree(t))

	_, first, err := tools.NewModule(cfg, testLogger())
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}

	_, second, err := tools.NewModule(cfg, testLogger())
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}

	if len(first.Entries) != len(second.Entries) {
		t.Fatalf("entry counts differ: %d vs %d", len(first.Entries), len(second.Entries))
	}

	for i := range first.Entries {
		if first.Entries[i].Module != second.Entries[i].Module {
			t.Errorf("entry %d module differs: %q vs %q", i, first.Entries[i].Module, second.Entries[i].Module)
		}
		if first.Entries[i].Outcome != second.Entries[i].Outcome {
			t.Errorf("entry %d outcome differs: %q vs %q", i, first.Entries[i].Outcome, second.Entries[i].Outcome)
		}
	}
}

func TestNewModule_EmptyRoot(t *testing.T) {
	cfg := toolsConfig(t, t.TempDir())

	m, report, err := tools.NewModule(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewModule() failed: %v", err)
	}

	if len(report.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(report.Entries))
	}

	router := module.NewRouter()
	router.Mount(m)

	req := httptest.NewRequest(http.MethodGet, "/tools/anything", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}

func TestNewModule_MissingRoot(t *testing.T) {
	cfg := toolsConfig(t, "does-not-exist")

	_, _, err := tools.NewModule(cfg, testLogger())
	if err == nil {
		t.Fatal("NewModule() should fail for a missing root")
	}
}
