package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

const (
	// EnvToolsRoot overrides the tool discovery root directory.
	EnvToolsRoot = "TOOLS_ROOT"

	// EnvToolsBasePath overrides the mount prefix for registered tools.
	EnvToolsBasePath = "TOOLS_BASE_PATH"

	// EnvToolsMaxFileSize overrides the maximum tool source file size.
	EnvToolsMaxFileSize = "TOOLS_MAX_FILE_SIZE"
)

// ToolsConfig contains tool discovery and registration configuration.
type ToolsConfig struct {
	// Root is the directory scanned for tool source files.
	// Default: "tools"
	Root string `toml:"root"`

	// BasePath is the single-segment prefix tools are mounted under.
	// Default: "/tools"
	BasePath string `toml:"base_path"`

	// Exclude lists base-name patterns that never register as tools.
	// Default: templates, hidden files, package markers, and test files.
	Exclude []string `toml:"exclude"`

	MaxFileSize    string `toml:"max_file_size"`
	maxFileSizeVal int64
}

// MaxFileSizeBytes returns the parsed maximum tool source file size.
func (c *ToolsConfig) MaxFileSizeBytes() int64 {
	return c.maxFileSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the tools configuration.
func (c *ToolsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ToolsConfig) Merge(overlay *ToolsConfig) {
	if overlay.Root != "" {
		c.Root = overlay.Root
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Exclude != nil {
		c.Exclude = overlay.Exclude
	}
	if size, err := units.FromHumanSize(overlay.MaxFileSize); err == nil {
		c.MaxFileSize = overlay.MaxFileSize
		c.maxFileSizeVal = size
	}
}

func (c *ToolsConfig) loadDefaults() {
	if c.Root == "" {
		c.Root = "tools"
	}
	if c.BasePath == "" {
		c.BasePath = "/tools"
	}
	if c.Exclude == nil {
		c.Exclude = []string{"_*", ".*", "doc.go", "*_test.go"}
	}
	if c.MaxFileSize == "" {
		c.MaxFileSize = "1MB"
	}
}

func (c *ToolsConfig) loadEnv() {
	if v := os.Getenv(EnvToolsRoot); v != "" {
		c.Root = v
	}
	if v := os.Getenv(EnvToolsBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvToolsMaxFileSize); v != "" {
		c.MaxFileSize = v
	}
}

func (c *ToolsConfig) validate() error {
	if c.Root == "" {
		return fmt.Errorf("root required")
	}

	if err := validateBasePath(c.BasePath); err != nil {
		return err
	}

	size, err := units.FromHumanSize(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_file_size must be positive")
	}
	c.maxFileSizeVal = size

	return nil
}

// validateBasePath enforces the module mount contract: a single path
// segment with a leading slash.
func validateBasePath(basePath string) error {
	if basePath == "" {
		return fmt.Errorf("base_path required")
	}
	if !strings.HasPrefix(basePath, "/") {
		return fmt.Errorf("base_path %q must begin with a slash", basePath)
	}
	if basePath == "/" || strings.Count(basePath, "/") > 1 {
		return fmt.Errorf("base_path %q must be a single path segment", basePath)
	}
	return nil
}
