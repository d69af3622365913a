// Package tools discovers tool source files under a root directory, loads
// each one in an isolated interpreter, and registers its declared router
// on a mountable module.
//
// A tool is a single .go file anywhere under the root. At startup the
// server walks the tree, evaluates every candidate with yaegi, and looks
// for an exported Router http.Handler. Files that declare one are mounted
// under a URL path derived from their location: the file tools/weather/wind.go
// serves at /tools/weather/wind/. Files without a Router are shared helpers
// and register nothing.
//
// The pass is one-shot and fail-isolated: a broken tool file is recorded
// and skipped, and every other candidate still registers. Only a missing
// root directory aborts startup.
package tools
