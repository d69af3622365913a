package tools

import "strings"

// MountPath derives the public mount path for a candidate's relative path:
// extension stripped, path separators preserved as URL segments, prefixed
// with basePath, trailing slash. It is a pure function of the relative
// path: the same input always maps to the same mount path, and distinct
// inputs never collide.
func MountPath(basePath, relPath string) string {
	return basePath + localMountPath(relPath) + "/"
}

// localMountPath is the module-local form, without the base prefix or
// trailing slash ("weather/wind.go" -> "/weather/wind").
func localMountPath(relPath string) string {
	return "/" + strings.TrimSuffix(relPath, SourceExt)
}
