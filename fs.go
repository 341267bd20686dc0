package ensure

import (
	"os"
)

// Exists signals a violation if no filesystem entry is present at the given
// path, and otherwise returns the path unchanged.
func Exists(path string, msgAndArgs ...any) string {
	requirePath(path)

	if !statExists(path) {
		failPath(`Path %q doesn't exist`, path, msgAndArgs)
	}

	return path
}

// NotExists signals a violation if a filesystem entry is present at the given
// path, and otherwise returns the path unchanged.
func NotExists(path string, msgAndArgs ...any) string {
	requirePath(path)

	if statExists(path) {
		failPath(`Path %q already exists`, path, msgAndArgs)
	}

	return path
}

// Directory signals a violation if the filesystem entry at the given path is
// absent or not a directory, and otherwise returns the path unchanged.
func Directory(path string, msgAndArgs ...any) string {
	requirePath(path)

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		failPath(`Path %q is not a directory`, path, msgAndArgs)
	}

	return path
}

func requirePath(path string) {
	True(path != "", "Given path must not be empty")
}

// statExists performs a single blocking query against the host filesystem.
func statExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// failPath interpolates the path into the default message, since the path
// itself is the most useful diagnostic for the filesystem checks.
func failPath(defaultFormat, path string, msgAndArgs []any) {
	if len(msgAndArgs) == 0 {
		Fail(defaultFormat, path)
	}

	fail("", msgAndArgs)
}
