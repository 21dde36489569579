package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".liftscript"

	// HomeEnv overrides the base directory.
	HomeEnv = "LIFTSCRIPT_HOME"
)

// ResolveBasePath returns $LIFTSCRIPT_HOME when set to a non-blank value,
// else ~/.liftscript.
func ResolveBasePath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return ExpandHome(dir)
	}
	return ExpandHome(filepath.Join("~", DefaultDirName))
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~name/...", are returned unchanged.
func ExpandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && !os.IsPathSeparator(rest[0])) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + rest, nil
}
