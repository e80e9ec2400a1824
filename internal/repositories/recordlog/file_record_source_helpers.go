package recordlog

import (
	"os/user"
	"path/filepath"
	"strings"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil || usr.HomeDir == "" {
		return absPath
	}
	homeDir := filepath.Clean(usr.HomeDir)

	if absPath == homeDir {
		return "~"
	}
	// Require a separator so /home/bob2 is not treated as inside /home/bob.
	if !strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return absPath
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}
