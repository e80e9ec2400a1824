package recordlog

import (
	"os/user"
	"path/filepath"
	"testing"
)

func TestToUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil {
		t.Skipf("cannot determine current user: %v", err)
	}
	homeDir := filepath.Clean(currentUser.HomeDir)
	if homeDir == "" || homeDir == string(filepath.Separator) {
		t.Skip("home directory is not usable for this test")
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "home itself", path: homeDir, want: "~"},
		{name: "file under home", path: filepath.Join(homeDir, "logs", "cookie_log.csv"), want: filepath.Join("~", "logs", "cookie_log.csv")},
		{name: "sibling sharing a prefix", path: homeDir + "2/cookie_log.csv", want: homeDir + "2/cookie_log.csv"},
		{name: "outside home", path: "/tmp/cookie_log.csv", want: "/tmp/cookie_log.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.path); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
