// pkg/testutil/environment.go
// DEPENDENCIES: pkg/paths
// PURPOSE: Keep tests away from the user's configuration and log file

package testutil

import (
	"os"
	"testing"

	"github.com/arthur-debert/persist-make/pkg/paths"
)

// configEnv lists the variables that feed the configuration directly
var configEnv = []string{
	"PERSIST_MAKE_ROOTS_SOURCE",
	"PERSIST_MAKE_ROOTS_TARGET",
	"PERSIST_MAKE_PATHS",
	"PERSIST_MAKE_LOGGING_VERBOSITY",
}

// Isolate points config and state lookups at fresh temporary directories,
// clears configuration variables inherited from the caller and disables the
// log file. It returns the config directory.
func Isolate(t *testing.T) string {
	t.Helper()

	configDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvStateDir, t.TempDir())
	t.Setenv("PERSIST_MAKE_LOGGING_FILE", "false")

	for _, key := range configEnv {
		// Setenv registers the restore; the variable must be absent, not empty
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	return configDir
}

// RequireRoot skips the test if not running as root.
func RequireRoot(t *testing.T) {
	t.Helper()

	if os.Geteuid() != 0 {
		t.Skip("Test requires root privileges")
	}
}
