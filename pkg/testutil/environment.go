package testutil

import (
	"os"
	"strings"
	"testing"
)

// Environment is an isolated set of directories for one test.
type Environment struct {
	// ConfigHome replaces XDG_CONFIG_HOME.
	ConfigHome string
	// StateHome replaces XDG_STATE_HOME and receives any log file.
	StateHome string
	// Dir is a scratch directory for rule and document files.
	Dir string
}

// Isolate points the XDG directories at fresh temporary directories, clears
// ARBITRATOR_* variables and disables the log file. Everything is restored
// when the test ends.
func Isolate(t *testing.T) *Environment {
	t.Helper()

	env := &Environment{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		Dir:        t.TempDir(),
	}

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "ARBITRATOR_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("ARBITRATOR_LOG_FILE", "false")

	return env
}

// File creates name with content inside env.Dir.
func (env *Environment) File(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, env.Dir, name, content)
}
