package condaenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// PrefixEnvVar holds the installation prefix of the active conda.
const PrefixEnvVar = "CONDA_PREFIX"

// Provisioner creates named conda environments.
type Provisioner struct {
	// Executable is the conda binary name or path.
	Executable string
}

// New returns a Provisioner invoking the given executable.
func New(executable string) *Provisioner {
	return &Provisioner{Executable: executable}
}

// Create runs `<conda> create -n <name> -y`. It fails when the executable
// cannot be started or exits with a non-zero status; the combined output is
// attached to the error.
func (p *Provisioner) Create(ctx context.Context, name string) error {
	bin, err := exec.LookPath(p.Executable)
	if err != nil {
		return fmt.Errorf("locating %s: %w", p.Executable, err)
	}

	cmd := exec.CommandContext(ctx, bin, "create", "-n", name, "-y")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s create -n %s: %w\n%s", p.Executable, name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// LookupPrefix returns the value of CONDA_PREFIX. An empty value is treated
// the same as an unset variable and reports false, so a shell that exports
// CONDA_PREFIX= gets no environment.yml.
func LookupPrefix() (string, bool) {
	v, ok := os.LookupEnv(PrefixEnvVar)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// EnvironmentPath returns the directory conda uses for the named
// environment under prefix: <prefix>/envs/<name>.
func EnvironmentPath(prefix, name string) string {
	return filepath.Join(prefix, "envs", name)
}
