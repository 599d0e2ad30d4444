// Package testutil provides shared helpers for the integration test
// packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"vm-portmap/internal/types"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// LoadFragment reads and unmarshals a deployment fragment YAML file.
func LoadFragment(t *testing.T, path string) types.DeploymentFragment {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fragment types.DeploymentFragment
	require.NoError(t, yaml.Unmarshal(data, &fragment))
	return fragment
}
