package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"vm-portmap/internal/types"
)

type FragmentFileAdapter struct {
	Stdout *os.File
}

func NewFragmentFileAdapter() FragmentFileAdapter {
	return FragmentFileAdapter{Stdout: os.Stdout}
}

// WriteFragment marshals the deployment fragment to YAML and writes it to
// path, creating parent directories as needed. An empty path writes to
// standard output.
func (a FragmentFileAdapter) WriteFragment(fragment types.DeploymentFragment, path string) error {
	data, err := yaml.Marshal(fragment)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal deployment fragment").
			WithCause(err)
	}
	if path == "" {
		if _, err := a.Stdout.Write(data); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write deployment fragment").
				WithCause(err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write deployment fragment").
			WithCause(err)
	}
	return nil
}
