package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"vm-portmap/internal/types"
)

func sampleFragment() types.DeploymentFragment {
	return types.DeploymentFragment{
		Template: types.Template{
			VMParams: types.VMParams{
				Metadata: types.VMMetadata{
					Items: []types.MetadataItem{
						{Key: types.PublishPortsMetadataKey, Value: "--publish=8080:8080 "},
					},
				},
			},
		},
	}
}

func TestWriteFragmentToFile(t *testing.T) {
	adapter := NewFragmentFileAdapter()
	path := filepath.Join(t.TempDir(), "out", "fragment.yaml")

	require.NoError(t, adapter.WriteFragment(sampleFragment(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded types.DeploymentFragment
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	require.Len(t, loaded.Template.VMParams.Metadata.Items, 1)
	assert.Equal(t, types.PublishPortsMetadataKey, loaded.Template.VMParams.Metadata.Items[0].Key)
	assert.Equal(t, "--publish=8080:8080 ", loaded.Template.VMParams.Metadata.Items[0].Value)
}

func TestWriteFragmentToStdout(t *testing.T) {
	out, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	defer out.Close()

	adapter := FragmentFileAdapter{Stdout: out}
	require.NoError(t, adapter.WriteFragment(sampleFragment(), ""))

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), types.PublishPortsMetadataKey)
}
