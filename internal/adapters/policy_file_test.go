package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicyEmptyPathReturnsDefaults(t *testing.T) {
	policy, err := NewPolicyFileAdapter().LoadPolicy("")
	require.NoError(t, err)
	assert.True(t, policy.HostReserved(22))
	assert.False(t, policy.HostReserved(9000))
}

func TestLoadPolicyMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reserved.yaml")
	content := "reserved_host_ports: [9000]\nreserved_container_ports: [9001]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	policy, err := NewPolicyFileAdapter().LoadPolicy(path)
	require.NoError(t, err)
	assert.True(t, policy.HostReserved(9000))
	assert.True(t, policy.ContainerReserved(9001))
	assert.True(t, policy.HostReserved(5000))
}

func TestLoadPolicyMissingFile(t *testing.T) {
	_, err := NewPolicyFileAdapter().LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLoadPolicyMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reserved.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reserved_host_ports: {not: a list}"), 0644))

	_, err := NewPolicyFileAdapter().LoadPolicy(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
