package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"vm-portmap/internal/types"
)

func TestParsePortSpec(t *testing.T) {
	tests := []struct {
		raw  string
		want types.PortPair
	}{
		{"8080", types.PortPair{Host: 8080, Container: 8080}},
		{"2000:2001", types.PortPair{Host: 2000, Container: 2001}},
		{" 3000 : 3001 ", types.PortPair{Host: 3000, Container: 3001}},
		{"  9000  ", types.PortPair{Host: 9000, Container: 9000}},
		{"1:65535", types.PortPair{Host: 1, Container: 65535}},
	}

	for _, tt := range tests {
		pair, err := ParsePortSpec(tt.raw)
		require.NoError(t, err, "spec %q", tt.raw)
		if diff := cmp.Diff(tt.want, pair); diff != "" {
			t.Fatalf("unexpected pair for %q (-want +got):\n%s", tt.raw, diff)
		}
	}
}

func TestParsePortSpecRejectsMalformedInput(t *testing.T) {
	specs := []string{
		"",
		"   ",
		"abc",
		"80a0",
		":8080",
		"8080:",
		"1.5",
		"8000:8001:8002",
		"0",
		"65536",
		"-1",
		"2000:0",
		"2000:65536",
	}

	for _, spec := range specs {
		_, err := ParsePortSpec(spec)
		require.Error(t, err, "spec %q", spec)
	}
}
