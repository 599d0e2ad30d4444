package shared

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"8080", []string{"8080"}},
		{"8080,9000:9090", []string{"8080", "9000:9090"}},
		{" 8080 , 9000 ", []string{"8080", "9000"}},
		{"", []string{""}},
		{"8080,,9000", []string{"8080", "", "9000"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitCSV(tt.value)); diff != "" {
			t.Fatalf("unexpected tokens for %q (-want +got):\n%s", tt.value, diff)
		}
	}
}
