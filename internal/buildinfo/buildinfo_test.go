package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"release", Info{Version: "v1.2.0", Commit: "abc"}, "v1.2.0"},
		{"commit", Info{Version: "dev", Commit: "0123456789abcdef"}, "0123456789ab"},
		{"dirty", Info{Version: "dev", Commit: "abc", Modified: true}, "abc+dirty"},
		{"unknown", Info{Version: "dev", Commit: "unknown"}, "dev"},
		{"empty", Info{}, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}

func TestReadKeepsLdflags(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v9.9.9"

	assert.Equal(t, "v9.9.9", Read().Version)
	assert.Equal(t, "v9.9.9", Short())
	assert.Contains(t, String(), "v9.9.9 (commit ")
}
