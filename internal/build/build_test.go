package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemver(t *testing.T) {
	var tests = []struct {
		in, want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"refs/tags/v0.4.1-rc1", "v0.4.1"},
		{"1.2", "1.2"},
		{"devel", "devel"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, semver(tt.in), tt.in)
	}
}

func TestRFC3339(t *testing.T) {
	assert.Equal(t, "2024-01-02T03:04:05+00:00", rfc3339("2024-01-02T03:04:05Z"))
	assert.Equal(t, "2024-01-02T03:04:05-07:00", rfc3339("2024-01-02T03:04:05-07:00"))
}

func TestString(t *testing.T) {
	assert.Contains(t, String(), "uomgrade ")
}

func TestVersionNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Version())
}
