package sysarch

import (
	"testing"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestIsHostOS64Bit_64BitProcessSkipsIntrospection(t *testing.T) {
	calls := 0
	d := newDetector(true, func() (bool, error) {
		calls++
		return false, assert.AnError
	}, logger.Nop())

	assert.True(t, d.IsCurrentProcess64Bit())
	assert.True(t, d.IsHostOS64Bit())
	assert.Zero(t, calls)
}

func TestIsHostOS64Bit_32BitProcess(t *testing.T) {
	tests := []struct {
		name       string
		introspect func() (bool, error)
		want       bool
	}{
		{
			name:       "64-bit host",
			introspect: func() (bool, error) { return true, nil },
			want:       true,
		},
		{
			name:       "32-bit host",
			introspect: func() (bool, error) { return false, nil },
			want:       false,
		},
		{
			name:       "introspection failure falls back to 32-bit",
			introspect: func() (bool, error) { return true, ErrUnsupportedOS },
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDetector(false, tt.introspect, logger.Nop())

			assert.False(t, d.IsCurrentProcess64Bit())
			assert.Equal(t, tt.want, d.IsHostOS64Bit())
		})
	}
}

func TestNewDetector_MatchesPointerWidth(t *testing.T) {
	d := NewDetector(logger.Nop())

	assert.Equal(t, pointerBits == 64, d.IsCurrentProcess64Bit())
	assert.Contains(t, []int{32, 64}, pointerBits)
}

func TestIs64BitMachine(t *testing.T) {
	assert.True(t, is64BitMachine("x86_64"))
	assert.True(t, is64BitMachine("aarch64"))
	assert.False(t, is64BitMachine("i686"))
	assert.False(t, is64BitMachine("armv7l"))
	assert.False(t, is64BitMachine(""))
}
