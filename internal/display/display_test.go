package display

import (
	"testing"

	"github.com/MKhiriev/dollhouse-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want models.DisplayConfig
	}{
		{
			name: "no arguments",
			args: nil,
			want: models.DisplayConfig{},
		},
		{
			name: "resolution only",
			args: []string{"1024x768"},
			want: models.DisplayConfig{Width: 1024, Height: 768, Specified: true},
		},
		{
			name: "windowed",
			args: []string{"1024x768", "windowed"},
			want: models.DisplayConfig{Width: 1024, Height: 768, Windowed: true, Specified: true},
		},
		{
			name: "windowed upper case",
			args: []string{"1024x768", "WINDOWED"},
			want: models.DisplayConfig{Width: 1024, Height: 768, Windowed: true, Specified: true},
		},
		{
			name: "upper case separator",
			args: []string{"800X600"},
			want: models.DisplayConfig{Width: 800, Height: 600, Specified: true},
		},
		{
			name: "other mode stays fullscreen",
			args: []string{"800x600", "fullscreen"},
			want: models.DisplayConfig{Width: 800, Height: 600, Specified: true},
		},
		{
			name: "no bounds validation",
			args: []string{"0x-1"},
			want: models.DisplayConfig{Width: 0, Height: -1, Specified: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDisplayArgs(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDisplayArgs_Malformed(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no separator", args: []string{"bad"}},
		{name: "missing height", args: []string{"1024x"}},
		{name: "missing width", args: []string{"x768"}},
		{name: "non-numeric height", args: []string{"1024xabc"}},
		{name: "extra separator", args: []string{"1024x768x32"}},
		{name: "empty token", args: []string{"", "windowed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDisplayArgs(tt.args)

			assert.ErrorIs(t, err, ErrMalformedArgument)
			assert.Equal(t, models.DisplayConfig{}, got)
		})
	}
}
