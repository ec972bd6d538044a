// Package display parses the positional display arguments of the launcher:
// "<width>x<height>" optionally followed by "windowed".
package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/dollhouse-client/models"
)

// ErrMalformedArgument is returned when the resolution argument is not two
// integers separated by "x".
var ErrMalformedArgument = errors.New("malformed display argument")

const windowedMode = "windowed"

// ParseDisplayArgs parses args. No arguments yields an unspecified fullscreen
// config. Values are not range checked.
func ParseDisplayArgs(args []string) (models.DisplayConfig, error) {
	if len(args) == 0 {
		return models.DisplayConfig{}, nil
	}

	w, h, ok := strings.Cut(strings.ToLower(args[0]), "x")
	if !ok {
		return models.DisplayConfig{}, fmt.Errorf("%w: %q has no width/height separator", ErrMalformedArgument, args[0])
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return models.DisplayConfig{}, fmt.Errorf("%w: width in %q: %w", ErrMalformedArgument, args[0], err)
	}

	height, err := strconv.Atoi(h)
	if err != nil {
		return models.DisplayConfig{}, fmt.Errorf("%w: height in %q: %w", ErrMalformedArgument, args[0], err)
	}

	return models.DisplayConfig{
		Width:     width,
		Height:    height,
		Windowed:  len(args) > 1 && strings.EqualFold(args[1], windowedMode),
		Specified: true,
	}, nil
}
