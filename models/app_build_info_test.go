package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-10-01\nBuild commit: N/A", info.String())
}
