package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReporter_Levels(t *testing.T) {
	tests := []struct {
		name   string
		notice models.Notice
		level  string
	}{
		{
			name:   "advisory at warn",
			notice: models.Advisory{Code: models.AdvisoryRuntimeMissing, Message: "XNA missing"}.Notice(),
			level:  "warn",
		},
		{
			name:   "fatal at error",
			notice: models.Notice{Severity: models.SeverityFatal, Code: "install", Message: "no install"},
			level:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewLogReporter(&logger.Logger{Logger: zerolog.New(&buf)})

			r.Report(context.Background(), tt.notice)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.notice.Code, entry["code"])
			assert.Equal(t, tt.notice.Message, entry["message"])
		})
	}
}

func TestCollector_KeepsOrder(t *testing.T) {
	c := NewCollector()

	c.Report(context.Background(), models.Notice{Message: "one"})
	c.Report(context.Background(), models.Notice{Message: "two", Severity: models.SeverityFatal})

	assert.Equal(t, []string{"one", "two"}, c.Messages())

	notices := c.Notices()
	require.Len(t, notices, 2)
	notices[0].Message = "changed"
	assert.Equal(t, "one", c.Notices()[0].Message)
}

func TestMulti_FansOut(t *testing.T) {
	a, b := NewCollector(), NewCollector()

	Multi{a, b}.Report(context.Background(), models.Notice{Message: "hello"})

	assert.Equal(t, []string{"hello"}, a.Messages())
	assert.Equal(t, []string{"hello"}, b.Messages())
}
