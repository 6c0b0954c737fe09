package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime_WithSeconds(t *testing.T) {
	dt, err := ParseDateTime("2025-07-01 18:00:30")
	require.NoError(t, err)

	assert.Equal(t, "2025-07-01 18:00:30", dt.String())
}

func TestParseDateTime_WithoutSeconds(t *testing.T) {
	dt, err := ParseDateTime("2025-07-01 18:00")
	require.NoError(t, err)

	// Seconds are normalized to :00 on output
	assert.Equal(t, "2025-07-01 18:00:00", dt.String())
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "2025-07-01", "18:00", "01/07/2025 18:00", "2025-07-01T18:00:00Z"} {
		_, err := ParseDateTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestNewDateTime_TruncatesSubSeconds(t *testing.T) {
	base := time.Date(2025, 7, 1, 18, 0, 0, 999_000_000, time.Local)

	dt := NewDateTime(base)

	assert.Equal(t, "2025-07-01 18:00:00", dt.String())
}

func TestDateTime_Equal(t *testing.T) {
	a, err := ParseDateTime("2025-07-01 18:00")
	require.NoError(t, err)
	b, err := ParseDateTime("2025-07-01 18:00:00")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestDateTime_JSONRoundTrip(t *testing.T) {
	dt, err := ParseDateTime("2025-07-01 19:30:00")
	require.NoError(t, err)

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-01 19:30:00"`, string(data))

	var decoded DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, dt.Equal(decoded))
}

func TestDateTime_ScanTime(t *testing.T) {
	var dt DateTime
	require.NoError(t, dt.Scan(time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)))

	assert.Equal(t, "2025-07-01 18:00:00", dt.String())
}
