package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tt, err := Parse(" 08:30 ")
	require.NoError(t, err)
	assert.Equal(t, "08:30:00", tt.String())
	assert.Equal(t, "08:30", tt.Short())

	tt, err = Parse("13:05:09")
	require.NoError(t, err)
	assert.Equal(t, "13:05:09", tt.String())

	for _, bad := range []string{"", "8:3", "25:00", "noon"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestScanAndJSON(t *testing.T) {
	var tt Tod
	require.NoError(t, tt.Scan(time.Date(2024, 9, 2, 9, 50, 0, 0, time.Local)))
	v, err := tt.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:50:00", v)

	b, err := tt.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"09:50:00"`, string(b))

	var back Tod
	require.NoError(t, back.UnmarshalJSON([]byte(`"11:20"`)))
	assert.Equal(t, "11:20:00", back.String())
	assert.Error(t, tt.Scan(42))
}
