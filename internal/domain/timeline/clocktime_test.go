//go:build unit

package timeline_test

import (
	"testing"

	"sala-agenda/internal/domain/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		fails bool
	}{
		{name: "plain HH:MM", raw: "19:30", want: "19:30"},
		{name: "with seconds", raw: "19:30:00", want: "19:30"},
		{name: "with fractional seconds", raw: "13:45:00.000", want: "13:45"},
		{name: "single digit hour", raw: "9:05", want: "09:05"},
		{name: "surrounding whitespace", raw: "  21:15 ", want: "21:15"},
		{name: "midnight", raw: "00:00", want: "00:00"},
		{name: "empty", raw: "", fails: true},
		{name: "whitespace only", raw: "   ", fails: true},
		{name: "hour out of range", raw: "25:00", fails: true},
		{name: "minute out of range", raw: "13:60", fails: true},
		{name: "no separator", raw: "1930", fails: true},
		{name: "wrong separator", raw: "19h30", fails: true},
		{name: "single digit minute", raw: "19:3", fails: true},
		{name: "garbage", raw: "mediodía", fails: true},
		{name: "negative hour", raw: "-1:30", fails: true},
		{name: "plus-signed hour", raw: "+9:30", fails: true},
		{name: "plus-signed minute", raw: "19:+3", fails: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct, err := timeline.ParseClockTime(tc.raw)
			if tc.fails {
				require.Error(t, err)
				require.ErrorIs(t, err, timeline.ErrUnparseableTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ct.String())
		})
	}
}

func TestClockTimeOrdering(t *testing.T) {
	a, err := timeline.NewClockTime(13, 0)
	require.NoError(t, err)
	b, err := timeline.NewClockTime(13, 15)
	require.NoError(t, err)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, 13*60, a.MinuteOfDay())
	assert.Equal(t, 13*60+15, b.MinuteOfDay())
}

func TestNewClockTimeRejectsOutOfRange(t *testing.T) {
	_, err := timeline.NewClockTime(24, 0)
	assert.Error(t, err)
	_, err = timeline.NewClockTime(12, 60)
	assert.Error(t, err)
}
