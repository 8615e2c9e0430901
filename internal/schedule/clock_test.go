package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_UsesConfiguredZoneNotHostZone(t *testing.T) {
	// 23:40 UTC on 28 Feb is already 05:10 on 1 Mar in Colombo (UTC+05:30).
	instant := time.Date(2026, time.February, 28, 23, 40, 30, 0, time.UTC)

	resolver, err := NewResolver("Asia/Colombo", WithClock(func() time.Time { return instant }))
	require.NoError(t, err)

	date, minute := resolver.Now()

	assert.Equal(t, "2026-03-01", date.String())
	assert.Equal(t, "05:10", minute.String())
}

func TestResolver_ResolveDropsSeconds(t *testing.T) {
	resolver, err := NewResolver("UTC")
	require.NoError(t, err)

	date, minute := resolver.Resolve(time.Date(2026, time.October, 19, 4, 59, 59, 999, time.UTC))

	assert.Equal(t, CivilDate{Year: 2026, Month: time.October, Day: 19}, date)
	assert.Equal(t, MinuteOfDay(4*60+59), minute)
}

func TestNewResolver_InvalidZone(t *testing.T) {
	_, err := NewResolver("Not/AZone")
	assert.Error(t, err)

	_, err = NewResolver("")
	assert.Error(t, err)
}

func TestCivilDate_ParseAndString(t *testing.T) {
	date, err := ParseCivilDate("2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", date.String())
	assert.False(t, date.IsZero())
	assert.True(t, CivilDate{}.IsZero())

	loc, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, loc), date.Midnight(loc))

	_, err = ParseCivilDate("05/01/2026")
	assert.Error(t, err)
}
