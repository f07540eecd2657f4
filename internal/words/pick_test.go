package words

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPicker(t *testing.T) {
	list := []string{"crane", "slate", "trace"}
	for i := 0; i < 50; i++ {
		w, err := RandomPicker{}.Pick(list)
		require.NoError(t, err)
		assert.Contains(t, list, w)
	}
	_, err := RandomPicker{}.Pick(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDailyPicker_StableWithinDay(t *testing.T) {
	list := NewList([]string{"crane", "slate", "trace", "about", "zebra", "music", "ocean"}).All()
	morning := time.Date(2024, 3, 9, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 9, 23, 55, 0, 0, time.UTC)

	a, err := DailyPicker{Salt: "s", Now: func() time.Time { return morning }}.Pick(list)
	require.NoError(t, err)
	b, err := DailyPicker{Salt: "s", Now: func() time.Time { return evening }}.Pick(list)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, list[WordIndex(morning, "s", len(list))], a)
}

func TestWordIndex(t *testing.T) {
	d := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-09", DateKey(d))
	assert.Equal(t, WordIndex(d, "salt", 100), WordIndex(d, "salt", 100))
	assert.Equal(t, 0, WordIndex(d, "salt", 0))
	for n := 1; n < 20; n++ {
		i := WordIndex(d, "salt", n)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, n)
	}
}
