package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_FallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UTC", New("UTC").Location().String())

	c := New("Not/AZone")
	if _, err := time.LoadLocation(DefaultTimezone); err == nil {
		assert.Equal(t, DefaultTimezone, c.Location().String())
	} else {
		assert.Equal(t, time.UTC, c.Location())
	}
}

func TestClock_NowInZone(t *testing.T) {
	t.Parallel()

	c := New("UTC")
	assert.Equal(t, c.Location(), c.Now().Location())
}
