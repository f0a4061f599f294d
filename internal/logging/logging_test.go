package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, New("debug", false).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("", false).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("loud", true).GetLevel())
}
