package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Run("unset returns default", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("MAZE_TEST_UNSET", "fallback"))
	})

	t.Run("set returns value", func(t *testing.T) {
		t.Setenv("MAZE_TEST_SET", "value")
		assert.Equal(t, "value", getEnvWithDefault("MAZE_TEST_SET", "fallback"))
	})
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Run("unset returns default", func(t *testing.T) {
		assert.Equal(t, 42, getEnvAsIntWithDefault("MAZE_TEST_INT_UNSET", 42))
	})

	t.Run("set returns parsed value", func(t *testing.T) {
		t.Setenv("MAZE_TEST_INT_SET", "7")
		assert.Equal(t, 7, getEnvAsIntWithDefault("MAZE_TEST_INT_SET", 42))
	})
}
