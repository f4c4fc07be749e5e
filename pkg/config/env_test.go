package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a", "b"}, CSV(" a, ,b ,"))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("CFG_STR", "value")
	t.Setenv("CFG_INT", "12")
	t.Setenv("CFG_BAD_INT", "x")
	t.Setenv("CFG_BOOL", "true")
	t.Setenv("CFG_DUR", "90m")
	t.Setenv("CFG_BAD_DUR", "-5s")

	assert.Equal(t, "value", EnvDefault("CFG_STR", "def"))
	assert.Equal(t, "def", EnvDefault("CFG_MISSING", "def"))
	assert.Equal(t, 12, EnvIntDefault("CFG_INT", 1))
	assert.Equal(t, 1, EnvIntDefault("CFG_BAD_INT", 1))
	assert.True(t, EnvBoolDefault("CFG_BOOL", false))
	assert.False(t, EnvBoolDefault("CFG_MISSING", false))
	assert.Equal(t, 90*time.Minute, EnvDurationDefault("CFG_DUR", time.Hour))
	assert.Equal(t, time.Hour, EnvDurationDefault("CFG_BAD_DUR", time.Hour))
}
