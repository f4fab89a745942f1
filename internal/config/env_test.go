package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv("TT_TEST_KEY", "value")
		assert.Equal(t, "value", GetEnv("TT_TEST_KEY", "default"))
	})

	t.Run("empty falls back", func(t *testing.T) {
		t.Setenv("TT_TEST_KEY", "")
		assert.Equal(t, "default", GetEnv("TT_TEST_KEY", "default"))
	})

	t.Run("unset falls back", func(t *testing.T) {
		assert.Equal(t, "default", GetEnv("TT_TEST_KEY_NEVER_SET", "default"))
	})
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		expected int
	}{
		{name: "valid", value: "42", fallback: 0, expected: 42},
		{name: "negative", value: "-3", fallback: 0, expected: -3},
		{name: "malformed", value: "ten", fallback: 10, expected: 10},
		{name: "empty", value: "", fallback: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TT_TEST_INT", tt.value)
			assert.Equal(t, tt.expected, GetEnvInt("TT_TEST_INT", tt.fallback))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback time.Duration
		expected time.Duration
	}{
		{name: "seconds", value: "30s", fallback: time.Second, expected: 30 * time.Second},
		{name: "compound", value: "1h30m15s", fallback: time.Second, expected: time.Hour + 30*time.Minute + 15*time.Second},
		{name: "malformed", value: "soon", fallback: 5 * time.Second, expected: 5 * time.Second},
		{name: "empty", value: "", fallback: time.Minute, expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TT_TEST_DURATION", tt.value)
			assert.Equal(t, tt.expected, GetEnvDuration("TT_TEST_DURATION", tt.fallback))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		expected bool
	}{
		{name: "true", value: "true", fallback: false, expected: true},
		{name: "false", value: "false", fallback: true, expected: false},
		{name: "1 as true", value: "1", fallback: false, expected: true},
		{name: "0 as false", value: "0", fallback: true, expected: false},
		{name: "malformed", value: "maybe", fallback: true, expected: true},
		{name: "empty", value: "", fallback: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TT_TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, GetEnvBool("TT_TEST_BOOL", tt.fallback))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TT_TEST_FLOAT", "1.5")
	assert.Equal(t, 1.5, GetEnvFloat("TT_TEST_FLOAT", 2.0))

	t.Setenv("TT_TEST_FLOAT", "fast")
	assert.Equal(t, 2.0, GetEnvFloat("TT_TEST_FLOAT", 2.0))
}
