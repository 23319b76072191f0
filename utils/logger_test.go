package utils

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(&out, &errOut, LevelWarn, false)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("failed %s", "load")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "WARN  shown 3")
	assert.Contains(t, errOut.String(), "ERROR failed load")
	assert.NotContains(t, out.String(), "\033[")
}

func TestLoggerColor(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, &out, LevelDebug, true)
	l.Info("hello")
	assert.Contains(t, out.String(), "\033[32mINFO")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	var delays []time.Duration
	r := &RetryConfig{
		MaxAttempts: 4,
		BaseDelay:   10 * time.Millisecond,
		Logger:      Discard(),
		sleep:       func(d time.Duration) { delays = append(delays, d) },
	}

	calls := 0
	err := r.Do("ping", func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, delays)
}

func TestRetryGivesUp(t *testing.T) {
	sentinel := errors.New("down")
	r := &RetryConfig{MaxAttempts: 2, sleep: func(time.Duration) {}}

	calls := 0
	err := r.Do("ping", func() error {
		calls++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, calls)
}
