package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitializeDebugGate(t *testing.T) {
	t.Setenv("DEBUG", "")
	Initialize(true)
	assert.False(t, IsDebugEnabled())
	Close()

	t.Setenv("DEBUG", "true")
	Initialize(true)
	defer Close()
	assert.True(t, IsDebugEnabled(), "Initialize must re-read DEBUG")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "lantern.log", filepath.Base(FileName()))
}

func TestEveryRateLimits(t *testing.T) {
	every := NewEvery(50 * time.Millisecond)

	assert.True(t, every.ShouldLog(), "first call always logs")
	assert.False(t, every.ShouldLog(), "second call inside the window is suppressed")

	time.Sleep(60 * time.Millisecond)
	assert.True(t, every.ShouldLog(), "logs again after the window passes")
	assert.False(t, every.ShouldLog())
}
