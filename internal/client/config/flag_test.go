package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", "https://api.anuncia.example/api", "-t", "25", "-d", "other.db")

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://api.anuncia.example/api", c.APIBaseURL)
	assert.Equal(t, 25*time.Second, c.RequestTimeout)
	assert.Equal(t, "other.db", c.LocalDBPath)
}

func TestParseFlags_NoFlagsKeepDefaults(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://localhost:3003/api", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}
