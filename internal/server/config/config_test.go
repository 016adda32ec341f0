package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	assert.Equal(t, ":5000", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, 168*time.Hour, c.TokenValidityDuration)
	assert.True(t, c.UsesDefaultSecret())
}

func TestLoadConfig_PrecedenceEnvThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_URL", "postgres://env")
	os.Args = []string{"server", "-s", "from-flag"}

	c := LoadConfig()

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, "from-flag", c.SecretKey)
	assert.False(t, c.UsesDefaultSecret())
}
