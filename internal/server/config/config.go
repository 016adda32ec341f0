// Package config handles configuration for the server component. Sources are
// applied in order: defaults, .env file and environment, JSON file (-c), flags.
package config

import "time"

// DefaultSecretKey is the development signing secret. The server warns when
// it is still in use at start.
const DefaultSecretKey = "dev-secret"

// Config holds runtime settings for the Edvora server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the REST API.
//   - EndpointAddrGRPC: bind address of the gRPC health endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects in-memory storage.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: session token lifetime.
//   - S3*: S3-compatible storage used for avatar uploads.
//   - CORSOrigins: browser origins allowed to call the API.
//   - HealthCheckInterval: how often the storage health status is refreshed.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	S3RootUser            string
	S3RootPassword        string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	CORSOrigins           []string
	HealthCheckInterval   time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = DefaultSecretKey
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "edvora"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"
	c.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	c.HealthCheckInterval = 15 * time.Second
}

// UsesDefaultSecret reports whether tokens are signed with DefaultSecretKey.
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// LoadConfig builds a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
