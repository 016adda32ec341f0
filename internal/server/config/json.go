package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/edvora/internal/flagx"
	"github.com/dmitrijs2005/edvora/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations accept
// strings such as "168h" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
	CORSOrigins           []string       `json:"cors_origins"`
	HealthCheckInterval   timex.Duration `json:"health_check_interval"`
}

// parseJson loads the file named by -c / -config, if any, and copies every
// field that is set in it into config. Read or decode failures panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JSONConfigPath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.TokenValidityDuration, c.TokenValidityDuration.Duration)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlay(&config.HealthCheckInterval, c.HealthCheckInterval.Duration)
	if len(c.CORSOrigins) > 0 {
		config.CORSOrigins = c.CORSOrigins
	}
}

func overlay[T string | time.Duration](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
