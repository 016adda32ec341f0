package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envFiles are loaded, when present, before the process environment is read.
// Variables already set in the environment win.
var envFiles = []string{".env"}

// parseEnv overlays settings from the environment:
//
//	PORT            HTTP port (":" is prepended)
//	GRPC_ADDR       gRPC health address
//	DATABASE_URL    PostgreSQL DSN
//	JWT_SECRET      token signing secret
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_ENDPOINT
//	CORS_ORIGINS    comma separated origin list
func parseEnv(config *Config) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				panic(err)
			}
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddrHTTP = ":" + strings.TrimPrefix(v, ":")
	}

	setString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_URL")
	setString(&config.SecretKey, "JWT_SECRET")
	setString(&config.S3RootUser, "S3_ROOT_USER")
	setString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_ENDPOINT")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		config.CORSOrigins = splitList(v)
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
