package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultPort = ":8081"

type Config struct {
	Port              string
	Env               string
	ExtraStatesDir    string
	ResponseCacheSize int
	Snapshot          SnapshotConfig
}

// SnapshotConfig configures where catalogctl publishes catalog snapshots.
type SnapshotConfig struct {
	Dir         string
	DatabaseURL string
	S3          S3Config
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// CanUseS3 reports whether enough is configured to build an S3 client.
func (c S3Config) CanUseS3() bool {
	return strings.TrimSpace(c.Endpoint) != "" &&
		strings.TrimSpace(c.AccessKey) != "" &&
		strings.TrimSpace(c.SecretKey) != "" &&
		strings.TrimSpace(c.Bucket) != ""
}

// Load reads .env, the -port flag and the environment. It parses the global
// flag set, so only the gateway binary calls it. PORT wins over -port.
func Load() (*Config, error) {
	port := flag.String("port", defaultPort, "server port")
	flag.Parse()
	return fromEnv(*port), nil
}

// FromEnv builds the configuration from .env and the environment alone.
func FromEnv() *Config {
	return fromEnv(defaultPort)
}

func fromEnv(fallbackPort string) *Config {
	_ = godotenv.Load()

	port := fallbackPort
	if envPort := strings.TrimSpace(os.Getenv("PORT")); envPort != "" {
		port = envPort
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:              port,
		Env:               env,
		ExtraStatesDir:    strings.TrimSpace(os.Getenv("CATALOG_EXTRA_STATES_DIR")),
		ResponseCacheSize: intFromEnv("RESPONSE_CACHE_SIZE", 256),
		Snapshot: SnapshotConfig{
			Dir:         firstNonEmpty(strings.TrimSpace(os.Getenv("SNAPSHOT_DIR")), "tmp/snapshots"),
			DatabaseURL: strings.TrimSpace(os.Getenv("SNAPSHOT_PG_DSN")),
			S3:          loadS3Config(env),
		},
	}
}

func loadS3Config(env string) S3Config {
	return S3Config{
		Endpoint:  resolveS3Endpoint(env),
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("SNAPSHOT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("SNAPSHOT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("SNAPSHOT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("SNAPSHOT_S3_BUCKET")), "govprograms-snapshots"),
		Prefix:    firstNonEmpty(strings.TrimSpace(os.Getenv("SNAPSHOT_S3_PREFIX")), "catalog"),
		UseSSL:    resolveS3UseSSL(env),
	}
}

func resolveS3Endpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return firstNonEmpty(strings.TrimSpace(os.Getenv("SNAPSHOT_S3_ENDPOINT")), strings.TrimSpace(os.Getenv("MINIO_ENDPOINT")), "minio:9000")
	}
	return strings.TrimSpace(os.Getenv("SNAPSHOT_S3_ENDPOINT"))
}

func resolveS3UseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("SNAPSHOT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func intFromEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
