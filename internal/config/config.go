package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// StorageBackend names primary datastore for lead submissions
type StorageBackend string

const (
	// StoragePostgres keeps submissions in postgres
	StoragePostgres StorageBackend = "postgres"
	// StorageMongo keeps submissions in mongodb
	StorageMongo StorageBackend = "mongo"
)

// HTTPCfg represents http server config
type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	UploadsDir      string        `env:"HTTP_UPLOADS_DIR" envDefault:"./uploads"`
}

// GrpcCfg represents gRPC server config
type GrpcCfg struct {
	Port int `env:"GRPC_PORT" envDefault:"3010"`
}

// PostgresCfg represents postgres connection config
type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-leads"`
	Database    string `env:"POSTGRES_DB"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// DSN builds pgx connection string
func (c PostgresCfg) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SslMode, c.PoolMaxConn,
	)
}

// MongoCfg represents mongo connection config
type MongoCfg struct {
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Host        string `env:"MONGO_HOST" envDefault:"mongo-leads"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"leads"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// URI builds mongodb connection uri
func (c MongoCfg) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d/?maxPoolSize=%d", c.User, c.Password, c.Host, c.Port, c.MaxPoolSize)
}

// RedisCfg represents redis connection config
type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"redis-leads:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// KafkaCfg represents events publisher config, empty brokers list disables publishing
type KafkaCfg struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:""`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"lead-submissions"`
}

// JwtCfg represents staff access token config
type JwtCfg struct {
	Issuer         string        `env:"AUTH_JWT_ISSUER" envDefault:"imaging-leads-api"`
	TimeToLive     time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"8h"`
	PrivateKeyFile string        `env:"AUTH_JWT_PRIVATE_KEY_FILE"`
	PublicKeyFile  string        `env:"AUTH_JWT_PUBLIC_KEY_FILE"`
	SigningMethod  jwt.SigningMethod
	PrivateKey     crypto.PrivateKey
	PublicKey      crypto.PublicKey
}

// AdminCfg represents bootstrap staff account
type AdminCfg struct {
	Email    string `env:"AUTH_ADMIN_EMAIL" envDefault:""`
	Password string `env:"AUTH_ADMIN_PASSWORD" envDefault:""`
}

// AuthCfg represents auth config
type AuthCfg struct {
	JwtCfg   JwtCfg
	AdminCfg AdminCfg
}

// ReviewCfg represents staff review config
type ReviewCfg struct {
	TimeZone         string        `env:"REVIEW_TIME_ZONE" envDefault:"Local"`
	DeleteConfirmTTL time.Duration `env:"REVIEW_DELETE_CONFIRM_TTL" envDefault:"2m"`
	Location         *time.Location
}

// Config is application config
type Config struct {
	LogLevel       string         `env:"LOG_LEVEL" envDefault:"info"`
	StorageBackend StorageBackend `env:"STORAGE_BACKEND" envDefault:"postgres"`
	HTTPCfg        HTTPCfg
	GrpcCfg        GrpcCfg
	PostgresCfg    PostgresCfg
	MongoCfg       MongoCfg
	RedisCfg       RedisCfg
	KafkaCfg       KafkaCfg
	AuthCfg        AuthCfg
	ReviewCfg      ReviewCfg
}

// Build builds config from environment, values from .env file are applied if it is present
func Build() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.StorageBackend != StoragePostgres && cfg.StorageBackend != StorageMongo {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	loc, err := time.LoadLocation(cfg.ReviewCfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load review time zone - %w", err)
	}
	cfg.ReviewCfg.Location = loc

	cfg.AuthCfg.JwtCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	jwtPrivateKeyBytes, err := os.ReadFile(cfg.AuthCfg.JwtCfg.PrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	jwtPrivateKey, err := jwt.ParseEdPrivateKeyFromPEM(jwtPrivateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	cfg.AuthCfg.JwtCfg.PrivateKey = jwtPrivateKey

	jwtPublicKeyBytes, err := os.ReadFile(cfg.AuthCfg.JwtCfg.PublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.AuthCfg.JwtCfg.PublicKey = jwtPublicKey

	return &cfg, nil
}
