package config

import (
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"hr-auth"`

	Server ServerConfig
	Auth   AuthConfig
	DB     DBConfig
	Redis  RedisConfig
	Jaeger JaegerConfig
}

type ServerConfig struct {
	Mode   string `env:"SERVER_MODE"   envDefault:"dev"`
	Scheme string `env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `env:"SERVER_DOMAIN" envDefault:"localhost"`
	Port   int    `env:"SERVER_PORT"   envDefault:"8080"`
}

type AuthConfig struct {
	JWT    JWTConfig
	Cookie CookieConfig

	AccessTTL   time.Duration `env:"AUTH_ACCESS_TTL"   envDefault:"15m"`
	RefreshTTL  time.Duration `env:"AUTH_REFRESH_TTL"  envDefault:"720h"`
	AbsoluteTTL time.Duration `env:"AUTH_ABSOLUTE_TTL" envDefault:"2160h"`
	IdleTimeout time.Duration `env:"AUTH_IDLE_TIMEOUT" envDefault:"168h"`

	MaxDevices       int `env:"AUTH_MAX_DEVICES"       envDefault:"5"`
	AnomalyThreshold int `env:"AUTH_ANOMALY_THRESHOLD" envDefault:"3"`
	AnomalyWindow    int `env:"AUTH_ANOMALY_WINDOW"    envDefault:"5"`

	SweepInterval time.Duration `env:"AUTH_SWEEP_INTERVAL" envDefault:"1h"`
	SweepGrace    time.Duration `env:"AUTH_SWEEP_GRACE"    envDefault:"720h"`

	StoreTimeout time.Duration `env:"AUTH_STORE_TIMEOUT" envDefault:"5s"`
}

// JWTConfig selects the signing scheme: the HS* algorithms read
// Secret, RS256 reads the PEM key pair. Key material requirements are
// checked per algorithm at startup.
type JWTConfig struct {
	Alg      string `env:"AUTH_JWT_ALG"      envDefault:"HS256"`
	Secret   string `env:"AUTH_JWT_SECRET"`
	Issuer   string `env:"AUTH_JWT_ISSUER"   envDefault:"hr-auth"`
	Audience string `env:"AUTH_JWT_AUDIENCE" envDefault:"hr-platform"`

	PrivateKeyPath string `env:"AUTH_JWT_PRIVATE_KEY"`
	PublicKeyPath  string `env:"AUTH_JWT_PUBLIC_KEY"`
}

type CookieConfig struct {
	Secure   bool   `env:"AUTH_COOKIE_SECURE"   envDefault:"true"`
	SameSite string `env:"AUTH_COOKIE_SAMESITE" envDefault:"strict"`
	Path     string `env:"AUTH_COOKIE_PATH"     envDefault:"/api/auth"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST"     envDefault:"localhost"`
	Port     int    `env:"DB_PORT"     envDefault:"5432"`
	User     string `env:"DB_USER"     envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Database string `env:"DB_DATABASE" envDefault:"hr_auth"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASS" envDefault:""`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string  `env:"JAEGER_SAMPLER_TYPE"  envDefault:"const"`
		Param float64 `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	}
	Reporter struct {
		LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
		LocalAgentHostPort string `env:"JAEGER_AGENT_HOST"         envDefault:"localhost:6831"`
	}
}

// MustLoad reads an optional .env file at path, then fills the
// configuration from the process environment. Missing required
// variables are fatal.
func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil {
		zap.L().Debug("no env file loaded", zap.String("path", path))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}
