package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the platform reads.
	EnvPrefix = "AUTOSHIFT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "AUTOSHIFT_DB_DSN"
	EnvDBHost = "AUTOSHIFT_DB_HOST"
	EnvDBUser = "AUTOSHIFT_DB_USER"
	EnvDBName = "AUTOSHIFT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Optimizer    OptimizerConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AUTOSHIFT_APP_ENV" required:"true"`
	Port         string `envconfig:"AUTOSHIFT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AUTOSHIFT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AUTOSHIFT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AUTOSHIFT_DB_DSN"`
	Driver string `envconfig:"AUTOSHIFT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AUTOSHIFT_DB_HOST"`
	LegacyPort     int    `envconfig:"AUTOSHIFT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AUTOSHIFT_DB_USER"`
	LegacyPassword string `envconfig:"AUTOSHIFT_DB_PASSWORD"`
	LegacyName     string `envconfig:"AUTOSHIFT_DB_NAME"`
	LegacySSLMode  string `envconfig:"AUTOSHIFT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AUTOSHIFT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AUTOSHIFT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AUTOSHIFT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AUTOSHIFT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the sqlite driver was selected (dev/test convenience).
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"AUTOSHIFT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AUTOSHIFT_REDIS_ADDR"`
	Password     string        `envconfig:"AUTOSHIFT_REDIS_PASSWORD"`
	DB           int           `envconfig:"AUTOSHIFT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AUTOSHIFT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AUTOSHIFT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AUTOSHIFT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AUTOSHIFT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AUTOSHIFT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AUTOSHIFT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AUTOSHIFT_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"AUTOSHIFT_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"AUTOSHIFT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"AUTOSHIFT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"AUTOSHIFT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"AUTOSHIFT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"AUTOSHIFT_ARGON_KEY_LEN" default:"32"`
}

// OptimizerConfig points the API at the shift-optimizer service.
type OptimizerConfig struct {
	BaseURL      string        `envconfig:"AUTOSHIFT_OPTIMIZER_URL" default:"http://shift-optimizer:50051"`
	Timeout      time.Duration `envconfig:"AUTOSHIFT_OPTIMIZER_TIMEOUT" default:"30s"`
	MaxRangeDays int           `envconfig:"AUTOSHIFT_OPTIMIZER_MAX_RANGE_DAYS" default:"14"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"AUTOSHIFT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"AUTOSHIFT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.IsSQLite() {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
