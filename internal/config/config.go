package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// Live-ledger persistence. When MySQL is not configured the live ledger
	// falls back to the in-memory store (state lost on restart).
	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// Idempotency store; the middleware is skipped when unset.
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	ForexBaseURL string

	RiskAPIKey  string
	RiskBaseURL string
	RiskModel   string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: os.Getenv("MYSQL_HOST"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "invoicex"),
		MySQLUser: getenv("MYSQL_USER", "invoicex"),
		MySQLPass: getenv("MYSQL_PASS", "invoicex"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,

		ForexBaseURL: os.Getenv("FOREX_BASE_URL"),

		RiskAPIKey:  os.Getenv("RISK_API_KEY"),
		RiskBaseURL: os.Getenv("RISK_BASE_URL"),
		RiskModel:   os.Getenv("RISK_MODEL"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

// MySQLEnabled reports whether a live database was configured at all.
func (c *Config) MySQLEnabled() bool { return c.MySQLHost != "" }

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if !c.MySQLEnabled() {
		return nil
	}
	if c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
