// Package warehouse talks to Snowflake: connection config from the
// environment, SQL schema application, and CSV bulk loading into RAW tables.
package warehouse

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/snowflakedb/gosnowflake"
)

type Config struct {
	Account       string
	User          string
	Role          string
	Warehouse     string
	Database      string
	Schema        string
	Password      string
	Authenticator string
}

// ConfigFromEnv reads SNOWFLAKE_* variables, honoring a local .env file.
// PASSWORD is required unless AUTHENTICATOR is set (e.g. externalbrowser).
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{Authenticator: os.Getenv("SNOWFLAKE_AUTHENTICATOR")}
	required := []struct {
		name string
		dst  *string
	}{
		{"SNOWFLAKE_ACCOUNT", &cfg.Account},
		{"SNOWFLAKE_USER", &cfg.User},
		{"SNOWFLAKE_ROLE", &cfg.Role},
		{"SNOWFLAKE_WAREHOUSE", &cfg.Warehouse},
		{"SNOWFLAKE_DATABASE", &cfg.Database},
		{"SNOWFLAKE_SCHEMA", &cfg.Schema},
	}
	for _, v := range required {
		*v.dst = os.Getenv(v.name)
		if *v.dst == "" {
			return Config{}, fmt.Errorf("missing required environment variable: %s", v.name)
		}
	}
	if cfg.Authenticator == "" {
		cfg.Password = os.Getenv("SNOWFLAKE_PASSWORD")
		if cfg.Password == "" {
			return Config{}, fmt.Errorf("missing required environment variable: SNOWFLAKE_PASSWORD")
		}
	}
	return cfg, nil
}

// DSN builds a gosnowflake connection string.
func (c Config) DSN() string {
	params := url.Values{}
	params.Set("role", c.Role)
	params.Set("warehouse", c.Warehouse)
	if c.Authenticator != "" {
		params.Set("authenticator", c.Authenticator)
		return fmt.Sprintf("%s@%s/%s/%s?%s",
			url.QueryEscape(c.User), c.Account, c.Database, c.Schema, params.Encode())
	}
	return fmt.Sprintf("%s:%s@%s/%s/%s?%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password),
		c.Account, c.Database, c.Schema, params.Encode())
}

// Open opens (without pinging) a database handle for the configured account.
func (c Config) Open() (*sql.DB, error) {
	return sql.Open("snowflake", c.DSN())
}
