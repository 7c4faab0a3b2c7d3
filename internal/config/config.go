package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSite is the Datadog site used when none is configured.
const DefaultSite = "datadoghq.com"

// Config holds the credentials and regional sites resolved at startup.
// It is built once in main and read-only afterwards.
type Config struct {
	APIKey      string
	AppKey      string
	Site        string
	LogsSite    string
	MetricsSite string
}

// Flags are the command-line overrides. They take precedence over the
// DD_* environment variables, which take precedence over the env file.
type Flags struct {
	APIKey      string
	AppKey      string
	Site        string
	LogsSite    string
	MetricsSite string
	EnvFile     string
}

func Load(flags Flags) (*Config, error) {
	fileVars := map[string]string{}
	if flags.EnvFile != "" {
		vars, err := godotenv.Read(flags.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		fileVars = vars
	} else if vars, err := godotenv.Read(); err == nil {
		fileVars = vars
	}

	resolve := func(override, key string) string {
		if override != "" {
			return override
		}
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVars[key]
	}

	c := &Config{
		APIKey: resolve(flags.APIKey, "DD_API_KEY"),
		AppKey: resolve(flags.AppKey, "DD_APP_KEY"),
		Site:   resolve(flags.Site, "DD_SITE"),
	}
	if c.Site == "" {
		c.Site = DefaultSite
	}
	c.Site = NormalizeSite(c.Site)

	c.LogsSite = NormalizeSite(resolve(flags.LogsSite, "DD_LOGS_SITE"))
	if c.LogsSite == "" {
		c.LogsSite = c.Site
	}
	c.MetricsSite = NormalizeSite(resolve(flags.MetricsSite, "DD_METRICS_SITE"))
	if c.MetricsSite == "" {
		c.MetricsSite = c.Site
	}

	if c.APIKey == "" {
		return nil, errors.New("missing Datadog API key: set the -api-key flag or the DD_API_KEY environment variable")
	}
	if c.AppKey == "" {
		return nil, errors.New("missing Datadog application key: set the -app-key flag or the DD_APP_KEY environment variable")
	}
	return c, nil
}

// NormalizeSite strips a https:// prefix from a configured site.
// Sites are bare domains; stripping an already-bare value is a no-op.
func NormalizeSite(site string) string {
	return strings.TrimPrefix(site, "https://")
}
