package main

import (
	"flag"
	"os"
	"slices"
	"strings"

	"github.com/Team-Haruki/sekai-honors-syncer/common"
)

const (
	ENV_DATABASE_URL          = "DATABASE_URL"
	ENV_SERVER                = "SERVER"
	ENV_FETCH_TIMEOUT_SECONDS = "FETCH_TIMEOUT_SECONDS"
	ENV_NATS_URL              = "NATS_URL"
	ENV_NATS_SUBJECT          = "NATS_SUBJECT"

	DEFAULT_SERVER                = "cn"
	DEFAULT_FETCH_TIMEOUT_SECONDS = 30
)

type Config struct {
	CommonConfig *common.CommonConfig

	DatabaseUrl         string
	Server              string
	FetchTimeoutSeconds int

	NatsUrl     string
	NatsSubject string
}

var _config Config

func init() {
	registerFlags()
}

func registerFlags() {
	_config.CommonConfig = &common.CommonConfig{}

	flag.StringVar(&_config.CommonConfig.LogLevel, "log-level", os.Getenv(common.ENV_LOG_LEVEL), `Log level: "ERROR", "WARN", "INFO", "DEBUG", "TRACE". Default: "`+common.DEFAULT_LOG_LEVEL+`"`)

	flag.StringVar(&_config.DatabaseUrl, "database-url", os.Getenv(ENV_DATABASE_URL), "PostgreSQL database URL")
	flag.StringVar(&_config.Server, "server", os.Getenv(ENV_SERVER), `Server region: "cn", "jp", "en", "tw", "kr". Default: "`+DEFAULT_SERVER+`"`)
	flag.IntVar(&_config.FetchTimeoutSeconds, "fetch-timeout-seconds", DEFAULT_FETCH_TIMEOUT_SECONDS, "Master data fetch timeout in seconds")
	fetchTimeoutSeconds := os.Getenv(ENV_FETCH_TIMEOUT_SECONDS)
	if fetchTimeoutSeconds != "" {
		_config.FetchTimeoutSeconds = common.StringToInt(fetchTimeoutSeconds)
	}

	flag.StringVar(&_config.NatsUrl, "nats-url", os.Getenv(ENV_NATS_URL), "NATS URL to publish the run summary to. Default: no notification")
	flag.StringVar(&_config.NatsSubject, "nats-subject", os.Getenv(ENV_NATS_SUBJECT), "NATS subject for the run summary")
}

func parseFlags() {
	flag.Parse()

	if _config.CommonConfig.LogLevel == "" {
		_config.CommonConfig.LogLevel = common.DEFAULT_LOG_LEVEL
	} else if !slices.Contains(common.LOG_LEVELS, _config.CommonConfig.LogLevel) {
		panic("Invalid log level " + _config.CommonConfig.LogLevel + ". Must be one of " + strings.Join(common.LOG_LEVELS, ", "))
	}

	if _config.DatabaseUrl == "" {
		panic("Database URL is required")
	}
	if _config.Server == "" {
		_config.Server = DEFAULT_SERVER
	}
	if _, err := ResolveServer(_config.Server); err != nil {
		panic("Invalid server " + _config.Server + ". Must be one of " + strings.Join(ServerCodes(), ", "))
	}
	if _config.FetchTimeoutSeconds <= 0 {
		panic("Fetch timeout must be greater than 0")
	}

	if _config.NatsUrl != "" && _config.NatsSubject == "" {
		panic("NATS subject is required when a NATS URL is set")
	}
	if _config.NatsUrl == "" && _config.NatsSubject != "" {
		panic("NATS URL is required when a NATS subject is set")
	}
}

func LoadConfig() *Config {
	parseFlags()
	return &_config
}
