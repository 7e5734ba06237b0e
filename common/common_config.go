package common

const (
	VERSION = "1.0.0"

	ENV_LOG_LEVEL = "HARUKI_LOG_LEVEL"

	DEFAULT_LOG_LEVEL = "INFO"
)

type CommonConfig struct {
	LogLevel string
}
