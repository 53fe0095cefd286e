package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	PrettyPrintConsole bool
}

type ManagementServer struct {
	EnableMetrics bool
	MetricsPath   string
}

type Wallet struct {
	// MaxGenerationAttempts bounds how many mnemonics are tried before giving up on a valid address.
	MaxGenerationAttempts int
}

type CNGN struct {
	BaseURL       string
	APIVersion    string
	APIKey        string `json:"-"` // sensitive
	EncryptionKey string `json:"-"` // sensitive
	// PrivateKey is the OpenSSH formatted ed25519 key used to open encrypted responses.
	PrivateKey string `json:"-"` // sensitive
	Timeout    time.Duration
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
	Wallet     Wallet
	CNGN       CNGN
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// An optional .env file (DOTENV_PATH, default ".env") is loaded first; it never overrides
// variables already set in the environment.
func DefaultServiceConfigFromEnv() Server {
	loadDotEnv()

	v := newEnv()

	return Server{
		Echo: EchoServer{
			Debug:                          v.GetBool("SERVER_ECHO_DEBUG"),
			ListenAddress:                  v.GetString("SERVER_ECHO_LISTEN_ADDRESS"),
			HideInternalServerErrorDetails: v.GetBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS"),
			EnableRecoverMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware:      v.GetBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE"),
			EnableLoggerMiddleware:         v.GetBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE"),
		},
		Logger: LoggerServer{
			Level:              logLevel(v, "SERVER_LOGGER_LEVEL"),
			RequestLevel:       logLevel(v, "SERVER_LOGGER_REQUEST_LEVEL"),
			PrettyPrintConsole: v.GetBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Management: ManagementServer{
			EnableMetrics: v.GetBool("SERVER_MANAGEMENT_ENABLE_METRICS"),
			MetricsPath:   v.GetString("SERVER_MANAGEMENT_METRICS_PATH"),
		},
		Wallet: Wallet{
			MaxGenerationAttempts: v.GetInt("WALLET_MAX_GENERATION_ATTEMPTS"),
		},
		CNGN: CNGN{
			BaseURL:       strings.TrimRight(v.GetString("CNGN_BASE_URL"), "/"),
			APIVersion:    v.GetString("CNGN_API_VERSION"),
			APIKey:        v.GetString("CNGN_API_KEY"),
			EncryptionKey: v.GetString("CNGN_ENCRYPTION_KEY"),
			PrivateKey:    v.GetString("CNGN_PRIVATE_KEY"),
			Timeout:       v.GetDuration("CNGN_TIMEOUT"),
		},
	}
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ECHO_DEBUG", false)
	v.SetDefault("SERVER_ECHO_LISTEN_ADDRESS", ":8080")
	v.SetDefault("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true)

	v.SetDefault("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())
	v.SetDefault("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())
	v.SetDefault("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false)

	v.SetDefault("SERVER_MANAGEMENT_ENABLE_METRICS", true)
	v.SetDefault("SERVER_MANAGEMENT_METRICS_PATH", "/metrics")

	v.SetDefault("WALLET_MAX_GENERATION_ATTEMPTS", 32)

	v.SetDefault("CNGN_BASE_URL", "https://api.cngn.co")
	v.SetDefault("CNGN_API_VERSION", "v1")
	v.SetDefault("CNGN_API_KEY", "")
	v.SetDefault("CNGN_ENCRYPTION_KEY", "")
	v.SetDefault("CNGN_PRIVATE_KEY", "")
	v.SetDefault("CNGN_TIMEOUT", 30*time.Second)

	return v
}

func loadDotEnv() {
	path := viper.New()
	path.AutomaticEnv()
	path.SetDefault("DOTENV_PATH", ".env")

	file := path.GetString("DOTENV_PATH")
	if err := gotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", file).Msg("Failed to load dotenv file")
	}
}

func logLevel(v *viper.Viper, key string) zerolog.Level {
	level, err := zerolog.ParseLevel(v.GetString(key))
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Invalid log level, falling back to debug")
		return zerolog.DebugLevel
	}

	return level
}
