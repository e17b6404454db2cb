package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// DefaultTokenFile is the service-account token mounted into every pod.
const DefaultTokenFile = "/var/run/secrets/kubernetes.io/serviceaccount/token"

// Environment variable names.
const (
	EnvHost      = "HOST"
	EnvNamespace = "NAMESPACE"
	EnvTokenFile = "TOKEN_FILE"
	EnvOutput    = "OUTPUT"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Settings holds everything a run needs. Token is filled from TokenFile by Load.
type Settings struct {
	Host      string `envconfig:"HOST" required:"true"`
	Namespace string `envconfig:"NAMESPACE"`
	TokenFile string `envconfig:"TOKEN_FILE" default:"/var/run/secrets/kubernetes.io/serviceaccount/token"`
	CAFile    string `envconfig:"CA_FILE"`
	Output    string `envconfig:"OUTPUT" default:"json"`

	LogSettings

	Token string `ignored:"true"`
}

// LogSettings configures the process logger. It is loaded on its own so that
// logging is available before the rest of the settings are read.
type LogSettings struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// LoadLogSettings reads LOG_LEVEL and LOG_FORMAT.
func LoadLogSettings() (LogSettings, error) {
	var s LogSettings
	if err := envconfig.Process("", &s); err != nil {
		return LogSettings{}, &ConfigError{Key: "LOG_LEVEL", Reason: "failed to process", Err: err}
	}
	return s, nil
}

// Load reads the settings from the environment and the token from TokenFile.
// Values are resolved in the order host, token, namespace; the first failure
// is returned.
func Load() (*Settings, error) {
	var s Settings

	if _, err := RequiredEnv(EnvHost); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", &s); err != nil {
		var perr *envconfig.ParseError
		if errors.As(err, &perr) {
			return nil, &ConfigError{Key: perr.KeyName, Reason: "invalid value", Err: err}
		}
		return nil, &ConfigError{Key: "environment", Reason: "failed to process", Err: err}
	}

	switch s.Output {
	case OutputJSON, OutputYAML:
	default:
		return nil, &ConfigError{Key: EnvOutput, Reason: fmt.Sprintf("unsupported output format %q", s.Output)}
	}

	token, err := ServiceAccountToken(s.TokenFile)
	if err != nil {
		return nil, err
	}
	s.Token = token

	if _, err := RequiredEnv(EnvNamespace); err != nil {
		return nil, err
	}

	return &s, nil
}

// RequiredEnv returns the value of the named environment variable.
// An unset or empty variable is a *ConfigError.
func RequiredEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", &ConfigError{Key: name, Reason: "required environment variable is not set"}
	}
	if strings.TrimSpace(value) == "" {
		return "", &ConfigError{Key: name, Reason: "required environment variable is empty"}
	}
	return value, nil
}

// ServiceAccountToken reads the bearer token stored at path.
// Surrounding whitespace, including the trailing newline some mounts add, is trimmed.
func ServiceAccountToken(path string) (string, error) {
	if path == "" {
		path = DefaultTokenFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ConfigError{Key: path, Reason: "failed to load token", Err: err}
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", &ConfigError{Key: path, Reason: "token file is empty"}
	}

	return token, nil
}
