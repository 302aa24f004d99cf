package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server    `json:"server" yaml:"server" mapstructure:"server"`
	Datasets  Datasets  `json:"datasets" yaml:"datasets" mapstructure:"datasets"`
	Reconcile Reconcile `json:"reconcile" yaml:"reconcile" mapstructure:"reconcile"`
}

// Server points at the media server whose catalog is updated.
type Server struct {
	Kind        string        `json:"kind" yaml:"kind" mapstructure:"kind" validate:"oneof=plex jellyfin"`
	URL         string        `json:"url" yaml:"url" mapstructure:"url" validate:"required,url"`
	Token       string        `json:"token" yaml:"token" mapstructure:"token" validate:"required"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// Datasets holds the published spreadsheet export URLs.
type Datasets struct {
	Seasons  string `json:"seasons" yaml:"seasons" mapstructure:"seasons" validate:"required,url"`
	Episodes string `json:"episodes" yaml:"episodes" mapstructure:"episodes" validate:"required,url"`
	Releases string `json:"releases" yaml:"releases" mapstructure:"releases" validate:"required,url"`
}

// Reconcile tunes update pacing and the optional poster source.
type Reconcile struct {
	UpdateDelay       time.Duration `json:"updateDelay" yaml:"updateDelay" mapstructure:"updateDelay"`
	SeasonDelay       time.Duration `json:"seasonDelay" yaml:"seasonDelay" mapstructure:"seasonDelay"`
	PosterURLTemplate string        `json:"posterURLTemplate" yaml:"posterURLTemplate" mapstructure:"posterURLTemplate"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the fields a command needs before any network call is made.
func (c Config) Validate() error {
	return validate.Struct(c)
}
