package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the process configuration, parsed from environment variables.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"3000"`
	MongoURI   string `env:"MONGO_URI"   envDefault:"mongodb://localhost:27017"`
	MongoDB    string `env:"MONGO_DB"    envDefault:"skillwave"`
	UploadDir  string `env:"UPLOAD_DIR"  envDefault:"uploads"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:5175"`

	Token    TokenConfig
	Notifier NotifierConfig
}

// TokenConfig configures session token signing.
type TokenConfig struct {
	Secret string        `env:"TOKEN_SECRET"`
	Issuer string        `env:"TOKEN_ISSUER" envDefault:"skillwave"`
	TTL    time.Duration `env:"TOKEN_TTL"    envDefault:"1h"`
}

// NotifierConfig selects and configures the outbound notification backend.
type NotifierConfig struct {
	Backend string `env:"NOTIFIER_BACKEND" envDefault:"textbelt"`

	TextbeltURL string `env:"TEXTBELT_URL" envDefault:"https://textbelt.com/text"`
	TextbeltKey string `env:"TEXTBELT_KEY" envDefault:"textbelt"`

	VonageAPIKey    string `env:"VONAGE_API_KEY"`
	VonageAPISecret string `env:"VONAGE_API_SECRET"`
	VonageFrom      string `env:"VONAGE_FROM" envDefault:"SkillWave"`

	SMTPHost    string `env:"SMTP_HOST"`
	SMTPPort    int    `env:"SMTP_PORT"`
	SMTPUser    string `env:"SMTP_USERNAME"`
	SMTPPass    string `env:"SMTP_PASSWORD"`
	SMTPFrom    string `env:"SMTP_FROM"`
	EmailDomain string `env:"NOTIFY_EMAIL_DOMAIN"`
}

// New parses the configuration from environment variables and validates it.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks the parts of the configuration that have no safe default.
func (c *Config) validate() error {
	if c.Token.Secret == "" {
		return fmt.Errorf("missing TOKEN_SECRET environment variable")
	}

	switch c.Notifier.Backend {
	case "textbelt", "off":
	case "vonage":
		if c.Notifier.VonageAPIKey == "" || c.Notifier.VonageAPISecret == "" {
			return fmt.Errorf("vonage backend requires VONAGE_API_KEY and VONAGE_API_SECRET")
		}
	case "email":
		if c.Notifier.SMTPHost == "" || c.Notifier.SMTPPort == 0 {
			return fmt.Errorf("email backend requires SMTP_HOST and SMTP_PORT")
		}
		if c.Notifier.SMTPFrom == "" || c.Notifier.EmailDomain == "" {
			return fmt.Errorf("email backend requires SMTP_FROM and NOTIFY_EMAIL_DOMAIN")
		}
	default:
		return fmt.Errorf("unknown notifier backend %q", c.Notifier.Backend)
	}

	return nil
}
