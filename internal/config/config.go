package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	RedisAddress        string        `mapstructure:"REDIS_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	EmailSenderAddress  string        `mapstructure:"EMAIL_SENDER_ADDRESS"`

	// Site identity used by the social preview renderer.
	SiteName        string `mapstructure:"SITE_NAME"`
	BaseURL         string `mapstructure:"BASE_URL"`
	PreviewImageURL string `mapstructure:"PREVIEW_IMAGE_URL"`

	// Job defaults applied by the normalizer.
	PlaceholderLogoURL string `mapstructure:"PLACEHOLDER_LOGO_URL"`
	DefaultCurrency    string `mapstructure:"DEFAULT_CURRENCY"`

	// Cache-Control max-age (seconds) for resolved job preview documents.
	// The generic fallback is always served with max-age=0.
	JobPreviewMaxAge int `mapstructure:"JOB_PREVIEW_MAX_AGE"`

	// Payment provider.
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	FeaturedPostPriceID string `mapstructure:"FEATURED_POST_PRICE_ID"`
}

// LoadConfig reads configuration from a file or environment variables
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
