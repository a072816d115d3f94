package config

import (
	"fmt"

	"github.com/clipora/video-backend/pkg/mediagateway"
	"github.com/clipora/video-backend/pkg/paymentgateway"
	"github.com/spf13/viper"
)

type Config struct {
	API            API                   `mapstructure:"api"`
	PaymentGateway paymentgateway.Config `mapstructure:"payment_gateway"`
	MediaGateway   mediagateway.Config   `mapstructure:"media_gateway"`
	Payments       Payments              `mapstructure:"payments"`
}

type API struct {
	Port    string `mapstructure:"port"`
	DevMode bool   `mapstructure:"dev_mode"`
}

type Payments struct {
	// StrictConfirm makes confirmation fail when the referenced ledger
	// records are missing instead of silently skipping them.
	StrictConfirm bool `mapstructure:"strict_confirm"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.port", ":3000")
	viper.SetDefault("payment_gateway.timeout", "15s")
	viper.SetDefault("media_gateway.timeout", "10s")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.PaymentGateway.APIKey == "" {
		return nil, fmt.Errorf("payment_gateway.api_key is required")
	}

	return cfg, nil
}
