package mediagateway

import "time"

type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	CloudName string        `mapstructure:"cloud_name"`
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	Timeout   time.Duration `mapstructure:"timeout"`
}
