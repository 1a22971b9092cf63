package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Account  AccountConfig
	BaseURL  string        `env:"STARTUPPONG_BASE_URL" envDefault:"http://www.startuppong.com"`
	Timeout  time.Duration `env:"STARTUPPONG_TIMEOUT" envDefault:"10s"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	Slack    SlackConfig
}

type AccountConfig struct {
	ID  string `env:"STARTUPPONG_ACCOUNT_ID,required,notEmpty"`
	Key string `env:"STARTUPPONG_ACCESS_KEY,required,notEmpty"`
}

type SlackConfig struct {
	Token     string `env:"SLACK_BOT_TOKEN"`
	ChannelID string `env:"SLACK_CHANNEL_ID"`
}

// SlackEnabled reports whether enough Slack settings are present to post messages.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}
