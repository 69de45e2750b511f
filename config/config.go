package config

import "github.com/spf13/viper"

type Config struct {
	Port      string
	ServeName string
	Log       LogConfig
	Tts       TtsConfig
}
type LogConfig struct {
	Level int
}

// TtsConfig holds the upstream speech API settings. ApiKey is an optional
// server-side default; requests that carry their own key override it.
type TtsConfig struct {
	BaseUrl    string
	ApiKey     string
	Model      string
	Timeout    int
	MaxTextLen int
	Rps        float64
}

func NewConfig() *Config {
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("port", ":8080")
	viper.SetDefault("servename", "gemini-tts-web")
	viper.SetDefault("tts.baseurl", "https://generativelanguage.googleapis.com")
	viper.SetDefault("tts.model", "gemini-2.5-flash-preview-tts")
	viper.SetDefault("tts.timeout", 60)
	viper.SetDefault("tts.maxtextlen", 8000)
	viper.SetDefault("tts.rps", 0)

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		panic(err)
	}
	return c
}
