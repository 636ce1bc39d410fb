package config

import (
	"os"

	authservice "esportconnect/auth/service"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Debug        bool   `toml:"debug_mode"`
}

type Config struct {
	TgBot  TgBot
	Server Server
	Auth   authservice.Config
}

const (
	defaultServerConfig = "configs/server.toml"
	defaultAuthConfig   = "configs/auth.toml"
	defaultBotConfig    = "configs/bot.toml"
)

// New loads configuration from TOML files. Empty paths fall back to the
// files under configs/. Secrets can be overridden from the environment.
func New(serverPath, authPath, botPath string) (Config, error) {
	if serverPath == "" {
		serverPath = defaultServerConfig
	}
	if authPath == "" {
		authPath = defaultAuthConfig
	}
	if botPath == "" {
		botPath = defaultBotConfig
	}

	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var tgBotCfg TgBot
	if serverCfg.TgBotEnabled {
		_, err = toml.DecodeFile(botPath, &tgBotCfg)
		if err != nil {
			return Config{}, err
		}
		if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
			tgBotCfg.TelegramApiToken = token
		}
	}

	var authCfg authservice.Config
	_, err = toml.DecodeFile(authPath, &authCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("AUTH_TOKEN_SECRET"); token != "" {
		authCfg.Token = token
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
		Auth:   authCfg,
	}, nil
}
