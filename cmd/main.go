package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	authservice "esportconnect/auth/service"
	authsqlite "esportconnect/auth/storage/sqlite"
	botsqlite "esportconnect/bot/botstorage/sqlite"
	"esportconnect/bot/tgbot"
	"esportconnect/internal/config"
	"esportconnect/internal/logger"
	sqlite3 "esportconnect/internal/migrate"
	"esportconnect/internal/seed"
	"esportconnect/internal/service"
	"esportconnect/internal/storage/mem"
	"esportconnect/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath string
	var authConfigPath string
	var botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "", "path to the server config file")
	flag.StringVar(&authConfigPath, "auth-config", "", "path to the auth config file")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to the bot config file")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, authConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := sql.Open("sqlite3", "file:"+cfg.Auth.SqliteFile+"?cache=shared")
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return err
	}
	if err := sqlite3.UpServerDB(db); err != nil {
		return err
	}

	ctx := context.Background()
	authStorage := authsqlite.New(db, cfg.Auth.SessionNamespace(), log)
	authService, err := authservice.New(ctx, cfg.Auth, authStorage, log)
	if err != nil {
		return err
	}

	jobService := service.New(mem.New(seed.Jobs()), log.WithField("module", "jobs"))

	if cfg.Server.TgBotEnabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(jobService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		jobService.SetNotifier(&bot)
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(jobService, cfg.Server, authService)
	if err != nil {
		return err
	}
	return server.Serve()
}
