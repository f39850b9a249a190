package main

import (
	"errors"
	stdLog "log"
	"os"
	"time"

	"github.com/akmurmu82/library-management-app/bookshelf/app"
	"github.com/akmurmu82/library-management-app/bookshelf/config"
	"github.com/joho/godotenv"
)

// @title Books Library API
// @version 1.0
// @description Personal book tracking: catalog, reading list, status and ratings.
// @BasePath /api
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg, err := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)
	if err != nil {
		stdLog.Fatal("config ", err)
	}
	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
