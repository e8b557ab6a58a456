package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/restaurant-reservation/reservation/app"
	"github.com/Astemirdum/restaurant-reservation/reservation/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title       Restaurant reservation API
// @version     1.0
// @description Reservations and contact blacklist of a restaurant.
// @BasePath    /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
