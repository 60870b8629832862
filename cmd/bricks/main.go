package main

import (
	"flag"

	"go.uber.org/zap"

	"glstudio/internal/arcade"
	"glstudio/internal/config"
	"glstudio/internal/logging"
)

func main() {
	cfgPath := flag.String("config", "glstudio.yaml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logging.New(*debug).Named("bricks")
	defer log.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	if err := arcade.Run(&cfg, log); err != nil {
		log.Fatal("run", zap.Error(err))
	}
}
