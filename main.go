package main

import (
	"flag"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yared-h/maze-quest/api"
	api_i "github.com/yared-h/maze-quest/api/i"
	mazeapi "github.com/yared-h/maze-quest/api/maze"
	"github.com/yared-h/maze-quest/config"
	"github.com/yared-h/maze-quest/game"
	"github.com/yared-h/maze-quest/tui"
)

var appLogger = logrus.New()

func sessionConfig() game.SessionConfig {
	return game.SessionConfig{
		Height:      config.Envs.MazeHeight,
		Width:       config.Envs.MazeWidth,
		Algorithm:   game.Algorithm(config.Envs.MazeAlgorithm),
		MaxAttempts: config.Envs.MazeMaxAttempts,
	}
}

func serve() {
	gin.SetMode(config.Envs.GinMode)
	addr := fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort)
	router := api.NewRouter(api.Config{
		Addr:    addr,
		BaseURL: "/api",
		Controllers: []api_i.Controller{
			mazeapi.NewController(appLogger),
		},
	})

	appLogger.WithField("addr", addr).Info("starting REST server")
	if err := router.Run(); err != nil {
		appLogger.WithError(err).Fatal("REST server stopped")
	}
}

func play() {
	ui := tui.New(sessionConfig(), appLogger)
	if err := ui.Run(); err != nil {
		appLogger.WithError(err).Fatal("terminal game stopped")
	}
}

func main() {
	serveMode := flag.Bool("serve", false, "run the REST API instead of the terminal game")
	flag.Parse()

	if *serveMode {
		serve()
		return
	}
	play()
}
