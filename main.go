package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/voxmaze/api"
	api_i "github.com/beka-birhanu/voxmaze/api/i"
	mazeapi "github.com/beka-birhanu/voxmaze/api/maze"
	"github.com/beka-birhanu/voxmaze/config"
	"github.com/beka-birhanu/voxmaze/service"
	"github.com/beka-birhanu/voxmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	appLogger      *logrus.Entry
	mazeManager    i.MazeManager
	mazeController api_i.Controller
	router         *api.Router
)

func initLogger() {
	level, err := logrus.ParseLevel(config.Envs.LogLevel)
	if err != nil {
		logrus.Errorf("Parsing log level %q: %v", config.Envs.LogLevel, err)
		os.Exit(1)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	appLogger = logrus.WithField("component", "app")
	appLogger.Info("Logger initialized")
}

func initMazeManager() {
	var err error
	mazeManager, err = service.NewMazeManager(&service.Config{
		Logger: logrus.WithField("component", "maze-manager"),
	})
	if err != nil {
		appLogger.Errorf("Creating maze manager: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze manager initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeManager, logrus.WithField("component", "maze-api"))
	if err != nil {
		appLogger.Errorf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	initLogger()
	initMazeManager()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		os.Exit(1)
	}
}
