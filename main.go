package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/beka-birhanu/vinom-minesweeper/api"
	"github.com/beka-birhanu/vinom-minesweeper/config"
	"github.com/beka-birhanu/vinom-minesweeper/service"
	"github.com/beka-birhanu/vinom-minesweeper/service/i"
	"google.golang.org/grpc"
)

// Global variables for dependencies
var (
	grpcConnListener   net.Listener
	grpcServer         *grpc.Server
	gameSessionManager i.GameSessionManager
	appLogger          general_i.Logger
)

func initGameSessionManager() {
	gameLogger, err := logger.New("GAME-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game session manager logger: %v", err))
		os.Exit(1)
	}
	manager, err := service.NewGameSessionManager(
		&service.Config{
			IdleTimeout: time.Duration(config.Envs.SessionIdleTimeout) * time.Second,
			Logger:      gameLogger,
		},
	)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game session manager: %v", err))
		os.Exit(1)
	}
	gameSessionManager = manager
	appLogger.Info("Game Session Manager initialized")
}

func initSessionController() {
	grpcLogger, err := logger.New("GRPC", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gRPC logger: %v", err))
		os.Exit(1)
	}
	grpcServer = grpc.NewServer(grpc.UnaryInterceptor(api.LoggingInterceptor(grpcLogger)))
	err = api.RegisterSessionManager(grpcServer, gameSessionManager, api.BoardDefaults{
		Rows:    config.Envs.DefaultRows,
		Cols:    config.Envs.DefaultCols,
		Hazards: config.Envs.DefaultHazards,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating and registering session controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session controller initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	initGameSessionManager()
	initSessionController()

	defer gameSessionManager.StopAll()

	var err error
	addr := fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.GrpcPort)
	grpcConnListener, err = net.Listen("tcp", addr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Listening tcp: %v", err))
		os.Exit(1)
	}
	defer func() {
		_ = grpcConnListener.Close()
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		appLogger.Info("Shutting down")
		grpcServer.GracefulStop()
	}()

	appLogger.Info(fmt.Sprintf("Serving gRPC at: %s", addr))

	if err := grpcServer.Serve(grpcConnListener); err != nil {
		appLogger.Error(fmt.Sprintf("Serving gRPC: %v", err))
		os.Exit(1)
	}
}
