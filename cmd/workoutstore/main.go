package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/workoutstore"
)

func main() {
	fmt.Println("starting workout store ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.FromConfig(cfg, "workoutstore", cfg.WorkoutStoreLogsPath, os.Getenv("SENTRY_DSN")))

	storeToken := os.Getenv("FITTRACK_STORE_TOKEN")
	if storeToken == "" {
		log.Errorf("workout store token not set. use FITTRACK_STORE_TOKEN")
	}

	dbUser := os.Getenv("FITTRACK_DB_USER")
	dbPassword := os.Getenv("FITTRACK_DB_PASS")
	if dbPassword == "" {
		log.Debugln("db password not set, using passwordless login. use FITTRACK_DB_PASS to set it")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	server, err := workoutstore.NewServer(
		context.Background(),
		workoutstore.NewServerParams{
			Config:                  cfg,
			DBUser:                  dbUser,
			DBPassword:              dbPassword,
			Token:                   storeToken,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new workout store server: %s", err)
	}

	server.Serve(cfg.WorkoutStoreHost, cfg.WorkoutStorePort)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)

	server.GracefulShutdown()
}
