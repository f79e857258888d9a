package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
)

var configPath = flag.String("config", "workload.toml", "Path to workload file")

func main() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	config := NewConfig()
	if err := config.Load(*configPath); err != nil {
		log.Fatal(err)
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	logger := log.WithFields(log.Fields{"workload": *configPath})
	runner := NewRunner(logger, config.Verify)
	if err := runner.Run(config.Ops); err != nil {
		logger.WithError(err).Error("workload failed")
		os.Exit(1)
	}
}
