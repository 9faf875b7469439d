package main

import (
	"os"

	"github.com/dparity/draid/internal/cobra"
	"github.com/dparity/draid/internal/config"
	"github.com/dparity/draid/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := logger.InitLogger(config.LogLevelInfo); err != nil {
		logrus.Fatalf("error initializing logger: %v", err)
	}

	if err := cobra.ExecuteCmd(); err != nil {
		logrus.Fatalf("error executing command: %v", err)
		os.Exit(1)
	}
}
