package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/monobilisim/healthsnap/health"
	lib "github.com/monobilisim/healthsnap/lib"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := lib.InitConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	logger, err := lib.InitLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return 1
	}

	sampler := health.NewSampler(
		health.NewSystemCollector(),
		lib.GlobalConfig.RootPath,
		time.Duration(lib.GlobalConfig.SampleWindow)*time.Second,
		logger,
	)

	snapshot, err := sampler.Sample(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to sample host health")
		return 1
	}

	if err := health.WriteSnapshot(os.Stdout, snapshot); err != nil {
		logger.Error().Err(err).Msg("Failed to write snapshot")
		return 1
	}

	return 0
}
