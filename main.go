// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/orbs-network/feed-contract-go/config"
	"github.com/orbs-network/feed-contract-go/crypto/digest"
	"github.com/orbs-network/feed-contract-go/instrumentation"
	"github.com/orbs-network/feed-contract-go/instrumentation/metric"
	feed_contract "github.com/orbs-network/feed-contract-go/services/processor/native/repository/Feed"
	"github.com/orbs-network/feed-contract-go/services/sandbox"
	"github.com/orbs-network/feed-contract-go/synchronization"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func main() {
	logger := instrumentation.GetBootstrapCrashLogger()
	var box sandbox.Sandbox
	func() { // context of bootstrap crash logging
		defer func() {
			if r := recover(); r != nil {
				logger.Error("unexpected error during bootstrap", log.Error(errors.Errorf("unknown error: %v", r)))
				os.Exit(8)
			}
		}()
		silentLog := flag.Bool("silent", false, "disable output to stdout")
		pathToLog := flag.String("log", "", "path/to/sandbox.log")
		pathToConfig := flag.String("config", "", "path/to/config.json")
		version := flag.Bool("version", false, "returns information about version")

		flag.Parse()

		if *version {
			fmt.Println(config.GetVersion())
			os.Exit(0)
		}

		cfg, err := getConfig(*pathToConfig)
		if err != nil {
			logger.Error("error reading configuration", log.Error(err))
			os.Exit(1)
		}

		logger = instrumentation.GetLogger(*pathToLog, *silentLog)

		ctx := context.Background()
		registry := metric.NewRegistry()

		box = sandbox.NewSandbox(ctx, cfg, logger, registry)

		registry.ReportEvery(ctx, cfg.MetricReportingInterval(), logger)
		metric.NewNtpReporter(ctx, registry, logger, cfg.NtpEndpoint())
		metric.NewSystemReporter(ctx, registry, logger)

		if err := submitLivenessTransaction(ctx, box); err != nil {
			logger.Error("sandbox liveness check failed", log.Error(err))
			os.Exit(3)
		}

		synchronization.NewShutdownListener(logger, box).ListenToOSShutdownSignal()
	}()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error in main goroutine", log.Error(errors.Errorf("unknown error: %v", r)))
			os.Exit(2)
		}
	}()
	box.WaitUntilShutdown(context.Background())
}

func getConfig(path string) (config.NodeConfig, error) {
	if path != "" {
		return config.ForFile(path)
	}
	return config.ForProduction(), nil
}

// submits one initialize transaction to the Feed program so a booting
// sandbox proves the full execution path end to end
func submitLivenessTransaction(ctx context.Context, box sandbox.Sandbox) error {
	programId, err := digest.DecodeProgramId(feed_contract.PROGRAM_ID_BASE58)
	if err != nil {
		return err
	}

	receipt, err := box.RunTransaction(ctx, programId, feed_contract.METHOD_INITIALIZE)
	if err != nil {
		return err
	}
	if receipt.ExecutionResult != protocol.EXECUTION_RESULT_SUCCESS {
		return errors.Errorf("initialize transaction returned %s", receipt.ExecutionResult)
	}
	return nil
}
