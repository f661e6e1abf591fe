// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"

	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// NativeProcessorConfig is the slice of the node configuration the contract
// processor cares about.
type NativeProcessorConfig interface {
	VirtualChainId() primitives.VirtualChainId
}

// SandboxConfig is the slice of the node configuration the sandbox runtime
// cares about.
type SandboxConfig interface {
	NativeProcessorConfig
	SandboxBlockInterval() time.Duration
}

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func defaultConfig() mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetUint32(VIRTUAL_CHAIN_ID, 42)
	cfg.SetDuration(SANDBOX_BLOCK_INTERVAL, 1*time.Second)
	cfg.SetDuration(GRACEFUL_SHUTDOWN_TIMEOUT, 100*time.Millisecond)
	cfg.SetDuration(METRIC_REPORTING_INTERVAL, 30*time.Second)
	cfg.SetString(NTP_ENDPOINT, "0.pool.ntp.org")

	return cfg
}

func ForProduction() mutableNodeConfig {
	return defaultConfig()
}

func ForSandboxTests() mutableNodeConfig {
	cfg := defaultConfig()

	cfg.SetDuration(SANDBOX_BLOCK_INTERVAL, 1*time.Millisecond)
	cfg.SetDuration(METRIC_REPORTING_INTERVAL, 10*time.Millisecond)

	return cfg
}

func ForNativeProcessorTests(id primitives.VirtualChainId) NativeProcessorConfig {
	cfg := emptyConfig()
	cfg.SetUint32(VIRTUAL_CHAIN_ID, uint32(id))
	return cfg
}
