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

type NodeConfig interface {
	// shared
	VirtualChainId() primitives.VirtualChainId

	// sandbox
	SandboxBlockInterval() time.Duration
	GracefulShutdownTimeout() time.Duration

	// metrics
	MetricReportingInterval() time.Duration
	NtpEndpoint() string
}

type mutableNodeConfig interface {
	NodeConfig

	// setters (for creation)
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
}

type config struct {
	kv map[string]NodeConfigValue
}

const (
	VIRTUAL_CHAIN_ID          = "VIRTUAL_CHAIN_ID"
	SANDBOX_BLOCK_INTERVAL    = "SANDBOX_BLOCK_INTERVAL"
	GRACEFUL_SHUTDOWN_TIMEOUT = "GRACEFUL_SHUTDOWN_TIMEOUT"
	METRIC_REPORTING_INTERVAL = "METRIC_REPORTING_INTERVAL"
	NTP_ENDPOINT              = "NTP_ENDPOINT"
)

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) VirtualChainId() primitives.VirtualChainId {
	return primitives.VirtualChainId(c.kv[VIRTUAL_CHAIN_ID].Uint32Value)
}

func (c *config) SandboxBlockInterval() time.Duration {
	return c.kv[SANDBOX_BLOCK_INTERVAL].DurationValue
}

func (c *config) GracefulShutdownTimeout() time.Duration {
	return c.kv[GRACEFUL_SHUTDOWN_TIMEOUT].DurationValue
}

func (c *config) MetricReportingInterval() time.Duration {
	return c.kv[METRIC_REPORTING_INTERVAL].DurationValue
}

func (c *config) NtpEndpoint() string {
	return c.kv[NTP_ENDPOINT].StringValue
}
