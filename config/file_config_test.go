// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileConfig_OverridesDefaults(t *testing.T) {
	cfg, err := newFileConfig(defaultConfig(), `{
		"virtual-chain-id": 1000,
		"sandbox-block-interval": "250ms",
		"ntp-endpoint": "time.example.com"
	}`)

	require.NoError(t, err)
	require.EqualValues(t, 1000, cfg.VirtualChainId())
	require.Equal(t, 250*time.Millisecond, cfg.SandboxBlockInterval())
	require.Equal(t, "time.example.com", cfg.NtpEndpoint())

	// untouched keys keep defaults
	require.Equal(t, 30*time.Second, cfg.MetricReportingInterval())
}

func TestFileConfig_RejectsMalformedJson(t *testing.T) {
	_, err := newFileConfig(defaultConfig(), `{`)
	require.Error(t, err)
}

func TestFileConfig_RejectsUnsupportedValueTypes(t *testing.T) {
	_, err := newFileConfig(defaultConfig(), `{"virtual-chain-id": [1, 2]}`)
	require.Error(t, err)
}

func TestConvertKeyName(t *testing.T) {
	require.Equal(t, "SANDBOX_BLOCK_INTERVAL", convertKeyName("sandbox-block-interval"))
}

func TestDefaultsAreComplete(t *testing.T) {
	cfg := defaultConfig()

	require.NotZero(t, cfg.VirtualChainId())
	require.NotZero(t, cfg.SandboxBlockInterval())
	require.NotZero(t, cfg.GracefulShutdownTimeout())
	require.NotZero(t, cfg.MetricReportingInterval())
	require.NotEmpty(t, cfg.NtpEndpoint())
}
