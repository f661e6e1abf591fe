// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package feed_contract

import (
	"testing"

	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	. "github.com/orbs-network/orbs-contract-sdk/go/testing/unit"
	"github.com/stretchr/testify/require"
)

func TestFeedContract_InitializeAlwaysSucceeds(t *testing.T) {
	signerAddress := AnAddress()

	InServiceScope(signerAddress, nil, func(m Mockery) {
		_init()

		require.NotPanics(t, func() {
			initialize()
		}, "initialize should never fail")
	})
}

func TestFeedContract_InitializeIsIdempotent(t *testing.T) {
	signerAddress := AnAddress()

	InServiceScope(signerAddress, nil, func(m Mockery) {
		_init()

		require.NotPanics(t, func() {
			initialize()
			initialize()
			initialize()
		}, "repeated calls should behave exactly like the first")
	})
}

func TestFeedContract_InitializeWritesNoState(t *testing.T) {
	signerAddress := AnAddress()

	InServiceScope(signerAddress, nil, func(m Mockery) {
		_init()
		initialize()

		require.Empty(t, state.ReadBytes([]byte(CONTRACT_NAME)), "no state should exist under the contract's own key")
	})
}

func TestFeedContract_DeclarationsAreWellFormed(t *testing.T) {
	require.Equal(t, "Feed", CONTRACT_NAME)
	require.Equal(t, "initialize", METHOD_INITIALIZE)
	require.Len(t, PUBLIC, 1, "a single public method is exported")
	require.Len(t, SYSTEM, 1, "a single system method is exported")
}
