// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"testing"

	"github.com/orbs-network/feed-contract-go/services/processor/native/repository/Feed"
	"github.com/orbs-network/feed-contract-go/test/with"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/stretchr/testify/require"
)

func TestCallPublicMethodFromServiceScopeSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		_, err := h.service.ProcessCall(context.Background(), processCallInput().Build())

		require.NoError(t, err, "call should succeed")
	})
}

func TestCallSystemMethodFromServiceScopeFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().WithMethod(feed_contract.CONTRACT_NAME, "_init").Build())

		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
	})
}

func TestCallSystemMethodUnderSystemPermissionsSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		_, err := h.service.ProcessCall(context.Background(), processCallInput().WithMethod(feed_contract.CONTRACT_NAME, "_init").WithSystemPermissions().Build())

		require.NoError(t, err, "call should succeed")
	})
}
