// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"testing"

	"github.com/orbs-network/feed-contract-go/crypto/digest"
	"github.com/orbs-network/feed-contract-go/services/processor/native/repository/Feed"
	"github.com/orbs-network/feed-contract-go/test/with"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/stretchr/testify/require"
)

func TestProcessCall_InitializeSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().Build())

		require.NoError(t, err, "initialize should succeed")
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.CallResult, "initialize should report success")
		require.False(t, output.OutputArgumentArray.ArgumentsIterator().HasNext(), "initialize should return no output arguments")
	})
}

func TestProcessCall_InitializeMakesNoSdkCalls(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.sdkCallHandler.When("HandleSdkCall", mock.Any, mock.Any).Return(nil, nil).Times(0)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().Build())

		require.NoError(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.CallResult)

		ok, err := h.sdkCallHandler.Verify()
		require.True(t, ok, "initialize should not reach the sdk handler: %v", err)
	})
}

func TestProcessCall_UnknownContractFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().WithUnknownContract().Build())

		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, output.CallResult)
	})
}

func TestProcessCall_UnknownMethodFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().WithUnknownMethod().Build())

		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
	})
}

func TestProcessCall_InitializeRejectsUnexpectedArguments(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().WithArgs(uint32(17)).Build())

		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
	})
}

func TestRepository_RoutesProgramIdToFeedContract(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		contractName, err := h.repository.ContractByProgramId(digest.MustDecodeProgramId(feed_contract.PROGRAM_ID_BASE58))

		require.NoError(t, err)
		require.Equal(t, feed_contract.CONTRACT_NAME, contractName)
	})
}

func TestRepository_UnknownProgramIdFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		unknownId := make([]byte, digest.PROGRAM_ID_SIZE_BYTES)
		_, err := h.repository.ContractByProgramId(unknownId)

		require.Error(t, err, "routing an undeclared program id should fail")
	})
}
