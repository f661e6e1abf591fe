// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"testing"

	"github.com/orbs-network/feed-contract-go/test/builders"
	"github.com/orbs-network/feed-contract-go/test/with"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/stretchr/testify/require"
)

func panickingMethod() {
	panic("example panic thrown by contract")
}

func TestProcessCall_ContractPanicReportsSmartContractError(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.repository.Register("BrokenContract", []interface{}{panickingMethod}, nil, nil, sdkContext.PERMISSION_SCOPE_SERVICE)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().WithMethod("BrokenContract", "panickingMethod").Build())

		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, output.CallResult)
		require.Equal(t, builders.ArgumentsArray("example panic thrown by contract"), output.OutputArgumentArray, "panic message should surface in output arguments")
	})
}
