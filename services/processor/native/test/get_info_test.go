// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"testing"

	"github.com/orbs-network/feed-contract-go/test/with"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/services"
	"github.com/stretchr/testify/require"
)

func TestGetContractInfo_Feed(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		output, err := h.service.GetContractInfo(context.Background(), &services.GetContractInfoInput{
			ContextId:    primitives.ExecutionContextId([]byte{0x17, 0x18}),
			ContractName: "Feed",
		})

		require.NoError(t, err)
		require.Equal(t, protocol.PERMISSION_SCOPE_SERVICE, output.PermissionScope)
	})
}

func TestGetContractInfo_UnknownContractFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		_, err := h.service.GetContractInfo(context.Background(), &services.GetContractInfoInput{
			ContextId:    primitives.ExecutionContextId([]byte{0x17, 0x18}),
			ContractName: "UnknownContract",
		})

		require.Error(t, err, "unknown contract should not return info")
	})
}
