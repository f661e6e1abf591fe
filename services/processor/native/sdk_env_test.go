// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"testing"

	"github.com/orbs-network/feed-contract-go/config"
	"github.com/orbs-network/feed-contract-go/test/builders"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/services/handlers"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var EXAMPLE_CONTEXT = sdkContext.ContextId([]byte{0x17, 0x18})

// the contract sdk calls back into the processor through this interface
var _ sdkContext.SdkHandler = (*service)(nil)

func TestSdkEnv_GetBlockHeight(t *testing.T) {
	s := createEnvSdk()

	height := s.SdkEnvGetBlockHeight(EXAMPLE_CONTEXT, sdkContext.PERMISSION_SCOPE_SERVICE)
	require.EqualValues(t, height, uint64(11), "block height should be returned")
}

func TestSdkEnv_GetBlockTimestamp(t *testing.T) {
	s := createEnvSdk()

	timestamp := s.SdkEnvGetBlockTimestamp(EXAMPLE_CONTEXT, sdkContext.PERMISSION_SCOPE_SERVICE)
	require.EqualValues(t, timestamp, uint64(12), "block timestamp should be returned")
}

func TestSdkEnv_GetBlockProposerAddress(t *testing.T) {
	s := createEnvSdk()

	proposer := s.SdkEnvGetBlockProposerAddress(EXAMPLE_CONTEXT, sdkContext.PERMISSION_SCOPE_SERVICE)
	require.EqualValues(t, proposer, []byte{0x01, 0x02, 0x03}, "block proposer address should be returned")
}

func TestSdkEnv_GetVirtualChainId(t *testing.T) {
	s := &service{config: config.ForNativeProcessorTests(42)}
	vcid := s.SdkEnvGetVirtualChainId(EXAMPLE_CONTEXT, sdkContext.PERMISSION_SCOPE_SERVICE)
	require.EqualValues(t, vcid, 42, "virtual chain id should be returned")
}

func createEnvSdk() *service {
	return &service{sdkHandler: &contractSdkEnvCallHandlerStub{}}
}

type contractSdkEnvCallHandlerStub struct{}

func (c *contractSdkEnvCallHandlerStub) HandleSdkCall(ctx context.Context, input *handlers.HandleSdkCallInput) (*handlers.HandleSdkCallOutput, error) {
	if input.PermissionScope != protocol.PERMISSION_SCOPE_SERVICE {
		panic("permissions passed to SDK are incorrect")
	}
	switch input.MethodName {
	case "getBlockHeight":
		return &handlers.HandleSdkCallOutput{
			OutputArguments: builders.Arguments(uint64(11)),
		}, nil
	case "getBlockTimestamp":
		return &handlers.HandleSdkCallOutput{
			OutputArguments: builders.Arguments(uint64(12)),
		}, nil
	case "getBlockProposerAddress":
		return &handlers.HandleSdkCallOutput{
			OutputArguments: builders.Arguments([]byte{0x01, 0x02, 0x03}),
		}, nil
	default:
		return nil, errors.New("unknown method")
	}
}
