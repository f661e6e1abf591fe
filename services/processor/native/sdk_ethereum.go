// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
)

// this runtime carries no crosschain connector, so the ethereum surface of the
// contract sdk is rejected at call time rather than silently returning garbage
func (s *service) SdkEthereumCallMethod(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope, contractAddress string, jsonAbi string, ethBlockNumber uint64, methodName string, out interface{}, args ...interface{}) {
	panic("Sdk.Ethereum is not supported by this runtime")
}

func (s *service) SdkEthereumGetTransactionLog(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope, contractAddress string, jsonAbi string, ethTransactionId string, eventName string, out interface{}) (uint64, uint32) {
	panic("Sdk.Ethereum is not supported by this runtime")
}

func (s *service) SdkEthereumGetBlockNumber(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope) uint64 {
	panic("Sdk.Ethereum is not supported by this runtime")
}

func (s *service) SdkEthereumGetBlockNumberByTime(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope, ethBlockTimestamp uint64) uint64 {
	panic("Sdk.Ethereum is not supported by this runtime")
}

func (s *service) SdkEthereumGetBlockTime(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope) uint64 {
	panic("Sdk.Ethereum is not supported by this runtime")
}

func (s *service) SdkEthereumGetBlockTimeByNumber(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope, ethBlockNumber uint64) uint64 {
	panic("Sdk.Ethereum is not supported by this runtime")
}
