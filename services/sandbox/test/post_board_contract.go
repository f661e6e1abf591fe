// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	feed_contract "github.com/orbs-network/feed-contract-go/services/processor/native/repository/Feed"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/address"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/env"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/events"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/service"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
)

// PostBoard is a small stateful contract the sandbox tests run against. It
// keeps a single post counter so that committed and dropped writes are easy
// to observe from receipts.
const POST_BOARD_CONTRACT_NAME = "PostBoard"

var POST_BOARD_PUBLIC = sdk.Export(addPost, getPostCount, addPostAndAbort, currentBlockHeight, postSigner, relayInitialize)
var POST_BOARD_EVENTS = sdk.Export(PostAdded)

var POST_COUNT_KEY = []byte("post-count")

func PostAdded(count uint64) {}

func addPost() uint64 {
	count := state.ReadUint64(POST_COUNT_KEY) + 1
	state.WriteUint64(POST_COUNT_KEY, count)
	events.EmitEvent(PostAdded, count)
	return count
}

func getPostCount() uint64 {
	return state.ReadUint64(POST_COUNT_KEY)
}

func addPostAndAbort() {
	state.WriteUint64(POST_COUNT_KEY, 999)
	panic("post rejected by contract")
}

func currentBlockHeight() uint64 {
	return env.GetBlockHeight()
}

func postSigner() []byte {
	return address.GetSignerAddress()
}

func relayInitialize() {
	service.CallMethod(feed_contract.CONTRACT_NAME, feed_contract.METHOD_INITIALIZE)
}
