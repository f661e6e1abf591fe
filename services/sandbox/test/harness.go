// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"

	"github.com/orbs-network/feed-contract-go/config"
	"github.com/orbs-network/feed-contract-go/crypto/digest"
	"github.com/orbs-network/feed-contract-go/crypto/hash"
	"github.com/orbs-network/feed-contract-go/instrumentation/metric"
	feed_contract "github.com/orbs-network/feed-contract-go/services/processor/native/repository/Feed"
	"github.com/orbs-network/feed-contract-go/services/processor/native/testkit"
	"github.com/orbs-network/feed-contract-go/services/sandbox"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/scribe/log"
)

type harness struct {
	sandbox    sandbox.Sandbox
	repository *testkit.ManualRepository

	feedProgramId      digest.ProgramId
	postBoardProgramId digest.ProgramId
}

func newHarness(ctx context.Context, logger log.Logger) *harness {
	repository := testkit.NewRepository()

	feedProgramId := digest.MustDecodeProgramId(feed_contract.PROGRAM_ID_BASE58)
	repository.Register(feed_contract.CONTRACT_NAME, feed_contract.PUBLIC, feed_contract.SYSTEM, nil, sdkContext.PERMISSION_SCOPE_SERVICE)
	repository.RegisterProgramId(feedProgramId, feed_contract.CONTRACT_NAME)

	postBoardProgramId := digest.ProgramId(hash.CalcSha256([]byte(POST_BOARD_CONTRACT_NAME)))
	repository.Register(POST_BOARD_CONTRACT_NAME, POST_BOARD_PUBLIC, nil, POST_BOARD_EVENTS, sdkContext.PERMISSION_SCOPE_SERVICE)
	repository.RegisterProgramId(postBoardProgramId, POST_BOARD_CONTRACT_NAME)

	return &harness{
		sandbox:            sandbox.NewSandboxWithRepository(ctx, config.ForSandboxTests(), logger, metric.NewRegistry(), repository),
		repository:         repository,
		feedProgramId:      feedProgramId,
		postBoardProgramId: postBoardProgramId,
	}
}
