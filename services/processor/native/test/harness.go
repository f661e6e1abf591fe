// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/orbs-network/feed-contract-go/config"
	"github.com/orbs-network/feed-contract-go/crypto/digest"
	"github.com/orbs-network/feed-contract-go/instrumentation/metric"
	"github.com/orbs-network/feed-contract-go/services/processor/native"
	"github.com/orbs-network/feed-contract-go/services/processor/native/repository/Feed"
	"github.com/orbs-network/feed-contract-go/services/processor/native/testkit"
	"github.com/orbs-network/feed-contract-go/test/builders"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/services"
	"github.com/orbs-network/orbs-spec/types/go/services/handlers"
	"github.com/orbs-network/scribe/log"
)

type harness struct {
	service        services.Processor
	repository     *testkit.ManualRepository
	sdkCallHandler *handlers.MockContractSdkCallHandler
}

func newHarness(logger log.Logger) *harness {
	repository := testkit.NewRepository()
	repository.Register(feed_contract.CONTRACT_NAME, feed_contract.PUBLIC, feed_contract.SYSTEM, nil, sdkContext.PERMISSION_SCOPE_SERVICE)
	repository.RegisterProgramId(digest.MustDecodeProgramId(feed_contract.PROGRAM_ID_BASE58), feed_contract.CONTRACT_NAME)

	sdkCallHandler := &handlers.MockContractSdkCallHandler{}

	service := native.NewProcessorWithContractRepository(repository, config.ForNativeProcessorTests(42), logger, metric.NewRegistry())
	service.RegisterContractSdkCallHandler(sdkCallHandler)

	return &harness{
		service:        service,
		repository:     repository,
		sdkCallHandler: sdkCallHandler,
	}
}

type processCallInputBuilder struct {
	input *services.ProcessCallInput
}

func processCallInput() *processCallInputBuilder {
	return &processCallInputBuilder{
		input: &services.ProcessCallInput{
			ContextId:              primitives.ExecutionContextId([]byte{0x17, 0x18}),
			ContractName:           feed_contract.CONTRACT_NAME,
			MethodName:             feed_contract.METHOD_INITIALIZE,
			InputArgumentArray:     builders.ArgumentsArray(),
			AccessScope:            protocol.ACCESS_SCOPE_READ_WRITE,
			CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
		},
	}
}

func (b *processCallInputBuilder) WithMethod(contractName primitives.ContractName, methodName primitives.MethodName) *processCallInputBuilder {
	b.input.ContractName = contractName
	b.input.MethodName = methodName
	return b
}

func (b *processCallInputBuilder) WithUnknownContract() *processCallInputBuilder {
	b.input.ContractName = "UnknownContract"
	return b
}

func (b *processCallInputBuilder) WithUnknownMethod() *processCallInputBuilder {
	b.input.MethodName = "unknownMethod"
	return b
}

func (b *processCallInputBuilder) WithArgs(args ...interface{}) *processCallInputBuilder {
	b.input.InputArgumentArray = builders.ArgumentsArray(args...)
	return b
}

func (b *processCallInputBuilder) WithSystemPermissions() *processCallInputBuilder {
	b.input.CallingPermissionScope = protocol.PERMISSION_SCOPE_SYSTEM
	return b
}

func (b *processCallInputBuilder) Build() *services.ProcessCallInput {
	return b.input
}
