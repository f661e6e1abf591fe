// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sandbox

import (
	"context"
	"sync"
	"time"

	"github.com/orbs-network/feed-contract-go/config"
	"github.com/orbs-network/feed-contract-go/crypto/digest"
	"github.com/orbs-network/feed-contract-go/instrumentation/logfields"
	"github.com/orbs-network/feed-contract-go/instrumentation/metric"
	"github.com/orbs-network/feed-contract-go/instrumentation/trace"
	"github.com/orbs-network/feed-contract-go/services/processor/native"
	"github.com/orbs-network/feed-contract-go/synchronization"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.Service("sandbox")

// the fixed identities the sandbox runs every call under
const (
	SANDBOX_SIGNER_NAME   = "_SandboxSigner"
	SANDBOX_PROPOSER_NAME = "_SandboxProposer"
)

// Sandbox is an in-process single-node host for the contract processor. It
// owns the committed state, allocates an execution context per call and
// answers the processor's sdk callbacks.
type Sandbox interface {
	synchronization.GracefulShutdowner
	RunTransaction(ctx context.Context, programId digest.ProgramId, methodName string, args ...interface{}) (*Receipt, error)
	RunQuery(ctx context.Context, programId digest.ProgramId, methodName string, args ...interface{}) (*Receipt, error)
	BlockHeight() primitives.BlockHeight
}

// Receipt is the outcome of a single sandbox call.
type Receipt struct {
	ContractName    primitives.ContractName
	ExecutionResult protocol.ExecutionResult
	OutputArguments *protocol.ArgumentArray
	OutputEvents    *protocol.EventsArray
	StateDiffs      []*protocol.ContractStateDiff
}

type service struct {
	govnr.TreeSupervisor

	logger     log.Logger
	config     config.SandboxConfig
	processor  services.Processor
	repository native.Repository
	contexts   *executionContextProvider
	state      *inMemoryStatePersistence

	signerAddress   primitives.ClientAddress
	proposerAddress primitives.ClientAddress

	mutex                 sync.RWMutex
	currentBlockHeight    primitives.BlockHeight
	currentBlockTimestamp primitives.TimestampNano

	metrics     *metrics
	blockTicker *synchronization.PeriodicalTrigger
	cancel      context.CancelFunc
}

type metrics struct {
	blockHeight      *metric.Gauge
	transactionCount *metric.Gauge
	transactionsRate *metric.Rate
	processingTime   *metric.Histogram
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		blockHeight:      m.NewGauge("Sandbox.BlockHeight"),
		transactionCount: m.NewGauge("Sandbox.Transactions.Count"),
		transactionsRate: m.NewRate("Sandbox.Transactions.PerSecond"),
		processingTime:   m.NewLatency("Sandbox.Transactions.ProcessingTime.Millis", 10*time.Second),
	}
}

func NewSandbox(parentCtx context.Context, cfg config.SandboxConfig, parentLogger log.Logger, metricFactory metric.Factory) Sandbox {
	return NewSandboxWithRepository(parentCtx, cfg, parentLogger, metricFactory, native.NewPrebuiltRepository())
}

func NewSandboxWithRepository(parentCtx context.Context, cfg config.SandboxConfig, parentLogger log.Logger, metricFactory metric.Factory, repository native.Repository) Sandbox {
	ctx, cancel := context.WithCancel(parentCtx)
	logger := parentLogger.WithTags(LogTag)

	s := &service{
		logger:          logger,
		config:          cfg,
		repository:      repository,
		contexts:        newExecutionContextProvider(),
		state:           newInMemoryStatePersistence(),
		signerAddress:   mustClientAddress(SANDBOX_SIGNER_NAME),
		proposerAddress: mustClientAddress(SANDBOX_PROPOSER_NAME),

		currentBlockHeight:    1,
		currentBlockTimestamp: primitives.TimestampNano(time.Now().UnixNano()),

		metrics: getMetrics(metricFactory),
		cancel:  cancel,
	}

	processor := native.NewProcessorWithContractRepository(repository, cfg, logger, metricFactory)
	processor.RegisterContractSdkCallHandler(s)
	s.processor = processor

	s.blockTicker = synchronization.NewPeriodicalTrigger(ctx, "sandbox block ticker", cfg.SandboxBlockInterval(), logger, s.closeBlock, nil)
	s.Supervise(s.blockTicker)

	logger.Info("sandbox started", logfields.VirtualChainId(cfg.VirtualChainId()), log.Stringable("block-interval", cfg.SandboxBlockInterval()))
	return s
}

func (s *service) RunTransaction(parentCtx context.Context, programId digest.ProgramId, methodName string, args ...interface{}) (*Receipt, error) {
	ctx := trace.NewContext(parentCtx, "Sandbox.RunTransaction")
	return s.run(ctx, programId, methodName, protocol.ACCESS_SCOPE_READ_WRITE, args)
}

func (s *service) RunQuery(parentCtx context.Context, programId digest.ProgramId, methodName string, args ...interface{}) (*Receipt, error) {
	ctx := trace.NewContext(parentCtx, "Sandbox.RunQuery")
	return s.run(ctx, programId, methodName, protocol.ACCESS_SCOPE_READ_ONLY, args)
}

func (s *service) BlockHeight() primitives.BlockHeight {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.currentBlockHeight
}

func (s *service) GracefulShutdown(shutdownContext context.Context) {
	s.cancel()
	s.WaitUntilShutdown(shutdownContext)
}

func (s *service) run(ctx context.Context, programId digest.ProgramId, methodName string, accessScope protocol.ExecutionAccessScope, args []interface{}) (*Receipt, error) {
	contractName, err := s.repository.ContractByProgramId(programId)
	if err != nil {
		return nil, err
	}

	inputArgs, err := protocol.ArgumentArrayFromNatives(args)
	if err != nil {
		return nil, errors.Wrap(err, "input arguments")
	}

	start := time.Now()
	defer s.metrics.processingTime.RecordSince(start)

	receipt := s.runMethod(ctx, primitives.ContractName(contractName), primitives.MethodName(methodName), accessScope, inputArgs)

	s.metrics.transactionCount.Inc()
	s.metrics.transactionsRate.Measure(1)
	return receipt, nil
}

func (s *service) runMethod(ctx context.Context, contractName primitives.ContractName, methodName primitives.MethodName, accessScope protocol.ExecutionAccessScope, inputArgs *protocol.ArgumentArray) *Receipt {
	currentBlockHeight, currentBlockTimestamp := s.currentBlock()

	// create execution context
	executionContextId, executionContext := s.contexts.allocateExecutionContext(currentBlockHeight, currentBlockTimestamp, accessScope, s.signerAddress)
	defer s.contexts.destroyExecutionContext(executionContextId)

	// modify execution context
	executionContext.serviceStackPush(contractName)
	defer executionContext.serviceStackPop()

	// execute the call
	output, err := s.processor.ProcessCall(ctx, &services.ProcessCallInput{
		ContextId:              executionContextId,
		ContractName:           contractName,
		MethodName:             methodName,
		InputArgumentArray:     inputArgs,
		AccessScope:            accessScope,
		CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
	})
	if err != nil {
		s.logger.WithTags(trace.LogFieldFrom(ctx)).Info("execution failed", log.Stringable("result", output.CallResult), log.Error(err), log.Stringable("contract", contractName), log.Stringable("method", methodName), logfields.BlockHeight(currentBlockHeight))
	}

	var stateDiffs []*protocol.ContractStateDiff
	if accessScope == protocol.ACCESS_SCOPE_READ_WRITE && output.CallResult == protocol.EXECUTION_RESULT_SUCCESS {
		s.state.WriteState(executionContext.transientState)
		stateDiffs = encodeTransientStateToStateDiffs(executionContext.transientState)
	}

	outputArgs := output.OutputArgumentArray
	if outputArgs == nil {
		outputArgs = (&protocol.ArgumentArrayBuilder{}).Build()
	}
	outputEvents := (&protocol.EventsArrayBuilder{
		Events: executionContext.eventList,
	}).Build()

	return &Receipt{
		ContractName:    contractName,
		ExecutionResult: output.CallResult,
		OutputArguments: outputArgs,
		OutputEvents:    outputEvents,
		StateDiffs:      stateDiffs,
	}
}

func (s *service) currentBlock() (primitives.BlockHeight, primitives.TimestampNano) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.currentBlockHeight, s.currentBlockTimestamp
}

func (s *service) closeBlock() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.currentBlockHeight += 1
	s.currentBlockTimestamp = primitives.TimestampNano(time.Now().UnixNano())
	s.metrics.blockHeight.Update(int64(s.currentBlockHeight))
}

func encodeTransientStateToStateDiffs(transientState *transientState) []*protocol.ContractStateDiff {
	res := []*protocol.ContractStateDiff{}
	for _, contractName := range transientState.contractSortOrder {
		stateDiffs := []*protocol.StateRecordBuilder{}
		transientState.forDirty(contractName, func(key []byte, value []byte) {
			stateDiffs = append(stateDiffs, &protocol.StateRecordBuilder{
				Key:   key,
				Value: value,
			})
		})
		if len(stateDiffs) > 0 {
			res = append(res, (&protocol.ContractStateDiffBuilder{
				ContractName: contractName,
				StateDiffs:   stateDiffs,
			}).Build())
		}
	}
	return res
}

func mustClientAddress(name string) primitives.ClientAddress {
	address, err := digest.CalcClientAddressOfSigner(name)
	if err != nil {
		panic(err)
	}
	return address
}
