// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sandbox

import (
	"encoding/binary"
	"sync"

	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
)

type executionContext struct {
	contextId             primitives.ExecutionContextId
	currentBlockHeight    primitives.BlockHeight
	currentBlockTimestamp primitives.TimestampNano
	accessScope           protocol.ExecutionAccessScope
	signerAddress         primitives.ClientAddress
	serviceStack          []primitives.ContractName
	transientState        *transientState
	eventList             []*protocol.EventBuilder
}

func (c *executionContext) serviceStackDepth() int {
	return len(c.serviceStack)
}

func (c *executionContext) serviceStackPush(serviceName primitives.ContractName) {
	c.serviceStack = append(c.serviceStack, serviceName)
}

func (c *executionContext) serviceStackPop() {
	if len(c.serviceStack) == 0 {
		return
	}
	c.serviceStack = c.serviceStack[:len(c.serviceStack)-1]
}

func (c *executionContext) serviceStackPeekCurrent() primitives.ContractName {
	if len(c.serviceStack) == 0 {
		return ""
	}
	return c.serviceStack[len(c.serviceStack)-1]
}

func (c *executionContext) serviceStackPeekCaller() primitives.ContractName {
	if len(c.serviceStack) < 2 {
		return ""
	}
	return c.serviceStack[len(c.serviceStack)-2]
}

func (c *executionContext) eventListAdd(eventName primitives.EventName, argumentArrayRaw []byte) {
	c.eventList = append(c.eventList, &protocol.EventBuilder{
		ContractName:        c.serviceStackPeekCurrent(),
		EventName:           eventName,
		OutputArgumentArray: argumentArrayRaw,
	})
}

type executionContextProvider struct {
	mutex          *sync.RWMutex
	activeContexts map[string]*executionContext
	lastContextId  uint64
}

func newExecutionContextProvider() *executionContextProvider {
	return &executionContextProvider{
		mutex:          &sync.RWMutex{},
		activeContexts: make(map[string]*executionContext),
	}
}

func encodeExecutionContextId(counter uint64) primitives.ExecutionContextId {
	res := make([]byte, 8)
	binary.LittleEndian.PutUint64(res, counter)
	return res
}

func (cp *executionContextProvider) allocateExecutionContext(currentBlockHeight primitives.BlockHeight, currentBlockTimestamp primitives.TimestampNano, accessScope protocol.ExecutionAccessScope, signerAddress primitives.ClientAddress) (primitives.ExecutionContextId, *executionContext) {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	newContext := &executionContext{
		currentBlockHeight:    currentBlockHeight,
		currentBlockTimestamp: currentBlockTimestamp,
		accessScope:           accessScope,
		signerAddress:         signerAddress,
		serviceStack:          []primitives.ContractName{},
		transientState:        newTransientState(),
	}

	// TODO: improve this mechanism because it wraps around
	cp.lastContextId += 1
	newContext.contextId = encodeExecutionContextId(cp.lastContextId)
	cp.activeContexts[newContext.contextId.KeyForMap()] = newContext
	return newContext.contextId, newContext
}

func (cp *executionContextProvider) destroyExecutionContext(executionContextId primitives.ExecutionContextId) {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	delete(cp.activeContexts, executionContextId.KeyForMap())
}

func (cp *executionContextProvider) loadExecutionContext(executionContextId primitives.ExecutionContextId) (*executionContext, error) {
	cp.mutex.RLock()
	defer cp.mutex.RUnlock()

	executionContext, found := cp.activeContexts[executionContextId.KeyForMap()]
	if !found {
		return nil, errors.Errorf("execution context %x is not active", executionContextId)
	}
	return executionContext, nil
}
