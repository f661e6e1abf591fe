// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sandbox

import (
	"bytes"
	"sync"

	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type contractState map[string][]byte

// inMemoryStatePersistence holds the committed key/value state of every
// contract. Writing a zero value deletes the key.
type inMemoryStatePersistence struct {
	mutex     sync.RWMutex
	fullState map[primitives.ContractName]contractState
}

func newInMemoryStatePersistence() *inMemoryStatePersistence {
	return &inMemoryStatePersistence{
		fullState: make(map[primitives.ContractName]contractState),
	}
}

func (sp *inMemoryStatePersistence) ReadValue(contract primitives.ContractName, key []byte) ([]byte, bool) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	contractStore, found := sp.fullState[contract]
	if !found {
		return nil, false
	}
	value, found := contractStore[string(key)]
	return value, found
}

func (sp *inMemoryStatePersistence) WriteState(diffs *transientState) {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	for _, contract := range diffs.contractSortOrder {
		diffs.forDirty(contract, func(key []byte, value []byte) {
			sp.writeOneKey(contract, key, value)
		})
	}
}

func (sp *inMemoryStatePersistence) writeOneKey(contract primitives.ContractName, key []byte, value []byte) {
	contractStore, found := sp.fullState[contract]
	if !found {
		contractStore = make(contractState)
		sp.fullState[contract] = contractStore
	}

	if isZeroValue(value) {
		delete(contractStore, string(key))
		return
	}

	contractStore[string(key)] = value
}

func isZeroValue(value []byte) bool {
	return bytes.Equal(value, []byte{})
}
