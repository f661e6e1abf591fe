// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sandbox

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type keyValuePair struct {
	key   []byte
	value []byte
	dirty bool
}

type transientState struct {
	contracts         map[primitives.ContractName]map[string]*keyValuePair
	contractSortOrder []primitives.ContractName
}

func newTransientState() *transientState {
	return &transientState{
		contracts: make(map[primitives.ContractName]map[string]*keyValuePair),
	}
}

func (t *transientState) getValue(contract primitives.ContractName, key []byte) ([]byte, bool) {
	contractPairs, found := t.contracts[contract]
	if !found {
		return nil, false
	}
	pair, found := contractPairs[string(key)]
	if !found {
		return nil, false
	}
	return pair.value, true
}

func (t *transientState) setValue(contract primitives.ContractName, key []byte, value []byte, dirty bool) {
	contractPairs, found := t.contracts[contract]
	if !found {
		contractPairs = make(map[string]*keyValuePair)
		t.contracts[contract] = contractPairs
		t.contractSortOrder = append(t.contractSortOrder, contract)
	}
	contractPairs[string(key)] = &keyValuePair{key, value, dirty}
}

func (t *transientState) forDirty(contract primitives.ContractName, handler func(key []byte, value []byte)) {
	contractPairs, found := t.contracts[contract]
	if !found {
		return
	}
	for _, pair := range contractPairs {
		if pair.dirty {
			handler(pair.key, pair.value)
		}
	}
}
