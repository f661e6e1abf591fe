// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package testkit

import (
	"context"
	"sync"

	"github.com/orbs-network/feed-contract-go/crypto/digest"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

type ManualRepository struct {
	sync.Mutex
	contracts  map[string]*sdkContext.ContractInfo
	programIds map[string]string
}

func NewRepository() *ManualRepository {
	return &ManualRepository{
		contracts:  make(map[string]*sdkContext.ContractInfo),
		programIds: make(map[string]string),
	}
}

func (r *ManualRepository) ContractInfo(ctx context.Context, executionContextId primitives.ExecutionContextId, contractName string) (*sdkContext.ContractInfo, error) {
	r.Lock()
	defer r.Unlock()
	contractInfo, found := r.contracts[contractName]
	if !found {
		return nil, errors.Errorf("contract '%s' is not deployed", contractName)
	}
	return contractInfo, nil
}

func (r *ManualRepository) ContractByProgramId(programId digest.ProgramId) (string, error) {
	r.Lock()
	defer r.Unlock()
	contractName, found := r.programIds[programId.KeyForMap()]
	if !found {
		return "", errors.Errorf("no contract declares program id '%s'", programId)
	}
	return contractName, nil
}

func (r *ManualRepository) Register(contractName string, publicMethods []interface{}, systemMethods []interface{}, events []interface{}, permissions sdkContext.PermissionScope) {
	r.Lock()
	defer r.Unlock()
	r.contracts[contractName] = &sdkContext.ContractInfo{PublicMethods: publicMethods, SystemMethods: systemMethods, EventsMethods: events, Permission: permissions}
}

func (r *ManualRepository) RegisterProgramId(programId digest.ProgramId, contractName string) {
	r.Lock()
	defer r.Unlock()
	r.programIds[programId.KeyForMap()] = contractName
}
