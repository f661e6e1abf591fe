// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"

	"github.com/orbs-network/feed-contract-go/crypto/digest"
	"github.com/orbs-network/feed-contract-go/services/processor/native/repository"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

// PrebuiltRepository serves the contracts compiled into this binary.
type PrebuiltRepository struct {
	preBuiltContracts map[string]*sdkContext.ContractInfo
	programIds        map[string]string
}

func NewPrebuiltRepository() *PrebuiltRepository {
	return &PrebuiltRepository{
		preBuiltContracts: repository.PreBuiltContracts,
		programIds:        repository.ProgramIds,
	}
}

func (r *PrebuiltRepository) ContractInfo(ctx context.Context, executionContextId primitives.ExecutionContextId, contractName string) (*sdkContext.ContractInfo, error) {
	contractInfo, found := r.preBuiltContracts[contractName]
	if !found {
		return nil, errors.Errorf("contract '%s' is not deployed", contractName)
	}
	return contractInfo, nil
}

func (r *PrebuiltRepository) ContractByProgramId(programId digest.ProgramId) (string, error) {
	contractName, found := r.programIds[programId.KeyForMap()]
	if !found {
		return "", errors.Errorf("no contract declares program id '%s'", programId)
	}
	return contractName, nil
}
