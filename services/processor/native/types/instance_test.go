// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"testing"

	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/stretchr/testify/require"
)

func exampleMethod() {}

func anotherExampleMethod(a uint32) uint32 { return a }

func TestGetContractMethodNameFromFunction(t *testing.T) {
	name, err := GetContractMethodNameFromFunction(exampleMethod)
	require.NoError(t, err)
	require.Equal(t, "exampleMethod", name)
}

func TestGetContractMethodNameFromFunction_RejectsNonFunctions(t *testing.T) {
	_, err := GetContractMethodNameFromFunction("not a function")
	require.Error(t, err)
}

func TestNewContractInstance_IndexesMethodsByName(t *testing.T) {
	instance, err := NewContractInstance(&sdkContext.ContractInfo{
		PublicMethods: []interface{}{anotherExampleMethod},
		SystemMethods: []interface{}{exampleMethod},
		Permission:    sdkContext.PERMISSION_SCOPE_SERVICE,
	})
	require.NoError(t, err)
	require.Contains(t, instance.PublicMethods, "anotherExampleMethod")
	require.Contains(t, instance.SystemMethods, "exampleMethod")
	require.Empty(t, instance.EventsMethods)
}

func TestNewContractInstance_RejectsBadMethodDeclarations(t *testing.T) {
	_, err := NewContractInstance(&sdkContext.ContractInfo{
		PublicMethods: []interface{}{42},
	})
	require.Error(t, err)
}
