// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"reflect"
	"runtime"
	"strings"

	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/pkg/errors"
)

type MethodInstance interface{}

type ContractInstance struct {
	PublicMethods map[string]MethodInstance
	SystemMethods map[string]MethodInstance
	EventsMethods map[string]MethodInstance
}

func NewContractInstance(contractInfo *sdkContext.ContractInfo) (*ContractInstance, error) {
	res := &ContractInstance{
		PublicMethods: make(map[string]MethodInstance),
		SystemMethods: make(map[string]MethodInstance),
		EventsMethods: make(map[string]MethodInstance),
	}

	for _, method := range contractInfo.PublicMethods {
		name, err := GetContractMethodNameFromFunction(method)
		if err != nil {
			return nil, errors.Wrap(err, "failed to register public method")
		}
		res.PublicMethods[name] = method
	}

	for _, method := range contractInfo.SystemMethods {
		name, err := GetContractMethodNameFromFunction(method)
		if err != nil {
			return nil, errors.Wrap(err, "failed to register system method")
		}
		res.SystemMethods[name] = method
	}

	for _, method := range contractInfo.EventsMethods {
		name, err := GetContractMethodNameFromFunction(method)
		if err != nil {
			return nil, errors.Wrap(err, "failed to register event method")
		}
		res.EventsMethods[name] = method
	}

	return res, nil
}

func GetContractMethodNameFromFunction(function interface{}) (string, error) {
	v := reflect.ValueOf(function)
	if v.Kind() != reflect.Func {
		return "", errors.Errorf("expected a function but received '%s'", v.Kind())
	}

	fullName := runtime.FuncForPC(v.Pointer()).Name()
	parts := strings.Split(fullName, ".")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "", errors.Errorf("could not extract method name from '%s'", fullName)
	}

	return parts[len(parts)-1], nil
}
