// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sandbox

import (
	"context"

	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/services/handlers"
	"github.com/pkg/errors"
)

func (s *service) HandleSdkCall(ctx context.Context, input *handlers.HandleSdkCallInput) (*handlers.HandleSdkCallOutput, error) {
	executionContext, err := s.contexts.loadExecutionContext(input.ContextId)
	if err != nil {
		return nil, err
	}

	var outputArgs []*protocol.Argument
	switch input.OperationName {
	case "Sdk.State":
		outputArgs, err = s.handleSdkStateCall(executionContext, primitives.MethodName(input.MethodName), input.InputArguments)
	case "Sdk.Env":
		outputArgs, err = s.handleSdkEnvCall(executionContext, primitives.MethodName(input.MethodName), input.InputArguments)
	case "Sdk.Address":
		outputArgs, err = s.handleSdkAddressCall(executionContext, primitives.MethodName(input.MethodName), input.InputArguments)
	case "Sdk.Service":
		outputArgs, err = s.handleSdkServiceCall(ctx, executionContext, primitives.MethodName(input.MethodName), input.InputArguments, input.PermissionScope)
	case "Sdk.Events":
		outputArgs, err = s.handleSdkEventsCall(executionContext, primitives.MethodName(input.MethodName), input.InputArguments)
	default:
		return nil, errors.Errorf("unknown SDK call operation: %s", input.OperationName)
	}

	if err != nil {
		return nil, err
	}
	return &handlers.HandleSdkCallOutput{
		OutputArguments: outputArgs,
	}, nil
}
