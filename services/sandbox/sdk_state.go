// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sandbox

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
)

func (s *service) handleSdkStateCall(executionContext *executionContext, methodName primitives.MethodName, args []*protocol.Argument) ([]*protocol.Argument, error) {
	switch methodName {

	case "read":
		value, err := s.handleSdkStateRead(executionContext, args)
		if err != nil {
			return nil, err
		}
		return []*protocol.Argument{(&protocol.ArgumentBuilder{
			// value
			Type:       protocol.ARGUMENT_TYPE_BYTES_VALUE,
			BytesValue: value,
		}).Build()}, nil

	case "write":
		err := s.handleSdkStateWrite(executionContext, args)
		if err != nil {
			return nil, err
		}
		return []*protocol.Argument{}, nil

	default:
		return nil, errors.Errorf("unknown SDK state call method: %s", methodName)
	}
}

// inputArg0: key ([]byte)
// outputArg0: value ([]byte)
func (s *service) handleSdkStateRead(executionContext *executionContext, args []*protocol.Argument) ([]byte, error) {
	if len(args) != 1 || !args[0].IsTypeBytesValue() {
		return nil, errors.Errorf("invalid SDK state read args: %v", args)
	}
	key := args[0].BytesValue()
	contract := executionContext.serviceStackPeekCurrent()

	if value, found := executionContext.transientState.getValue(contract, key); found {
		return value, nil
	}

	value, _ := s.state.ReadValue(contract, key)
	// a missing key reads as the zero value
	return value, nil
}

// inputArg0: key ([]byte)
// inputArg1: value ([]byte)
func (s *service) handleSdkStateWrite(executionContext *executionContext, args []*protocol.Argument) error {
	if len(args) != 2 || !args[0].IsTypeBytesValue() || !args[1].IsTypeBytesValue() {
		return errors.Errorf("invalid SDK state write args: %v", args)
	}

	if executionContext.accessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		return errors.Errorf("write attempted without read-write access scope")
	}

	executionContext.transientState.setValue(executionContext.serviceStackPeekCurrent(), args[0].BytesValue(), args[1].BytesValue(), true)
	return nil
}
