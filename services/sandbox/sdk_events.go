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

func (s *service) handleSdkEventsCall(executionContext *executionContext, methodName primitives.MethodName, args []*protocol.Argument) ([]*protocol.Argument, error) {
	switch methodName {

	case "emitEvent":
		err := s.handleSdkEventsEmitEvent(executionContext, args)
		if err != nil {
			return nil, err
		}
		return []*protocol.Argument{}, nil

	default:
		return nil, errors.Errorf("unknown SDK events call method: %s", methodName)
	}
}

// inputArg0: eventName (string)
// inputArg1: inputArgumentArray ([]byte of raw ArgumentArray)
func (s *service) handleSdkEventsEmitEvent(executionContext *executionContext, args []*protocol.Argument) error {
	if len(args) != 2 || !args[0].IsTypeStringValue() || !args[1].IsTypeBytesValue() {
		return errors.Errorf("invalid SDK events emitEvent args: %v", args)
	}
	eventName := args[0].StringValue()

	// args[1] is already a fully packed ArgumentArray, stored as is so receipt
	// consumers can decode it with protocol.ArgumentArrayReader
	executionContext.eventListAdd(primitives.EventName(eventName), args[1].BytesValue())

	return nil
}
