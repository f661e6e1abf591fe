// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sandbox

import (
	"testing"

	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/stretchr/testify/require"
)

func TestContextLoad(t *testing.T) {
	cp := newExecutionContextProvider()

	contextId1, _ := cp.allocateExecutionContext(1, 1000, protocol.ACCESS_SCOPE_READ_ONLY, nil)
	defer cp.destroyExecutionContext(contextId1)

	contextId2, _ := cp.allocateExecutionContext(2, 2000, protocol.ACCESS_SCOPE_READ_ONLY, nil)
	defer cp.destroyExecutionContext(contextId2)

	require.NotEqual(t, contextId1, contextId2, "contextId1 should be different from contextId2")

	c1, err := cp.loadExecutionContext(contextId1)
	require.NoError(t, err)
	require.EqualValues(t, 1, c1.currentBlockHeight, "loaded context with contextId1 should be 1")

	c2, err := cp.loadExecutionContext(contextId2)
	require.NoError(t, err)
	require.EqualValues(t, 2, c2.currentBlockHeight, "loaded context with contextId2 should be 2")
}

func TestContextDestroy(t *testing.T) {
	cp := newExecutionContextProvider()

	contextId, _ := cp.allocateExecutionContext(1, 1000, protocol.ACCESS_SCOPE_READ_ONLY, nil)
	cp.destroyExecutionContext(contextId)

	_, err := cp.loadExecutionContext(contextId)
	require.Error(t, err, "destroyed context should not load")
}

func TestContextServiceStack(t *testing.T) {
	cp := newExecutionContextProvider()
	contextId, c := cp.allocateExecutionContext(1, 1000, protocol.ACCESS_SCOPE_READ_ONLY, nil)
	defer cp.destroyExecutionContext(contextId)

	c.serviceStackPush("Service1")
	require.EqualValues(t, "Service1", c.serviceStackPeekCurrent(), "service top should be initialized")

	c.serviceStackPush("Service2")
	require.EqualValues(t, "Service2", c.serviceStackPeekCurrent(), "service top should change after push")
	require.EqualValues(t, "Service1", c.serviceStackPeekCaller(), "service caller should be below top")

	c.serviceStackPop()
	require.EqualValues(t, "Service1", c.serviceStackPeekCurrent(), "service top should change after pop")

	c.serviceStackPop()
	require.EqualValues(t, "", c.serviceStackPeekCurrent(), "service top should be empty after popping all")
}
