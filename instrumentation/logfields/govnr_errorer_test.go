// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"testing"

	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type capturingErrorer struct {
	message string
	fields  []*log.Field
}

func (c *capturingErrorer) Error(message string, fields ...*log.Field) {
	c.message = message
	c.fields = fields
}

func TestGovnrErrorer_ForwardsToLogger(t *testing.T) {
	capture := &capturingErrorer{}

	GovnrErrorer(capture).Error(errors.New("supervised goroutine failed"))

	require.Equal(t, "recovered panic", capture.message)
	require.Len(t, capture.fields, 1, "the error should be attached as a log field")
}
