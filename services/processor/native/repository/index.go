// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package repository

import (
	"github.com/orbs-network/feed-contract-go/crypto/digest"
	"github.com/orbs-network/feed-contract-go/services/processor/native/repository/Feed"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
)

var PreBuiltContracts = map[string]*sdkContext.ContractInfo{
	feed_contract.CONTRACT_NAME: {
		PublicMethods: feed_contract.PUBLIC,
		SystemMethods: feed_contract.SYSTEM,
		Permission:    sdkContext.PERMISSION_SCOPE_SERVICE,
	},
	// add new pre-built contracts here
}

// ProgramIds routes the public identifier each contract declares to its
// contract name.
var ProgramIds = map[string]string{
	digest.MustDecodeProgramId(feed_contract.PROGRAM_ID_BASE58).KeyForMap(): feed_contract.CONTRACT_NAME,
}
