// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package hash

import (
	"crypto/sha256"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"golang.org/x/crypto/ripemd160"
)

const (
	SHA256_HASH_SIZE_BYTES          = 32
	RIPMD160_SHA256_HASH_SIZE_BYTES = 20
)

func CalcSha256(data ...[]byte) primitives.Sha256 {
	s := sha256.New()
	for _, d := range data {
		s.Write(d)
	}
	return s.Sum(nil)
}

// account identities are addressed by ripemd160 over sha256
func CalcRipmd160Sha256(data ...[]byte) []byte {
	r := ripemd160.New()
	r.Write(CalcSha256(data...))
	return r.Sum(nil)
}
