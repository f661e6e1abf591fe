// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/feed-contract-go/crypto/base58"
	"github.com/orbs-network/feed-contract-go/crypto/hash"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

const (
	PROGRAM_ID_SIZE_BYTES        = 32
	CLIENT_ADDRESS_SIZE_BYTES    = 20
	CLIENT_ADDRESS_SHA256_OFFSET = hash.SHA256_HASH_SIZE_BYTES - CLIENT_ADDRESS_SIZE_BYTES
)

// ProgramId is the public-key-like identifier a contract declares at compile time.
// The host runtime routes invocations to the contract carrying it.
type ProgramId []byte

func (p ProgramId) Equal(other ProgramId) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p ProgramId) String() string {
	return string(base58.Encode(p))
}

func (p ProgramId) KeyForMap() string {
	return string(p)
}

func DecodeProgramId(base58Id string) (ProgramId, error) {
	raw, err := base58.Decode([]byte(base58Id))
	if err != nil {
		return nil, errors.Wrapf(err, "program id '%s' is not valid base58", base58Id)
	}
	if len(raw) != PROGRAM_ID_SIZE_BYTES {
		return nil, errors.Errorf("program id '%s' decodes to %d bytes, expected %d", base58Id, len(raw), PROGRAM_ID_SIZE_BYTES)
	}
	return ProgramId(raw), nil
}

// panics on a malformed declaration, contract packages call this from a var initializer
func MustDecodeProgramId(base58Id string) ProgramId {
	id, err := DecodeProgramId(base58Id)
	if err != nil {
		panic(err.Error())
	}
	return id
}

func CalcClientAddressOfContract(contractName primitives.ContractName) (primitives.ClientAddress, error) {
	if len(contractName) == 0 {
		return nil, errors.New("contract name is missing for addressing")
	}
	res := hash.CalcSha256([]byte(contractName))[CLIENT_ADDRESS_SHA256_OFFSET:]
	return primitives.ClientAddress(res), nil
}

// account identities are addressed differently from contracts, by ripemd160 over sha256
func CalcClientAddressOfSigner(signerName string) (primitives.ClientAddress, error) {
	if len(signerName) == 0 {
		return nil, errors.New("signer name is missing for addressing")
	}
	return primitives.ClientAddress(hash.CalcRipmd160Sha256([]byte(signerName))), nil
}
