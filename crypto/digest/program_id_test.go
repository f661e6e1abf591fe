// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	ExampleProgramIdBase58 = "H4FBVtcR7yKNWJWnwK6wwEtREYaF5Vi6w9R1uHZXRw7F"
	ExampleProgramIdHex    = "ee8fc48bd49c9e8758e0929d4f87efa5ceb378e92c783a2c787095aafb882ca2"
)

func TestDecodeProgramId(t *testing.T) {
	id, err := DecodeProgramId(ExampleProgramIdBase58)
	require.NoError(t, err)
	require.Len(t, []byte(id), PROGRAM_ID_SIZE_BYTES)
	require.Equal(t, ExampleProgramIdHex, hex.EncodeToString(id))
	require.Equal(t, ExampleProgramIdBase58, id.String())
}

func TestDecodeProgramId_RejectsInvalidBase58(t *testing.T) {
	_, err := DecodeProgramId("0OIl not base58")
	require.Error(t, err)
}

func TestDecodeProgramId_RejectsWrongSize(t *testing.T) {
	_, err := DecodeProgramId("2j") // single byte
	require.Error(t, err)
}

func TestMustDecodeProgramId_PanicsOnError(t *testing.T) {
	require.Panics(t, func() {
		MustDecodeProgramId("tooshort")
	})
	require.NotPanics(t, func() {
		MustDecodeProgramId(ExampleProgramIdBase58)
	})
}

func TestProgramIdEqual(t *testing.T) {
	a := MustDecodeProgramId(ExampleProgramIdBase58)
	b := MustDecodeProgramId(ExampleProgramIdBase58)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(a[1:]))
}

func TestCalcClientAddressOfContract(t *testing.T) {
	addr, err := CalcClientAddressOfContract("Feed")
	require.NoError(t, err)
	require.Len(t, []byte(addr), CLIENT_ADDRESS_SIZE_BYTES)
	require.Equal(t, "8bf8094c9dedcbbe92651bbd3aa7a6e0e6e3aee8", hex.EncodeToString(addr))
}

func TestCalcClientAddressOfContract_RequiresName(t *testing.T) {
	_, err := CalcClientAddressOfContract("")
	require.Error(t, err)
}

func TestCalcClientAddressOfSigner(t *testing.T) {
	addr, err := CalcClientAddressOfSigner("_SandboxSigner")
	require.NoError(t, err)
	require.Len(t, []byte(addr), CLIENT_ADDRESS_SIZE_BYTES)

	contractAddr, err := CalcClientAddressOfContract("_SandboxSigner")
	require.NoError(t, err)
	require.NotEqual(t, addr, contractAddr, "signer addressing should not collide with contract addressing")
}

func TestCalcClientAddressOfSigner_RequiresName(t *testing.T) {
	_, err := CalcClientAddressOfSigner("")
	require.Error(t, err)
}
