// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package base58

import (
	"encoding/hex"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecode_KnownProgramIdVector(t *testing.T) {
	raw, err := Decode([]byte("H4FBVtcR7yKNWJWnwK6wwEtREYaF5Vi6w9R1uHZXRw7F"))
	require.NoError(t, err)
	require.Equal(t, "ee8fc48bd49c9e8758e0929d4f87efa5ceb378e92c783a2c787095aafb882ca2", hex.EncodeToString(raw))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	vectors := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x61},
		{0x61},
		{0xff, 0xfe, 0xfd},
		{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09},
	}
	for _, v := range vectors {
		decoded, err := Decode(Encode(v))
		require.NoError(t, err)
		require.EqualValues(t, v, decoded, "decode should invert encode for %x", v)
	}
}

func TestDecode_RejectsInvalidDigits(t *testing.T) {
	_, err := Decode([]byte("0OIl"))
	require.Error(t, err, "characters outside the base58 alphabet should be rejected")
}
