// SPDX-License-Identifier: MIT

package fingerprint

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"slices"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/sheaf/section"
)

// Digest maps an ordered byte sequence to a fixed-length digest.
type Digest func([]byte) []byte

// Blake2b256 is the default digest: 32-byte BLAKE2b.
func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// SHA256 is a 32-byte SHA-256 digest.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Hex renders a digest as lowercase hex.
func Hex(d []byte) string { return hex.EncodeToString(d) }

// Codec turns points and values into bytes for hashing.
// Encoders must be deterministic and injective for the digest to be meaningful.
type Codec[P, V comparable] struct {
	Point func(P) []byte
	Value func(V) []byte
}

// Text encodes v with its default fmt formatting.
func Text[T any](v T) []byte { return fmt.Appendf(nil, "%v", v) }

// TextCodec encodes points and values with Text. Adequate for strings,
// integers and other types whose %v form is unambiguous.
func TextCodec[P, V comparable]() Codec[P, V] {
	return Codec[P, V]{Point: Text[P], Value: Text[V]}
}

// Encode returns the canonical byte encoding of s's assignment.
func Encode[P, V comparable](codec Codec[P, V], s section.Section[P, V]) []byte {
	type entry struct{ point, value []byte }
	entries := make([]entry, 0, s.Len())
	for p, v := range s.All() {
		entries = append(entries, entry{point: codec.Point(p), value: codec.Value(v)})
	}
	// Value bytes break ties between points a non-injective encoder merges,
	// so the order never depends on map iteration.
	slices.SortFunc(entries, func(a, b entry) int {
		if c := bytes.Compare(a.point, b.point); c != 0 {
			return c
		}
		return bytes.Compare(a.value, b.value)
	})

	var buf []byte
	buf = binary.AppendUvarint(buf, uint64(len(entries)))
	for _, e := range entries {
		buf = binary.AppendUvarint(buf, uint64(len(e.point)))
		buf = append(buf, e.point...)
		buf = binary.AppendUvarint(buf, uint64(len(e.value)))
		buf = append(buf, e.value...)
	}

	return buf
}

// Section returns digest(Encode(codec, s)). A nil digest selects Blake2b256.
func Section[P, V comparable](codec Codec[P, V], digest Digest, s section.Section[P, V]) []byte {
	if digest == nil {
		digest = Blake2b256
	}
	return digest(Encode(codec, s))
}
