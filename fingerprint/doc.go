// SPDX-License-Identifier: MIT
// Package fingerprint hashes sections into fixed-size digests for audit and
// deduplication, and keeps an in-memory ledger of the digests seen.
//
// The digest function is an external collaborator with the contract
//
//	digest(ordered bytes) -> fixed-length bytes
//
// deterministic and collision-resistant. Digests are opaque identifiers: the
// rest of the module never inspects or inverts them.
//
// Section digests are computed over a canonical encoding of the assignment:
// entries sorted by encoded point, each point and value length-prefixed with
// a uvarint. Sections that are Equal therefore share a digest regardless of
// map iteration order or of unassigned domain points.
package fingerprint
