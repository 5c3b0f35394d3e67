// Package sheaf decides whether local data agrees on overlaps and, when it
// does, glues it into one global assignment: the sheaf-gluing problem on
// finite, discrete spaces.
//
// A space is decomposed into overlapping open sets; each carries a partial
// assignment (a section). The gluing engine checks every pair of patches on
// their overlap and folds a compatible cover into a global section, or
// names the first pair that disagrees.
//
// Subpackages:
//
//	topology/    - OpenSet value type, Space and MetricSpace contracts
//	section/     - partial assignments: Restrict, IsCompatible, Glue
//	graphspace/  - undirected graphs: adjacency, BFS distance, discrete topology
//	cellcomplex/ - dimension-stratified cells, symmetric attachment, Builder → Complex
//	gluing/      - the Engine: pairwise checks, left fold, uniqueness
//	fingerprint/ - section digests (BLAKE2b, SHA-256) and an audit ledger
//	spacefile/   - YAML fixtures for graphs, complexes and covers
//
// Quick ASCII example:
//
//	1───2───3───4   5
//	└─A─┘
//	    └───B───┘
//
// Sections on A={1,2} and B={2,3,4} glue iff they agree at 2.
//
//	go get github.com/katalvlaran/sheaf
package sheaf
