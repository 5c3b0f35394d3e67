// SPDX-License-Identifier: MIT
// Package spacefile loads graph spaces, cell complexes and covers from YAML
// documents, so fixtures and experiments can be described as data:
//
//	graph:
//	  vertices: [1, 2, 3, 4, 5]
//	  edges: [[1, 2], [2, 3], [3, 4]]
//	complex:
//	  max_dim: 1
//	  cells:
//	    - {id: v1, dim: 0}
//	    - {id: e1, dim: 1}
//	  attachments:
//	    - {a: {id: e1, dim: 1}, b: {id: v1, dim: 0}}
//	cover:
//	  - domain: [1, 2]
//	    values: {1: a, 2: b}
//
// Every block is optional. Unknown keys are rejected. Construction errors
// from graphspace, cellcomplex and section are returned wrapped, so
// errors.Is still matches their sentinels.
package spacefile
