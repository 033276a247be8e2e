// Package vecmat provides this module's native vector, matrix, and array-length-marker
// types: the concrete leaves a caller plugs into a struct field to get a WGSL vecN, matCxR,
// or runtime-array element count on the wire. It is not a general-purpose math library —
// there is no arithmetic here, only the storage shape and the two small marker interfaces
// package wire dispatches traversal on.
package vecmat
