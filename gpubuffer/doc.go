// Package gpubuffer wraps a caller-supplied byte backing with the four WGSL buffer access
// patterns: a static uniform buffer, a static storage buffer, and their dynamic-offset
// counterparts. Each wrapper enforces its address space's invariants (uniform compatibility,
// minimum dynamic alignment) and drives package wire for the actual byte traversal. A fifth,
// non-address-space wrapper, VertexBuffer, lays out per-vertex attribute data with an append
// cursor but no alignment floor.
package gpubuffer
