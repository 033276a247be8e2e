package vecmat

// ArrayLength is a 4-byte (uint32) marker, both on the host and on the wire. A struct containing a
// trailing runtime-sized array may declare at most one field of this type. On write, package
// wire ignores whatever value is stored here and instead emits the enclosing array's current
// element count. On read, the decoded count is stored here and also caps how many elements
// wire reads back into the array, even if more bytes remain in the backing region.
type ArrayLength uint32
