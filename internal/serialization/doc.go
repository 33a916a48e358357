// Package serialization provides the binary .gtns format for tensors of any
// element type.
//
// The format stores the shape followed by every element as produced by the
// element type's Serialize method, so any type whose ops can serialize
// values can be stored:
//
//	Format Structure (little-endian):
//	  [4 bytes: Magic "GTNS"]
//	  [4 bytes: Version (uint32)]
//	  [4 bytes: Rank (uint32)]
//	  [4*Rank bytes: Extents (uint32 each)]
//	  For every element in row-major order:
//	    [4 bytes: Payload length (uint32)]
//	    [Payload]
//	  [32 bytes: SHA-256 of everything above]
//
// Example usage:
//
//	data, err := serialization.Marshal(t)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	back, err := serialization.Unmarshal[int, element.Int[int]](data)
//
// Element types that cannot serialize (element.Byte, element.FractionOps)
// make Marshal fail with their own error, matchable with errors.Is.
package serialization
