package serialization

// Format constants.
const (
	MagicBytes    = "GTNS"
	FormatVersion = 1  // v1: shape, length-prefixed elements, SHA-256 trailer
	ChecksumSize  = 32 // SHA-256 checksum size (32 bytes)
	prefixSize    = 12 // magic + version + rank
	lengthSize    = 4  // per-element payload length
)

// FileExtension is the conventional extension for files written by WriteFile.
const FileExtension = ".gtns"
