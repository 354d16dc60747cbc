// Package opcode holds the JKSN wire-grammar constants (spec §4.1): the
// high-nibble family tags and the low-nibble length-class/inline-value
// markers shared by the encoder and decoder.
//
// This mirrors mebo's section package (bit masks and magic numbers as
// typed constants), flattened here into one opcode space since JKSN has a
// single one-byte control code per node rather than a 32-byte header.
package opcode

// High-nibble family tags.
const (
	FamilySpecial     = 0x00
	FamilyAbsInt      = 0x10
	FamilyFloat       = 0x20
	FamilyText16      = 0x30
	FamilyText8       = 0x40
	FamilyBlob        = 0x50
	FamilyRefresher   = 0x70
	FamilyArray       = 0x80
	FamilyMap         = 0x90
	FamilyTransposed  = 0xA0
	FamilyDeltaInt    = 0xB0
	FamilyOpenArray   = 0xC0
	FamilyIntegrity   = 0xF0

	FamilyMask = 0xF0
	LowMask    = 0x0F
)

// Special family (0x0) low nibble values.
const (
	SpecialNull0 = 0x00
	SpecialNull1 = 0x01
	SpecialFalse = 0x02
	SpecialTrue  = 0x03
	SpecialJSON  = 0x0F
)

// Length-class / inline-length low-nibble sentinels shared by most
// families: 0..N inline, then uint16/uint8/varint. Families use these with
// a family-specific inline ceiling, so they're named per call site rather
// than hard-coded here.
const (
	ClassUint16 = 0x0D
	ClassUint8  = 0x0E
	ClassVarint = 0x0F
)

// Absolute-integer family (0x1) low nibble values.
const (
	AbsIntInlineMax = 0x0A // 0..0xA inline
	AbsIntInt32     = 0x0B
	AbsIntInt16     = 0x0C
	AbsIntInt8      = 0x0D
	AbsIntNegVarint = 0x0E
	AbsIntPosVarint = 0x0F
)

// Float family (0x2) low nibble values.
const (
	FloatNaN      = 0x00
	FloatDouble   = 0x0C
	FloatSingle   = 0x0D
	FloatNegInf   = 0x0E
	FloatPosInf   = 0x0F
	FloatLongDouble = 0x0B // reserved: reject
)

// UTF-16LE text family (0x3) low nibble values.
const (
	Text16InlineMax = 0x0B
	Text16DedupRef  = 0x0C
	Text16Uint16    = 0x0D
	Text16Uint8     = 0x0E
	Text16Varint    = 0x0F
)

// UTF-8 text family (0x4) low nibble values.
const (
	Text8InlineMax = 0x0C
	Text8Uint16    = 0x0D
	Text8Uint8     = 0x0E
	Text8Varint    = 0x0F
)

// Blob family (0x5) low nibble values.
const (
	BlobInlineMax = 0x0B
	BlobDedupRef  = 0x0C
	BlobUint16    = 0x0D
	BlobUint8     = 0x0E
	BlobVarint    = 0x0F
)

// Hashtable refresher family (0x7) low nibble values.
const (
	RefresherClear    = 0x00
	RefresherInlineMax = 0x0C
	RefresherUint16   = 0x0D
	RefresherUint8    = 0x0E
	RefresherVarint   = 0x0F
)

// Array family (0x8) low nibble values.
const (
	ArrayInlineMax = 0x0C
	ArrayUint16    = 0x0D
	ArrayUint8     = 0x0E
	ArrayVarint    = 0x0F
)

// Map family (0x9) low nibble values.
const (
	MapInlineMax = 0x0C
	MapUint16    = 0x0D
	MapUint8     = 0x0E
	MapVarint    = 0x0F
)

// Transposed array family (0xA) low nibble values.
const (
	TransposedUnspecified = 0x00
	TransposedInlineMax   = 0x0C
	TransposedUint16      = 0x0D
	TransposedUint8       = 0x0E
	TransposedVarint      = 0x0F
)

// Delta-integer family (0xB) low nibble values.
const (
	DeltaPosMax     = 0x05 // 0..5 = +0..+5
	DeltaNegMin     = 0x06 // 6..A = -5..-1 via (low&0xF)-11
	DeltaNegMax     = 0x0A
	DeltaInt32      = 0x0B
	DeltaInt16      = 0x0C
	DeltaInt8       = 0x0D
	DeltaNegVarint  = 0x0E
	DeltaPosVarint  = 0x0F
)

// Open-array family (0xC) low nibble values.
const (
	OpenArrayLengthless = 0x08
)

// Integrity/pragma family (0xF) values (full byte, not just low nibble).
const (
	IntegrityPrefixBase = 0xF0 // F0..F5: prefix checksum, algorithm = low nibble
	IntegritySuffixBase = 0xF8 // F8..FD: suffix checksum, algorithm = low nibble - 8
	Pragma              = 0xFF
)

// TextDedupControl and BlobDedupControl are the fixed 2-byte dedup-ref
// control bytes (spec glossary "Dedup ref"): always family 0x3/0x5's "C"
// nibble, regardless of which family originally encoded the payload (a
// UTF-8-encoded string's repeat still dedups through the 0x3 family).
const (
	TextDedupControl = FamilyText16 | Text16DedupRef
	BlobDedupControl = FamilyBlob | BlobDedupRef
)

// MakeControl composes a control byte from a family tag and low nibble.
func MakeControl(family, low byte) byte {
	return family | (low & LowMask)
}

// Family extracts the high-nibble family tag from a control byte.
func Family(control byte) byte {
	return control & FamilyMask
}

// Low extracts the low nibble from a control byte.
func Low(control byte) byte {
	return control & LowMask
}
