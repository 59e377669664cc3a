package splaycompress

// Magic byte sequences identifying each flavor's stream format. These are
// reserved for an optional container framing and are not emitted or
// consumed by Compress/Decompress: the wire format is a bare bit stream
// with no header. Each sequence embeds one NUL and one 0x0D byte, neither
// at the ends, to aid transport-integrity detection.
var (
	MagicSymbol8    = [8]byte{0xB3, 0xA9, 0x14, 0x00, 0xB9, 0x6C, 0x0D, 0xD8}
	MagicSymbol16LE = [8]byte{0xF2, 0x41, 0xC0, 0x4F, 0x0D, 0x00, 0x5A, 0xF6}
	MagicSymbol16BE = [8]byte{0xF6, 0x5A, 0x00, 0x0D, 0x4F, 0xC0, 0x41, 0xF2}
)
