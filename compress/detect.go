package compress

import "github.com/voxelio/nbt/format"

// Detect sniffs the container type from the leading magic bytes.
//
// Schematic files in the wild are almost always gzip-wrapped, with zlib as
// the historical runner-up; zstd and lz4 frames appear in newer tooling.
// Data matching none of the known magics is treated as an uncompressed tag
// stream.
//
// The zlib check is the weakest (the format has no real magic, only a
// 0x78 CMF byte), so it additionally validates the FCHECK parity the zlib
// header requires. A raw tag stream cannot collide with it: a leading 0x78
// would mean tag type 120, which the decoder rejects anyway.
func Detect(data []byte) format.CompressionType {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return format.CompressionGzip
	}
	if len(data) >= 4 && data[0] == 0x28 && data[1] == 0xb5 && data[2] == 0x2f && data[3] == 0xfd {
		return format.CompressionZstd
	}
	if len(data) >= 4 && data[0] == 0x04 && data[1] == 0x22 && data[2] == 0x4d && data[3] == 0x18 {
		return format.CompressionLZ4
	}
	if len(data) >= 2 && data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0 {
		return format.CompressionZlib
	}

	return format.CompressionNone
}
