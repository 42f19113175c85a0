package codec

import "encoding/binary"

const frameHeaderSize = 6

// DecodeFrame parses a single frame (kind(u16 LE) | body_len(u32 LE) | body)
// from the front of buf, returning the decoded Record and the slice of buf
// following it. It exists mainly to let tests round-trip Encode's output;
// the client itself only ever writes frames, it never needs to parse one
// back off the wire.
func DecodeFrame(buf []byte) (Record, []byte, error) {
	if len(buf) < frameHeaderSize {
		return Record{}, nil, ErrorFrameTruncated.Error()
	}

	var (
		kind   = Kind(binary.LittleEndian.Uint16(buf[0:2]))
		bodLen = binary.LittleEndian.Uint32(buf[2:6])
	)

	if !kind.Valid() {
		return Record{}, nil, ErrorKindUnknown.Error()
	}

	if uint32(len(buf)-frameHeaderSize) < bodLen {
		return Record{}, nil, ErrorFrameTruncated.Error()
	}

	var (
		body = buf[frameHeaderSize : frameHeaderSize+int(bodLen)]
		rest = buf[frameHeaderSize+int(bodLen):]
	)

	return Record{Kind: kind, Body: body, EstimatedCost: estimate(string(body))}, rest, nil
}

// Valid reports whether k is one of the recognized wire kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindControlCommand, KindLogEntry, KindWatch, KindProcessFlow, KindHeader, KindStream:
		return true
	}

	return false
}
