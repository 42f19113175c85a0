package codec

import "encoding/binary"

// Encode serializes r as kind(u16 LE) | body_len(u32 LE) | body.
func Encode(r Record) []byte {
	out := make([]byte, 6+len(r.Body))

	binary.LittleEndian.PutUint16(out[0:2], uint16(r.Kind))
	binary.LittleEndian.PutUint32(out[2:6], uint32(len(r.Body)))
	copy(out[6:], r.Body)

	return out
}

// EstimateSize reports the queue-accounting cost already computed for r by
// its builder. It exists so callers holding only a Record (not the builder
// that produced it) have a uniform way to read the cost.
func EstimateSize(r Record) int {
	return r.EstimatedCost
}

// estimate is the common cost formula used by every builder: a fixed base
// plus the byte length of every variable-length field the body carries.
func estimate(fields ...string) int {
	n := baseEstimatedCost

	for _, f := range fields {
		n += len(f)
	}

	return n
}

func estimateBytes(n int, blobs ...[]byte) int {
	for _, b := range blobs {
		n += len(b)
	}

	return n
}
