package codec

import (
	"bytes"
	"time"
)

// Stream carries a chunk of an arbitrary named data stream (e.g. a piped
// subprocess's stdout) to the viewer console. Data is treated as textual
// (BOM-prefixed) when IsText is set, and as opaque binary otherwise.
type Stream struct {
	Channel   string
	Data      []byte
	IsText    bool
	Type      string
	Timestamp time.Time
}

// Body returns the wire body:
//
//	u32 channel_len | u32 data_len | u32 type_len | f64 timestamp |
//	[bytes channel] [bytes data] [bytes type]
func (s Stream) Body() []byte {
	var (
		buf  bytes.Buffer
		data = s.encodedData()
	)

	putUint32(&buf, uint32(len(s.Channel)))
	putUint32(&buf, uint32(len(data)))
	putUint32(&buf, uint32(len(s.Type)))
	putFloat64(&buf, timestampOf(s.Timestamp))

	buf.WriteString(s.Channel)
	buf.Write(data)
	buf.WriteString(s.Type)

	return buf.Bytes()
}

func (s Stream) encodedData() []byte {
	if !s.IsText || len(s.Data) == 0 {
		return s.Data
	}

	return append(append([]byte{}, utf8BOM...), s.Data...)
}

// Record builds the full Record for this Stream.
func (s Stream) Record() Record {
	return Record{
		Kind:          KindStream,
		Body:          s.Body(),
		EstimatedCost: estimateBytes(estimate(s.Channel, s.Type), s.Data),
	}
}
