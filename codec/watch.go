package codec

import (
	"bytes"
	"time"
)

// Watch reports the current value of a named variable being tracked by the
// viewer console's watch panel.
type Watch struct {
	Name      string
	Value     string
	WatchType uint32
	Timestamp time.Time
}

// Body returns the wire body:
//
//	u32 name_len | u32 value_len | u32 watch_type | f64 timestamp |
//	[bytes name] [bytes value]
func (w Watch) Body() []byte {
	var buf bytes.Buffer

	putUint32(&buf, uint32(len(w.Name)))
	putUint32(&buf, uint32(len(w.Value)))
	putUint32(&buf, w.WatchType)
	putFloat64(&buf, timestampOf(w.Timestamp))

	buf.WriteString(w.Name)
	buf.WriteString(w.Value)

	return buf.Bytes()
}

// Record builds the full Record for this Watch.
func (w Watch) Record() Record {
	return Record{
		Kind:          KindWatch,
		Body:          w.Body(),
		EstimatedCost: estimate(w.Name, w.Value),
	}
}
