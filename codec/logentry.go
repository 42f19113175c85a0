package codec

import (
	"bytes"
	"time"

	loglvl "github.com/sabouaram/siclient/logger/level"
)

// LogEntry is a single structured log line delivered to the viewer.
//
// Data carries the raw log payload. When IsText is true it is treated as a
// textual dump (serialized with the UTF-8 BOM); otherwise it is emitted
// verbatim as opaque binary, matching callers that inline e.g. a captured
// stack dump or attachment.
type LogEntry struct {
	EntryType uint32
	ViewerID  uint32
	App       string
	Session   string
	Title     string
	Host      string
	Data      []byte
	IsText    bool
	PID       uint32
	TID       uint32
	Timestamp time.Time
	Color     uint32
	Level     loglvl.Level
}

// Body returns the wire body:
//
//	u32 log_entry_type | u32 viewer_id | u32 app_len | u32 session_len |
//	u32 title_len | u32 host_len | u32 data_len | u32 pid | u32 tid |
//	f64 timestamp | u32 color_argb |
//	[bytes app] [bytes session] [bytes title] [bytes host] [bytes data]
func (e LogEntry) Body() []byte {
	var (
		buf  bytes.Buffer
		data = e.encodedData()
	)

	putUint32(&buf, e.EntryType)
	putUint32(&buf, e.ViewerID)
	putUint32(&buf, uint32(len(e.App)))
	putUint32(&buf, uint32(len(e.Session)))
	putUint32(&buf, uint32(len(e.Title)))
	putUint32(&buf, uint32(len(e.Host)))
	putUint32(&buf, uint32(len(data)))
	putUint32(&buf, e.PID)
	putUint32(&buf, e.TID)
	putFloat64(&buf, timestampOf(e.Timestamp))
	putUint32(&buf, e.Color)

	buf.WriteString(e.App)
	buf.WriteString(e.Session)
	buf.WriteString(e.Title)
	buf.WriteString(e.Host)
	buf.Write(data)

	return buf.Bytes()
}

func (e LogEntry) encodedData() []byte {
	if !e.IsText || len(e.Data) == 0 {
		return e.Data
	}

	return append(append([]byte{}, utf8BOM...), e.Data...)
}

// Record builds the full Record for this LogEntry.
func (e LogEntry) Record() Record {
	return Record{
		Kind:          KindLogEntry,
		Body:          e.Body(),
		EstimatedCost: estimateBytes(estimate(e.App, e.Session, e.Title, e.Host), e.Data),
		Level:         e.Level,
	}
}
