package codec

import (
	"bytes"
	"time"
)

// ProcessFlow marks a step (enter/leave/checkpoint) in a traced call flow.
type ProcessFlow struct {
	FlowType  uint32
	Title     string
	Host      string
	PID       uint32
	TID       uint32
	Timestamp time.Time
}

// Body returns the wire body:
//
//	u32 process_flow_type | u32 title_len | u32 host_len | u32 pid |
//	u32 tid | f64 timestamp | [bytes title] [bytes host]
func (p ProcessFlow) Body() []byte {
	var buf bytes.Buffer

	putUint32(&buf, p.FlowType)
	putUint32(&buf, uint32(len(p.Title)))
	putUint32(&buf, uint32(len(p.Host)))
	putUint32(&buf, p.PID)
	putUint32(&buf, p.TID)
	putFloat64(&buf, timestampOf(p.Timestamp))

	buf.WriteString(p.Title)
	buf.WriteString(p.Host)

	return buf.Bytes()
}

// Record builds the full Record for this ProcessFlow.
func (p ProcessFlow) Record() Record {
	return Record{
		Kind:          KindProcessFlow,
		Body:          p.Body(),
		EstimatedCost: estimate(p.Title, p.Host),
	}
}
