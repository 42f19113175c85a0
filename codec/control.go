package codec

import "bytes"

// ControlCommand carries an out-of-band instruction to the viewer console
// (e.g. clear screen, close room) rather than a record to display.
type ControlCommand struct {
	CommandType uint32
	Data        []byte
}

// Body returns the wire body: u32 control_command_type | u32 data_len |
// [bytes data]. Data is opaque and always emitted verbatim.
func (c ControlCommand) Body() []byte {
	var buf bytes.Buffer

	putUint32(&buf, c.CommandType)
	putBytes(&buf, c.Data)

	return buf.Bytes()
}

// Record builds the full Record for this ControlCommand.
func (c ControlCommand) Record() Record {
	return Record{
		Kind:          KindControlCommand,
		Body:          c.Body(),
		EstimatedCost: estimateBytes(baseEstimatedCost, c.Data),
	}
}
