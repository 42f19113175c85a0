package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// utf8BOM prefixes every textual viewer-context payload on the wire, letting
// the viewer tell apart a textual blob from an opaque binary one without a
// side channel. Binary payloads (raw log/stream data) are emitted verbatim.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// epochDays1899ToUnix is the distance, in days, between the 1899-12-30
// spreadsheet epoch and the Unix epoch (1970-01-01): the last two days of
// 1899 plus 70 years including 17 leap days, i.e. 2 + 25567 = 25569 days. timestampOf reproduces this convention, the
// same one the remote viewer console expects its f64 timestamps in.
const epochDays1899ToUnix = 25569

const msPerDay = 86_400_000

// Timestamp converts t to the f64 day-count format the viewer console
// expects: days since 1899-12-30, with fractional days counting elapsed
// time within the day.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixMilli())/msPerDay + epochDays1899ToUnix
}

func timestampOf(t time.Time) float64 {
	return Timestamp(t)
}

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func putFloat64(buf *bytes.Buffer, v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	buf.Write(b[:])
}

// putBytes writes a declared-length-prefixed binary blob verbatim.
func putBytes(buf *bytes.Buffer, b []byte) {
	putUint32(buf, uint32(len(b)))
	buf.Write(b)
}

// putText writes a declared-length-prefixed textual blob, prefixing it with
// the UTF-8 BOM. An empty string is treated as absent: it is written as a
// declared length of 0, with no BOM.
func putText(buf *bytes.Buffer, s string) {
	if s == "" {
		putUint32(buf, 0)
		return
	}

	putUint32(buf, uint32(len(utf8BOM)+len(s)))
	buf.Write(utf8BOM)
	buf.WriteString(s)
}

// ColorARGB packs four 0-255 channel values into the little-endian u32 the
// wire format uses for LogEntry.Color.
func ColorARGB(r, g, b, a byte) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}
