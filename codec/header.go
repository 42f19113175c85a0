package codec

import (
	"bytes"
	"sort"
)

// Header announces a connection to the viewer console. Content is a
// sequence of "key=value\r\n" pairs; HostName, AppName and Room are always
// emitted, Room defaulting to "default" when empty. Extra carries any
// additional key/value pairs the caller wants advertised.
type Header struct {
	HostName string
	AppName  string
	Room     string
	Extra    map[string]string
}

func (h Header) content() string {
	room := h.Room
	if room == "" {
		room = "default"
	}

	var buf bytes.Buffer
	buf.WriteString("hostname=" + h.HostName + "\r\n")
	buf.WriteString("appname=" + h.AppName + "\r\n")
	buf.WriteString("room=" + room + "\r\n")

	if len(h.Extra) > 0 {
		keys := make([]string, 0, len(h.Extra))
		for k := range h.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			buf.WriteString(k + "=" + h.Extra[k] + "\r\n")
		}
	}

	return buf.String()
}

// Body returns the wire body: u32 content_len | bytes content.
func (h Header) Body() []byte {
	var buf bytes.Buffer
	putText(&buf, h.content())
	return buf.Bytes()
}

// Record builds the full Record for this Header.
func (h Header) Record() Record {
	body := h.Body()

	return Record{
		Kind:          KindHeader,
		Body:          body,
		EstimatedCost: estimate(h.content()),
	}
}
