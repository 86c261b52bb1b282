// Package sse implements an incremental parser for server-sent-event streams
// as emitted by OpenAI-compatible chat gateways: newline-delimited
// "data: {json}" frames terminated by a "data: [DONE]" sentinel.
package sse

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// Parser reassembles raw byte chunks into complete data-frame payloads.
// Bytes go in via Feed, complete JSON payloads come out, in arrival order.
// The parser owns its own buffer, so frames (and multi-byte characters)
// split across chunk boundaries are handled transparently.
type Parser struct {
	buf  bytes.Buffer
	done bool
}

func NewParser() *Parser {
	return &Parser{}
}

// Feed appends a chunk to the internal buffer and returns every complete
// payload that can be extracted. A payload whose JSON is still incomplete
// (the frame was split across chunks) is kept buffered and retried on the
// next Feed. This is the expected path for split frames, not an error.
func (p *Parser) Feed(chunk []byte) []string {
	p.buf.Write(chunk)
	return p.drain(false)
}

// Close performs the final pass over any leftover buffered text after the
// underlying stream has ended. Payloads that are still not valid JSON at
// this point are dropped.
func (p *Parser) Close() []string {
	return p.drain(true)
}

// Done reports whether the [DONE] sentinel has been seen.
func (p *Parser) Done() bool {
	return p.done
}

func (p *Parser) drain(final bool) []string {
	var out []string
	for {
		data := p.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')

		var line string
		if idx == -1 {
			if !final || p.buf.Len() == 0 {
				break
			}
			// Stream closed with an unterminated trailing line.
			line = p.buf.String()
			p.buf.Reset()
		} else {
			line = string(data[:idx])
			p.buf.Next(idx + 1)
		}

		line = strings.TrimSuffix(line, "\r")

		// Blank lines and ":" comments are keep-alive noise.
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		payload := strings.TrimSpace(line[len(dataPrefix):])
		if payload == doneSentinel {
			p.done = true
			continue
		}
		if p.done {
			// Content after the sentinel is drained but ignored.
			continue
		}

		if !json.Valid([]byte(payload)) {
			if final {
				continue
			}
			// The chunk boundary split this frame. Put the line back in
			// front of the buffer and wait for more bytes.
			rest := make([]byte, p.buf.Len())
			copy(rest, p.buf.Bytes())
			p.buf.Reset()
			p.buf.WriteString(line)
			p.buf.WriteByte('\n')
			p.buf.Write(rest)
			break
		}

		out = append(out, payload)
	}
	return out
}
