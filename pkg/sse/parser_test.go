package sse

import (
	"reflect"
	"testing"
)

func TestParserFeed(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []string
	}{
		{
			name:   "single complete frame",
			chunks: []string{"data: {\"a\":1}\n"},
			want:   []string{`{"a":1}`},
		},
		{
			name:   "two frames in one chunk",
			chunks: []string{"data: {\"a\":1}\n\ndata: {\"b\":2}\n\n"},
			want:   []string{`{"a":1}`, `{"b":2}`},
		},
		{
			name:   "frame split across chunks",
			chunks: []string{"data: {\"con", "tent\":\"ab\"}\n"},
			want:   []string{`{"content":"ab"}`},
		},
		{
			name:   "split inside the data prefix",
			chunks: []string{"da", "ta: {\"a\":1}\n"},
			want:   []string{`{"a":1}`},
		},
		{
			name:   "json split after the newline arrives later",
			chunks: []string{"data: {\"a\":\n", " 1}\n"},
			want:   nil,
		},
		{
			name:   "comments and blank lines are skipped",
			chunks: []string{": keep-alive\n\ndata: {\"a\":1}\n\n: ping\n"},
			want:   []string{`{"a":1}`},
		},
		{
			name:   "crlf line endings",
			chunks: []string{"data: {\"a\":1}\r\n\r\n"},
			want:   []string{`{"a":1}`},
		},
		{
			name:   "non-data lines ignored",
			chunks: []string{"event: message\ndata: {\"a\":1}\n"},
			want:   []string{`{"a":1}`},
		},
		{
			name:   "frames after done are dropped",
			chunks: []string{"data: {\"a\":1}\ndata: [DONE]\ndata: {\"b\":2}\n"},
			want:   []string{`{"a":1}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			var got []string
			for _, chunk := range tt.chunks {
				got = append(got, p.Feed([]byte(chunk))...)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("payloads = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParserSplitFrameReassembledOnce(t *testing.T) {
	p := NewParser()

	if got := p.Feed([]byte("data: {\"content\":\"par")); got != nil {
		t.Fatalf("incomplete frame emitted early: %#v", got)
	}
	got := p.Feed([]byte("tial\"}\ndata: {\"x\":2}\n"))
	want := []string{`{"content":"partial"}`, `{"x":2}`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("payloads = %#v, want %#v", got, want)
	}
}

func TestParserDoneSentinel(t *testing.T) {
	p := NewParser()

	p.Feed([]byte("data: {\"a\":1}\n"))
	if p.Done() {
		t.Fatal("Done() = true before sentinel")
	}

	p.Feed([]byte("data: [DONE]\n"))
	if !p.Done() {
		t.Fatal("Done() = false after sentinel")
	}

	// Drained but ignored.
	if got := p.Feed([]byte("data: {\"late\":true}\n")); got != nil {
		t.Errorf("payloads after sentinel = %#v, want none", got)
	}
}

func TestParserClose(t *testing.T) {
	t.Run("flushes unterminated trailing frame", func(t *testing.T) {
		p := NewParser()
		p.Feed([]byte("data: {\"a\":1}"))
		got := p.Close()
		want := []string{`{"a":1}`}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Close() = %#v, want %#v", got, want)
		}
	})

	t.Run("drops trailing garbage", func(t *testing.T) {
		p := NewParser()
		p.Feed([]byte("data: {\"trunca"))
		if got := p.Close(); got != nil {
			t.Errorf("Close() = %#v, want none", got)
		}
	})

	t.Run("empty buffer", func(t *testing.T) {
		p := NewParser()
		if got := p.Close(); got != nil {
			t.Errorf("Close() = %#v, want none", got)
		}
	})
}
