package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"compliancebot-be/pkg/llm"
)

func TestChatStreamAccumulatesDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q, want /v1/chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		frames := []string{"Bună", " ziua", "!"}
		for _, content := range frames {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", content)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	p := NewGatewayProvider(srv.URL, "test-key", "test-model")

	var deltas []string
	reply, err := p.ChatStream(context.Background(), []llm.Message{{Role: "user", Content: "salut"}}, func(d string) {
		deltas = append(deltas, d)
	})
	if err != nil {
		t.Fatalf("ChatStream: %v", err)
	}
	if reply != "Bună ziua!" {
		t.Errorf("reply = %q, want %q", reply, "Bună ziua!")
	}
	if len(deltas) != 3 {
		t.Errorf("deltas = %d, want 3", len(deltas))
	}
}

func TestChatStreamFrameSplitAcrossChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		// One frame flushed in two pieces.
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"con")
		flusher.Flush()
		fmt.Fprint(w, "tent\":\"întreg\"}}]}\n\ndata: [DONE]\n\n")
	}))
	defer srv.Close()

	p := NewGatewayProvider(srv.URL, "", "test-model")

	reply, err := p.ChatStream(context.Background(), []llm.Message{{Role: "user", Content: "x"}}, nil)
	if err != nil {
		t.Fatalf("ChatStream: %v", err)
	}
	if reply != "întreg" {
		t.Errorf("reply = %q, want %q", reply, "întreg")
	}
}

func TestChatStreamStatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: llm.ErrRateLimited},
		{name: "quota exceeded", status: http.StatusPaymentRequired, wantErr: llm.ErrQuotaExceeded},
		{name: "upstream failure", status: http.StatusInternalServerError, wantErr: llm.ErrGateway},
		{name: "bad request", status: http.StatusBadRequest, wantErr: llm.ErrGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer srv.Close()

			p := NewGatewayProvider(srv.URL, "", "test-model")

			_, err := p.ChatStream(context.Background(), []llm.Message{{Role: "user", Content: "x"}}, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChatNonStreaming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"răspuns complet"}}]}`)
	}))
	defer srv.Close()

	p := NewGatewayProvider(srv.URL, "", "test-model")

	reply, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "x"}})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "răspuns complet" {
		t.Errorf("reply = %q", reply)
	}
}

func TestChatModelRoleMappedToAssistant(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer srv.Close()

	p := NewGatewayProvider(srv.URL, "", "test-model")

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "model", Content: "istoric"}})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if want := `"role":"assistant"`; !strings.Contains(gotBody, want) {
		t.Errorf("request body %q missing %q", gotBody, want)
	}
}

func TestChatStreamCanceledMidStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"par\"}}]}\n\n")
		flusher.Flush()
		// Hold the stream open until the client hangs up.
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p := NewGatewayProvider(srv.URL, "test-key", "test-model")

	reply, err := p.ChatStream(ctx, []llm.Message{{Role: "user", Content: "salut"}}, func(d string) {
		cancel()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if errors.Is(err, llm.ErrGateway) {
		t.Error("cancellation must not be classified as a gateway fault")
	}
	if reply != "par" {
		t.Errorf("partial reply = %q, want %q", reply, "par")
	}
}
