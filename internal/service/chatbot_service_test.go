package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"compliancebot-be/internal/constant"
	"compliancebot-be/internal/entity"
)

func TestSessionTitleFrom(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "short message used as is",
			message: "Ce este GDPR?",
			want:    "Ce este GDPR?",
		},
		{
			name:    "whitespace collapsed",
			message: "  Ce   este \n GDPR?  ",
			want:    "Ce este GDPR?",
		},
		{
			name:    "long message truncated with ellipsis",
			message: strings.Repeat("a", 100),
			want:    strings.Repeat("a", 60) + "...",
		},
		{
			// Byte 60 lands inside the two-byte "ă", the cut moves back.
			name:    "truncation never splits a diacritic",
			message: strings.Repeat("a", 59) + "ăă",
			want:    strings.Repeat("a", 59) + "...",
		},
		{
			name:    "blank message falls back to default",
			message: "   ",
			want:    constant.ChatDefaultSessionTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sessionTitleFrom(tt.message)
			if got != tt.want {
				t.Errorf("sessionTitleFrom(%q) = %q, want %q", tt.message, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("sessionTitleFrom(%q) produced invalid UTF-8", tt.message)
			}
		})
	}
}

func TestBuildHistoryWindow(t *testing.T) {
	s := &chatbotService{historyWindow: 3}

	var history []*entity.ChatMessage
	for i := 0; i < 10; i++ {
		role := constant.ChatMessageRoleUser
		if i%2 == 1 {
			role = constant.ChatMessageRoleAssistant
		}
		history = append(history, &entity.ChatMessage{Role: role, Content: strings.Repeat("m", i+1)})
	}

	msgs := s.buildHistory(history, "întrebare nouă")

	// System prompt, three windowed messages, new user message.
	if len(msgs) != 5 {
		t.Fatalf("len = %d, want 5", len(msgs))
	}
	if msgs[0].Role != constant.ChatMessageRoleSystem {
		t.Errorf("first role = %q, want system", msgs[0].Role)
	}
	if msgs[0].Content != constant.ComplianceSystemPrompt {
		t.Error("system prompt not first")
	}
	if msgs[1].Content != history[7].Content {
		t.Errorf("window start = %q, want the 8th message", msgs[1].Content)
	}
	last := msgs[len(msgs)-1]
	if last.Role != constant.ChatMessageRoleUser || last.Content != "întrebare nouă" {
		t.Errorf("last message = %+v, want the new user message", last)
	}
}

func TestBuildHistoryShorterThanWindow(t *testing.T) {
	s := &chatbotService{historyWindow: 20}

	history := []*entity.ChatMessage{
		{Role: constant.ChatMessageRoleUser, Content: "salut"},
	}
	msgs := s.buildHistory(history, "a doua întrebare")

	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if msgs[1].Content != "salut" {
		t.Errorf("history message = %q", msgs[1].Content)
	}
}
