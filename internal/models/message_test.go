package models

import (
	"fmt"
	"testing"
)

func TestConversation_AppendOrdering(t *testing.T) {
	var conv Conversation

	for i := 0; i < 10; i++ {
		conv = conv.Append(UserMessage(fmt.Sprintf("msg-%d", i)))
	}

	if len(conv) != 10 {
		t.Fatalf("expected 10 messages, got %d", len(conv))
	}

	for i, msg := range conv {
		want := fmt.Sprintf("msg-%d", i)
		if msg.Content != want {
			t.Errorf("message %d: Content = %s, want %s", i, msg.Content, want)
		}
	}
}

func TestConversation_AppendDoesNotMutateReceiver(t *testing.T) {
	s1 := Conversation{}.Append(UserMessage("hi"))
	s2 := s1.Append(AssistantMessage("hello"))

	if len(s1) != 1 {
		t.Fatalf("S1 length = %d after deriving S2, want 1", len(s1))
	}
	if s1[0].Content != "hi" {
		t.Errorf("S1 content = %s, want hi", s1[0].Content)
	}
	if len(s2) != 2 {
		t.Fatalf("S2 length = %d, want 2", len(s2))
	}

	// Further appends from S1 must not leak into S2.
	s3 := s1.Append(UserMessage("again"))
	if s2[1].Role != RoleAssistant || s2[1].Content != "hello" {
		t.Errorf("S2 changed after sibling append: %+v", s2[1])
	}
	if s3[1].Content != "again" {
		t.Errorf("S3 content = %s, want again", s3[1].Content)
	}
}

func TestConversation_Last(t *testing.T) {
	var conv Conversation

	if _, ok := conv.Last(); ok {
		t.Error("Last on empty conversation should return false")
	}

	conv = conv.Append(UserMessage("hi")).Append(AssistantMessage("hello"))
	last, ok := conv.Last()
	if !ok {
		t.Fatal("Last returned false for non-empty conversation")
	}
	if last.Role != RoleAssistant || last.Content != "hello" {
		t.Errorf("Last = %+v, want assistant/hello", last)
	}
}

func TestMessageConstructors(t *testing.T) {
	u := UserMessage("question")
	if u.Role != RoleUser || u.Content != "question" {
		t.Errorf("UserMessage = %+v", u)
	}

	a := AssistantMessage("answer")
	if a.Role != RoleAssistant || a.Content != "answer" {
		t.Errorf("AssistantMessage = %+v", a)
	}
}
