package prompt

import (
	"strings"
	"testing"
)

func TestUserMessage(t *testing.T) {
	got := UserMessage("uh hey call me back")
	want := "<transcription>\nuh hey call me back\n</transcription>!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestUserMessage_Verbatim(t *testing.T) {
	raw := "  <b>keep</b> {{.Language}} %s \n"
	got := UserMessage(raw)
	if !strings.Contains(got, raw) {
		t.Errorf("expected transcription embedded verbatim, got %q", got)
	}
}

func TestSystemMessage_ContainsLanguage(t *testing.T) {
	msg, err := SystemMessage("English")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg, "POLISHED TEXT MUST BE IN THE FOLLOWING LANGUAGE: English\n") {
		t.Error("expected language substituted into the output format section")
	}
	if strings.Contains(msg, "{{") {
		t.Error("expected no unrendered template actions")
	}
}

func TestSystemMessage_LanguageNotEscaped(t *testing.T) {
	msg, err := SystemMessage(`Brazilian Portuguese <informal> & "friendly"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg, `Brazilian Portuguese <informal> & "friendly"`) {
		t.Error("expected language inserted without escaping")
	}
}

func TestSystemMessage_Instructions(t *testing.T) {
	msg, err := SystemMessage("German")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, part := range []string{
		"YOU ARE A HIGHLY ACCURATE AND EFFICIENT SYSTEM",
		"WRAPPED IN `<polished-text></polished-text>` TAGS",
		"###CHAIN OF THOUGHT###",
		"<polished-text>\n    Hey, can you call me back?",
	} {
		if !strings.Contains(msg, part) {
			t.Errorf("expected system message to contain %q", part)
		}
	}
}

func TestBuild(t *testing.T) {
	ex, err := Build("uh hey call me back", "English", "mistral-nemo:latest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ex.System, "English") {
		t.Error("expected system message to contain the language")
	}
	if ex.User != "<transcription>\nuh hey call me back\n</transcription>!" {
		t.Errorf("unexpected user message %q", ex.User)
	}
	if ex.Model != "mistral-nemo:latest" {
		t.Errorf("expected model 'mistral-nemo:latest', got %q", ex.Model)
	}
}
