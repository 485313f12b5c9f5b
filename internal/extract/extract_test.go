package extract

import (
	"errors"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		text string
		want string
	}{
		{
			name: "simple",
			tag:  "t",
			text: "<t>hello</t>",
			want: "hello",
		},
		{
			name: "surrounded by other text",
			tag:  "t",
			text: "before <t>inner text</t> after",
			want: "inner text",
		},
		{
			name: "whitespace preserved",
			tag:  "polished-text",
			text: "<polished-text>\nHello there!\n</polished-text>",
			want: "\nHello there!\n",
		},
		{
			name: "multiline content",
			tag:  "polished-text",
			text: "<polished-text>line one\nline two\r\nline three</polished-text>",
			want: "line one\nline two\r\nline three",
		},
		{
			name: "empty content",
			tag:  "t",
			text: "<t></t>",
			want: "",
		},
		{
			name: "first match wins",
			tag:  "t",
			text: "<t>first</t> and <t>second</t>",
			want: "first",
		},
		{
			name: "other tags ignored",
			tag:  "polished-text",
			text: "<understand>\ncasual\n</understand>\n<polished-text>\nHi!\n</polished-text>\n<additional-info>x</additional-info>",
			want: "\nHi!\n",
		},
		{
			name: "tag name with regex metacharacters",
			tag:  "a.b",
			text: "<axb>wrong</axb><a.b>right</a.b>",
			want: "right",
		},
		{
			name: "non-ASCII content",
			tag:  "polished-text",
			text: "<polished-text>Привіт, як справи?</polished-text>",
			want: "Привіт, як справи?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.tag, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	inputs := []string{
		"",
		"no tags at all",
		"<t>unterminated",
		"</t>closing first<t>",
		"<other>content</other>",
		"<T>case differs</T>",
	}

	for _, text := range inputs {
		_, err := Extract("t", text)
		if err == nil {
			t.Errorf("expected error for %q", text)
			continue
		}
		if !errors.Is(err, ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound for %q, got %v", text, err)
		}
		var tnf *TagNotFoundError
		if !errors.As(err, &tnf) {
			t.Fatalf("expected *TagNotFoundError, got %T", err)
		}
		if tnf.Tag != "t" {
			t.Errorf("expected tag 't', got %q", tnf.Tag)
		}
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "<t>one</t><t>two</t>"

	first, err := Extract("t", text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Extract("t", text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("expected identical results, got %q and %q", first, second)
	}
}

func TestTagNotFoundError_Message(t *testing.T) {
	err := &TagNotFoundError{Tag: "polished-text"}
	if err.Error() != "tag <polished-text> not found in model output" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
