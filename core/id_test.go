package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestDigest(t *testing.T) {
	a := Digest("alpha", "beta")
	if a != Digest("alpha", "beta") {
		t.Fatal("Digest() is not deterministic")
	}
	if a == Digest("beta", "alpha") {
		t.Error("Digest() ignored ordering")
	}
	if a == Digest("alphabeta") {
		t.Error("Digest() ignored text boundaries")
	}
}

func TestIDString(t *testing.T) {
	if got := ID(0xbeef).String(); got != "000000000000beef" {
		t.Errorf("String() = %q", got)
	}
}
