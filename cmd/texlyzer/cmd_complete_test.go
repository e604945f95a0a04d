package main

import (
	"testing"

	"github.com/dhamidi/texlyzer/codebase"
)

func TestParsePosition(t *testing.T) {
	doc := codebase.NewDocument(codebase.PathToURI("/doc/main.tex"), codebase.LanguageTeX, "ab\n\\cite{x}", nil)
	tests := []struct {
		position string
		want     int
		wantErr  bool
	}{
		{"1:1", 0, false},
		{"2:7", 9, false},
		{"2:99", 11, false},
		{"0:1", 0, true},
		{"2", 0, true},
		{"a:b", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePosition(doc, tt.position)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePosition(%q) error = %v, wantErr %v", tt.position, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePosition(%q) = %d, want %d", tt.position, got, tt.want)
		}
	}
}
