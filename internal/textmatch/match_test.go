package textmatch

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{
			name:  "exact match",
			query: "Buy milk",
			text:  "Buy milk",
			want:  true,
		},
		{
			name:  "exact match different case",
			query: "buy MILK",
			text:  "Buy milk",
			want:  true,
		},
		{
			name:  "whole token match",
			query: "milk",
			text:  "Buy milk today",
			want:  true,
		},
		{
			name:  "substring of a token does not match",
			query: "mil",
			text:  "Buy milk today",
			want:  false,
		},
		{
			name:  "no match",
			query: "eggs",
			text:  "Buy milk",
			want:  false,
		},
		{
			name:  "empty query never matches",
			query: "",
			text:  "Buy milk",
			want:  false,
		},
		{
			name:  "query with surrounding spaces",
			query: "  milk  ",
			text:  "Buy milk",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.query)
			if got := m.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
			}
		})
	}
}
