package ai

import (
	"testing"
)

func TestParseSummaryResponse(t *testing.T) {
	p := NewParser()

	summary, err := p.ParseSummaryResponse(`{"summary": "we agreed on the plan"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if summary != "we agreed on the plan" {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestParseSummaryResponse_MarkdownFences(t *testing.T) {
	p := NewParser()

	content := "```json\n{\"summary\": \"fenced summary\"}\n```"
	summary, err := p.ParseSummaryResponse(content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if summary != "fenced summary" {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestParseSummaryResponse_Invalid(t *testing.T) {
	p := NewParser()

	cases := []string{
		"",
		"not json at all",
		`{"summary": ""}`,
		`{"other": "field"}`,
	}
	for _, content := range cases {
		if _, err := p.ParseSummaryResponse(content); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}

func TestParseSuggestionsResponse(t *testing.T) {
	p := NewParser()

	content := `[{"item": "Send invoice", "assignee": "Maria Garcia", "deadline": "next Friday"}, {"item": "Book room", "assignee": "Alex Johnson"}]`
	suggestions, err := p.ParseSuggestionsResponse(content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Item != "Send invoice" || suggestions[0].Assignee != "Maria Garcia" || suggestions[0].Deadline != "next Friday" {
		t.Fatalf("unexpected suggestion %+v", suggestions[0])
	}
	if suggestions[1].Deadline != "" {
		t.Fatalf("expected empty deadline, got %q", suggestions[1].Deadline)
	}
}

func TestParseSuggestionsResponse_MissingItem(t *testing.T) {
	p := NewParser()

	content := `[{"item": "ok", "assignee": "A"}, {"assignee": "B"}]`
	if _, err := p.ParseSuggestionsResponse(content); err == nil {
		t.Fatal("expected error when a suggestion has no item")
	}
}

func TestParseSuggestionsResponse_NotAnArray(t *testing.T) {
	p := NewParser()

	if _, err := p.ParseSuggestionsResponse(`{"item": "ok"}`); err == nil {
		t.Fatal("expected error for non-array response")
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n[1, 2]\n```", `[1, 2]`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tc := range cases {
		if got := extractJSON(tc.in); got != tc.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
