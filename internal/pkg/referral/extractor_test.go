package referral

import "testing"

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "prefixed code", in: "REF-ABC123", want: "ABC123"},
		{name: "lower case prefix", in: "ref-abc123", want: "ABC123"},
		{name: "prefix inside free text", in: "came via REF-JOHND thanks", want: "JOHND"},
		{name: "prefix inside query string", in: "https://shop.example.com/?via=REF-JOHND", want: "JOHND"},
		{name: "url is not attribution", in: "https://example.com/x", want: ""},
		{name: "path is not attribution", in: "example.com/landing", want: ""},
		{name: "www domain is not attribution", in: "www.example.com", want: ""},
		{name: "empty input", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
		{name: "bare prefix without code", in: "REF-", want: "REF-"},
		{name: "free text falls back verbatim", in: "johnd", want: "JOHND"},
		{name: "free text is trimmed", in: "  johnd  ", want: "JOHND"},
	}

	for _, tt := range tests {
		if got := ExtractCode(tt.in); got != tt.want {
			t.Fatalf("%s: ExtractCode(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestExtractCodeWithCustomPrefix(t *testing.T) {
	if got := ExtractCodeWithPrefix("AFF-XYZ", "AFF"); got != "XYZ" {
		t.Fatalf("ExtractCodeWithPrefix = %q, want XYZ", got)
	}
	// Default prefix no longer matches, falls back to verbatim.
	if got := ExtractCodeWithPrefix("REF-XYZ", "AFF"); got != "REF-XYZ" {
		t.Fatalf("ExtractCodeWithPrefix = %q, want REF-XYZ", got)
	}
}
