package license

import "testing"

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  ABC-123  ", "ABC-123"},
		{"<script>alert(1)</script>KEY", "alert(1)KEY"},
		{"KEY\x00\x1b[31m", "KEY[31m"},
		{"line\nbreak", "linebreak"},
		{"<b>bold</b>", "bold"},
		{"", ""},
	}

	for _, c := range cases {
		if got := SanitizeText(c.in); got != c.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" a@x.com ", "a@x.com"},
		{"a+tag@x.com", "a+tag@x.com"},
		{"a@x.com<script>", "a@x.comscript"},
		{"weird\"quote@x.com", "weirdquote@x.com"},
		{"", ""},
	}

	for _, c := range cases {
		if got := SanitizeEmail(c.in); got != c.want {
			t.Errorf("SanitizeEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
