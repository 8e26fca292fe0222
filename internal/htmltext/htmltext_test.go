package htmltext

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			"Plain markup",
			"<h1>Hello World</h1><p>sample</p>",
			"Hello World sample",
		},
		{
			"Script and style are dropped",
			"<p>visible</p><script>alert(1)</script><style>p{color:red}</style>",
			"visible",
		},
		{
			"Head metadata is dropped",
			"<html><head><title>Title</title><meta charset=\"utf-8\"></head><body><p>body text</p></body></html>",
			"body text",
		},
		{
			"Hidden elements are dropped",
			"<p>shown</p><div style=\"display: none\">hidden</div><span style=\"visibility:hidden\">also hidden</span>",
			"shown",
		},
		{
			"Adjacent elements do not merge",
			"<div><span>first</span><span>second</span></div><p>third</p>",
			"first second third",
		},
		{
			"Whitespace is collapsed",
			"<p>  a\n\tb  </p><p>c</p>",
			"a b c",
		},
		{
			"Empty markup",
			"",
			"",
		},
		{
			"Markup without visible text",
			"<script>only code</script>",
			"",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Extract(test.markup)
			if err != nil {
				t.Fatalf("Extract() error: %v", err)
			}

			if got != test.want {
				t.Errorf("Extract() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestIsHiddenStyle(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  bool
	}{
		{"Display none", "display:none", true},
		{"Display none with spaces", "color: red; display : none", true},
		{"Visibility hidden", "visibility: hidden", true},
		{"Visible", "color: red", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := isHiddenStyle(test.style); got != test.want {
				t.Errorf("isHiddenStyle(%q) = %v, want %v", test.style, got, test.want)
			}
		})
	}
}
