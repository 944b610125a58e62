package search

import "testing"

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		terms []string
		want  string
	}{
		{
			name:  "Case insensitive whole word",
			text:  "Coding and more coding, not encoding",
			terms: []string{"coding"},
			want:  "<mark>Coding</mark> and more <mark>coding</mark>, not encoding",
		},
		{
			name:  "Overlapping terms merge",
			text:  "Deep work and deep focus",
			terms: []string{"deep work", "deep", "focus"},
			want:  "<mark>Deep work</mark> and <mark>deep</mark> <mark>focus</mark>",
		},
		{
			name:  "Doubled markers collapse",
			text:  "<mark><mark>x</mark></mark> y",
			terms: []string{"x"},
			want:  "<mark>x</mark> y",
		},
		{
			name:  "Markup in text is escaped",
			text:  "<script>alert(1)</script> coding & more",
			terms: []string{"coding"},
			want:  "&lt;script&gt;alert(1)&lt;/script&gt; <mark>coding</mark> &amp; more",
		},
		{
			name:  "No terms",
			text:  "plain text",
			terms: nil,
			want:  "plain text",
		},
		{
			name:  "Regex metacharacters",
			text:  "learned c.net today",
			terms: []string{"c.net", "(", ""},
			want:  "learned <mark>c.net</mark> today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.text, tt.terms)
			if got != tt.want {
				t.Errorf("Highlight = %q, want %q", got, tt.want)
			}
			if again := Highlight(got, tt.terms); again != got {
				t.Errorf("Highlight not idempotent: %q -> %q", got, again)
			}
		})
	}
}
