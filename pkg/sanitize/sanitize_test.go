package sanitize_test

import (
	"testing"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/sanitize"
)

func TestText(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                                   "",
		"  Paiporta  ":                       "Paiporta",
		"Use CV-500 & avoid water":           "Use CV-500 & avoid water",
		"<b>Zona</b> Cero":                   "Zona Cero",
		"Hello<script>alert('x')</script>":   "Hello",
		`<img src=x onerror="alert(1)">Road`: "Road",
	}

	for in, want := range cases {
		if got := sanitize.Text(in); got != want {
			t.Fatalf("Text(%q): expected %q got %q", in, want, got)
		}
	}
}

func TestLabels_NeverNil(t *testing.T) {
	t.Parallel()

	got := sanitize.Labels(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	got = sanitize.Labels([]string{" Drinking water ", "", "<i></i>", "Drinking water"})
	if len(got) != 2 || got[0] != "Drinking water" || got[1] != "Drinking water" {
		t.Fatalf("unexpected labels: %#v", got)
	}
}
