package services

import (
	"strings"
	"testing"
)

func TestHTMLToText(t *testing.T) {
	in := `<p>Exclusive placement in <b>lobby</b>.</p><ul><li>Free branding</li><li>24/7 support</li></ul>`
	got := HTMLToText(in)

	if strings.Contains(got, "<") {
		t.Errorf("tags should be stripped: %q", got)
	}
	for _, want := range []string{"Exclusive placement in lobby.", "- Free branding", "- 24/7 support"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%q", want, got)
		}
	}
}

func TestHTMLToTextPlain(t *testing.T) {
	got := HTMLToText("just a plain note")
	if got != "just a plain note" {
		t.Errorf("plain text should pass through, got %q", got)
	}
}
