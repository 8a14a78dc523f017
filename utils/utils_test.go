package utils

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{3500 * time.Millisecond, "3.50s"},
		{90 * time.Second, "1m 30.00s"},
		{2*time.Hour + 5*time.Minute, "2h 5m 0.00s"},
	}

	for _, test := range tests {
		if got := FormatTime(test.duration); got != test.expected {
			t.Errorf("Formatted duration of %v expected to be %q. Got %q", test.duration, test.expected, got)
		}
	}
}

func TestDecorateText(t *testing.T) {
	NoColor = false
	defer func() { NoColor = false }()

	decorated := DecorateText("warning", ErrorMessage)
	if !strings.HasPrefix(decorated, ErrorColor) || !strings.HasSuffix(decorated, DefaultColor) {
		t.Errorf("Decorated text expected to be wrapped in color codes. Got %q", decorated)
	}

	NoColor = true
	if got := DecorateText("warning", ErrorMessage); got != "warning" {
		t.Errorf("Decoration expected to be disabled with NoColor. Got %q", got)
	}
}
