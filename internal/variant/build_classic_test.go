//go:build classic && !xmas

package variant

import "testing"

func TestClassicTagSelectsClassic(t *testing.T) {
	if got := Current(); got != Classic {
		t.Errorf("Current() = %q, want %q", got, Classic)
	}
}
