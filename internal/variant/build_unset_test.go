//go:build !classic && !xmas

package variant

import "testing"

func TestNoTagSelectsUnset(t *testing.T) {
	if got := Current(); got != Unset {
		t.Errorf("Current() = %q, want %q", got, Unset)
	}
}
