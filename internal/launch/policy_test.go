package launch

import (
	"testing"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    FailurePolicy
		wantErr bool
	}{
		{"", PolicyReport, false},
		{"report", PolicyReport, false},
		{"silent", PolicySilent, false},
		{" Silent ", PolicySilent, false},
		{"REPORT", PolicyReport, false},
		{"loud", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewUnknownPolicyFallsBack(t *testing.T) {
	l := New(&fakeSystem{}, "bogus")
	if l.Policy() != DefaultPolicy {
		t.Errorf("Policy() = %q, want %q", l.Policy(), DefaultPolicy)
	}
}
