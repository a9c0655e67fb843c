package cli

import "testing"

// TestResolveNoColor verifies color mode decision logic.
func TestResolveNoColor(t *testing.T) {
	cases := []struct {
		name        string
		mode        string
		isTTY       bool
		noColorEnv  string
		wantNoColor bool
		wantErr     bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, wantNoColor: false},
		{name: "auto default", mode: "", isTTY: true, wantNoColor: false},
		{name: "auto non-tty", mode: "auto", isTTY: false, wantNoColor: true},
		{name: "auto NO_COLOR", mode: "auto", isTTY: true, noColorEnv: "1", wantNoColor: true},
		{name: "always non-tty", mode: "always", isTTY: false, wantNoColor: false},
		{name: "never tty", mode: "NEVER", isTTY: true, wantNoColor: true},
		{name: "invalid", mode: "sometimes", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			withTerminal(t, tc.isTTY)
			t.Setenv("NO_COLOR", tc.noColorEnv)
			t.Setenv("TERM", "xterm-256color")
			got, err := resolveNoColor(tc.mode, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.wantNoColor {
				t.Fatalf("expected noColor=%v, got %v", tc.wantNoColor, got)
			}
		})
	}
}
