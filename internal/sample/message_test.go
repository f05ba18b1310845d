package sample

import "testing"

func TestMessage(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantTheme string
		wantMatch bool
	}{
		{
			name:      "halloween banner",
			html:      `<h2 class="f4">Happy Halloween! 817 contributions</h2>`,
			wantTheme: "halloween",
			wantMatch: true,
		},
		{
			name:      "christmas greeting",
			html:      `<span>Season's Greetings from the team</span>`,
			wantTheme: "christmas",
			wantMatch: true,
		},
		{
			name:      "lunar new year beats generic new year",
			html:      `<p>Happy Lunar New Year!</p>`,
			wantTheme: "lunar_new_year",
			wantMatch: true,
		},
		{
			name:      "generic new year",
			html:      `<p>Happy New Year!</p>`,
			wantTheme: "new_year",
			wantMatch: true,
		},
		{
			name:      "pumpkin emoji",
			html:      `<span aria-hidden="true">🎃</span>`,
			wantTheme: "halloween",
			wantMatch: true,
		},
		{
			name:      "plain profile page",
			html:      `<h2>817 contributions in the last year</h2>`,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, ok := Message(tt.html)

			if ok != tt.wantMatch {
				t.Fatalf("Message match = %v, want %v", ok, tt.wantMatch)
			}

			if ok && theme != tt.wantTheme {
				t.Errorf("Message = %q, want %q", theme, tt.wantTheme)
			}
		})
	}
}
