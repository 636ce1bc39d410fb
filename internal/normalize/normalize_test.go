package normalize

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		substr string
		want   bool
	}{
		{name: "exact", s: "Valorant", substr: "Valorant", want: true},
		{name: "caseless", s: "Valorant", substr: "valorant", want: true},
		{name: "substring", s: "Counter-Strike 2", substr: "strike", want: true},
		{name: "no match", s: "Fortnite", substr: "dota", want: false},
		{name: "empty substr", s: "anything", substr: "", want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Contains(tt.s, tt.substr); got != tt.want {
				t.Errorf("Contains(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
			}
		})
	}
}
