package calculator

import "testing"

func TestEventKey(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want string
	}{
		{name: "единица", id: 1, want: "op-1"},
		{name: "ноль", id: 0, want: "op-0"},
		{name: "большой id", id: 9000000001, want: "op-9000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eventKey(tt.id)
			if got != tt.want {
				t.Errorf("eventKey(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
