package pg

import "testing"

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "целое", raw: "5", want: 5},
		{name: "отрицательное", raw: "-1", want: -1},
		{name: "дробное", raw: "3.14", want: 3.14},
		{name: "много знаков", raw: "0.1000000000000000055511151231257827", want: 0.1},
		{name: "экспонента", raw: "1e10", want: 1e10},
		{name: "ноль", raw: "0", want: 0},
		{name: "не число", raw: "abc", wantErr: true},
		{name: "пусто", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNumeric([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseNumeric(%q): ожидалась ошибка, получили %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseNumeric(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseNumeric(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
