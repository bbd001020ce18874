package calculator

import "testing"

func fptr(v float64) *float64 { return &v }

func TestCalcRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CalcRequest
		wantErr string
	}{
		{
			name: "сложение валидно",
			req:  CalcRequest{A: fptr(2), B: fptr(3), Op: "add"},
		},
		{
			name: "вычитание валидно",
			req:  CalcRequest{A: fptr(2), B: fptr(3), Op: "sub"},
		},
		{
			name: "ноль — тоже число",
			req:  CalcRequest{A: fptr(0), B: fptr(0), Op: "add"},
		},
		{
			name:    "нет a",
			req:     CalcRequest{B: fptr(3), Op: "add"},
			wantErr: "a and b must be numbers",
		},
		{
			name:    "нет b",
			req:     CalcRequest{A: fptr(2), Op: "add"},
			wantErr: "a and b must be numbers",
		},
		{
			name:    "нет обоих операндов",
			req:     CalcRequest{Op: "sub"},
			wantErr: "a and b must be numbers",
		},
		{
			name:    "неизвестная операция",
			req:     CalcRequest{A: fptr(1), B: fptr(1), Op: "mul"},
			wantErr: "op must be add or sub",
		},
		{
			name:    "пустая операция",
			req:     CalcRequest{A: fptr(1), B: fptr(1)},
			wantErr: "op must be add or sub",
		},
		{
			name:    "операнды проверяются раньше операции",
			req:     CalcRequest{Op: "mul"},
			wantErr: "a and b must be numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, ожидали nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, ожидали %q", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Validate() = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}
