package types

import "testing"

func TestHash_String(t *testing.T) {
	tests := []struct {
		name string
		h    Hash
		want string
	}{
		{"zero", Hash{}, "0000000000000000000000000000000000000000000000000000000000000000"},
		{"ends", Hash{0: 0xab, 31: 0xcd}, "ab000000000000000000000000000000000000000000000000000000000000cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}
