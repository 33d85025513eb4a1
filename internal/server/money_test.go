package server

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain amount", input: "12.34", want: 12.34},
		{name: "integer amount", input: "20", want: 20},
		{name: "one decimal place", input: "0.5", want: 0.5},
		{name: "trailing zeros beyond cents are fine", input: "1.500", want: 1.5},
		{name: "sub-cent precision rejected", input: "1.005", wantErr: true},
		{name: "zero rejected", input: "0.00", wantErr: true},
		{name: "negative rejected", input: "-3.50", wantErr: true},
		{name: "not a number", input: "ten", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
