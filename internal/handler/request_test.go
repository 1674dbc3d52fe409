package handler

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIntUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{`2`, 2, false},
		{`"2"`, 2, false},
		{`" 14 "`, 14, false},
		{`2.0`, 2, false},
		{`"3.0"`, 3, false},
		{`-1`, -1, false},
		{`1e3`, 1000, false},
		{`2.5`, 0, true},
		{`"art"`, 0, true},
		{`"NaN"`, 0, true},
		{`"Inf"`, 0, true},
		{`1e30`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got FlexibleInt
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if int(got) != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFlexibleIntNullKeepsValue(t *testing.T) {
	got := FlexibleInt(5)
	if err := json.Unmarshal([]byte(`null`), &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}
