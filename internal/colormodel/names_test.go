package colormodel

import "testing"

func TestLookupName(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   RGB
		wantOK bool
	}{
		{name: "exact", query: "aqua", want: RGB{0, 255, 255}, wantOK: true},
		{name: "case insensitive", query: "Red", want: RGB{255, 0, 0}, wantOK: true},
		{name: "transposed letters", query: "aqau", want: RGB{0, 255, 255}, wantOK: true},
		{name: "one letter off", query: "whit", want: RGB{255, 255, 255}, wantOK: true},
		{name: "too far off", query: "zzzzzz", wantOK: false},
		{name: "empty", query: "", wantOK: false},
		{name: "whitespace only", query: "   ", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupName(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("LookupName(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("LookupName(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestClosestName(t *testing.T) {
	if got := ClosestName(RGB{255, 0, 0}); got != "red" {
		t.Fatalf("ClosestName(red) = %q, want %q", got, "red")
	}
	if got := ClosestName(RGB{250, 5, 5}); got != "~red" {
		t.Fatalf("ClosestName(near red) = %q, want %q", got, "~red")
	}
}
