package ui

import "testing"

func TestPageFromName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Page
	}{
		{"overview", "overview", PageOverview},
		{"sensors", "sensors", PageSensors},
		{"trends", "trends", PageTrends},
		{"log", "log", PageLog},
		{"case insensitive", "Trends", PageTrends},
		{"unknown falls back", "bogus", PageOverview},
		{"empty falls back", "", PageOverview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageFromName(tt.in); got != tt.want {
				t.Errorf("pageFromName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPageConfigNameRoundTrip(t *testing.T) {
	for p := PageOverview; p < pageCount; p++ {
		if got := pageFromName(pageConfigName(p)); got != p {
			t.Errorf("page %d round-tripped to %d", p, got)
		}
	}
}
