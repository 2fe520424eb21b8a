package ads

import (
	"testing"
)

func TestCleanROAS(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{"120%", 1.2},
		{" 95 ", 0.95},
		{"95", 0.95},
		{"0", 0},
		{"", 0},
		{"n/a", 0},
	}

	for _, test := range tests {
		if v := CleanROAS(test.value); v != test.expected {
			t.Errorf("Incorrect ROAS for '%s' - expected:%v, got:%v", test.value, test.expected, v)
		}
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		roas     float64
		expected string
	}{
		{0.0, "#B31B1B"},
		{0.69, "#B31B1B"},
		{0.70, "#FDC1C5"},
		{0.94, "#FDC1C5"},
		{0.95, "#FBEEAC"},
		{1.09, "#FBEEAC"},
		{1.10, "#93C572"},
		{1.39, "#93C572"},
		{1.40, "#019529"},
		{2.50, "#019529"},
	}

	for _, test := range tests {
		if v := Band(test.roas); v != test.expected {
			t.Errorf("Incorrect band for %v - expected:%v, got:%v", test.roas, test.expected, v)
		}
	}
}

func TestFormatROAS(t *testing.T) {
	tests := []struct {
		roas     float64
		expected string
	}{
		{1.234, "123%"},
		{0.7, "70%"},
		{0, "0%"},
	}

	for _, test := range tests {
		if v := FormatROAS(test.roas); v != test.expected {
			t.Errorf("Incorrect format for %v - expected:%v, got:%v", test.roas, test.expected, v)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{"250.00", 250.0},
		{"$1,200.50", 1200.5},
		{" 96.5 ", 96.5},
		{"-12.5", -12.5},
		{"", 0},
		{"n/a", 0},
	}

	for _, test := range tests {
		if v := Number(test.value); v != test.expected {
			t.Errorf("Incorrect number for '%s' - expected:%v, got:%v", test.value, test.expected, v)
		}
	}
}
