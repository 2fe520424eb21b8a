package ads

import (
	"testing"
)

func TestParseAccount(t *testing.T) {
	tests := []struct {
		adName   string
		expected string
	}{
		{"3-ch83080_example.com_bm_news", "3"},
		{"  3-ch83080_example.com_bm_news", "3"},
		{"1-ch91210_example.org_tb_sport_0517", "1"},
		{"ch83080_example.com_bm_news", ""},
		{"33-ch83080_example.com_bm_news", ""},
		{"", ""},
	}

	for _, test := range tests {
		if v := ParseAccount(test.adName); v != test.expected {
			t.Errorf("Incorrect account for '%s' - expected:'%v', got:'%v'", test.adName, test.expected, v)
		}
	}
}

func TestParseChannelID(t *testing.T) {
	tests := []struct {
		adName   string
		expected string
	}{
		{"3-ch83080_example.com_bm_news", "ch83080"},
		{"1-ch91210_example.org_tb_sport_0517", "ch91210"},
		{"example.com_bm_news", ""},
		{"", ""},
	}

	for _, test := range tests {
		if v := ParseChannelID(test.adName); v != test.expected {
			t.Errorf("Incorrect channel ID for '%s' - expected:'%v', got:'%v'", test.adName, test.expected, v)
		}
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		adName   string
		expected string
	}{
		{"3-ch83080_example.com_bm_news", "example.com"},
		{"3-ch83080", "UNKNOWN"},
		{"not an ad name", "UNKNOWN"},
		{"", "UNKNOWN"},
	}

	for _, test := range tests {
		if v := ParseDomain(test.adName); v != test.expected {
			t.Errorf("Incorrect domain for '%s' - expected:'%v', got:'%v'", test.adName, test.expected, v)
		}
	}
}

func TestParseBuyingMethod(t *testing.T) {
	tests := []struct {
		adName   string
		expected string
	}{
		{"3-ch83080_example.com_bm_news", "bm"},
		{"3-ch83080_example.com", "UNKNOWN"},
		{"", "UNKNOWN"},
	}

	for _, test := range tests {
		if v := ParseBuyingMethod(test.adName); v != test.expected {
			t.Errorf("Incorrect buying method for '%s' - expected:'%v', got:'%v'", test.adName, test.expected, v)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		adName   string
		expected string
	}{
		{"3-ch83080_example.com_bm_news", "news"},
		{"3-ch83080_example.com_bm_news_0517", "news"},
		{"3-ch83080_example.com_bm", "UNKNOWN"},
		{"", "UNKNOWN"},
	}

	for _, test := range tests {
		if v := ParseCategory(test.adName); v != test.expected {
			t.Errorf("Incorrect category for '%s' - expected:'%v', got:'%v'", test.adName, test.expected, v)
		}
	}
}
