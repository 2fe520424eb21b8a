package sheet

import (
	"bytes"
	"testing"

	api "github.com/uhppoted/uhppoted-lib/acl"
)

func TestToTSV(t *testing.T) {
	expected := "Date\tAd Name\tROAS\n" +
		"2023-05-01\t3-ch83080_example.com_bm_news\t120%\n" +
		"2023-05-01\t1-ch91210_example.org_bm_sport\t85%\n"

	table := api.Table{
		Header: []string{"Date", "Ad Name", "ROAS"},
		Records: [][]string{
			{"2023-05-01", "3-ch83080_example.com_bm_news", "120%"},
			{"2023-05-01", "1-ch91210_example.org_bm_sport", "85%"},
		},
	}

	var b bytes.Buffer

	if err := ToTSV(&b, &table); err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %v\n   got:      %v\n", expected, b.String())
	}
}

func TestToTSVWithEmptyTable(t *testing.T) {
	table := api.Table{
		Header:  []string{"Date", "Ad Name"},
		Records: [][]string{},
	}

	var b bytes.Buffer

	if err := ToTSV(&b, &table); err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	if b.String() != "Date\tAd Name\n" {
		t.Errorf("Incorrect TSV for empty table, got: %v", b.String())
	}
}
