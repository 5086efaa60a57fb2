package place

import (
	"testing"
)

func TestBuildWorkbookValues(t *testing.T) {
	t.Parallel()
	rows := [][]string{
		{"Name", "Value"},
		{"**alpha**", "[site](https://example.com)"},
		{"`code`", "plain"},
	}
	f, warnings, err := BuildWorkbook(rows, WorkbookOptions{KeepFormat: true, InlineCodeFill: "EFEFEF"})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	defer f.Close()

	checks := map[string]string{
		"A1": "Name",
		"B1": "Value",
		"A2": "alpha",
		"B2": "site",
		"A3": "code",
		"B3": "plain",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue(workbookSheet, cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%s = %q, want %q", cell, got, want)
		}
	}

	links, target, err := f.GetCellHyperLink(workbookSheet, "B2")
	if err != nil {
		t.Fatal(err)
	}
	if !links || target != "https://example.com" {
		t.Fatalf("hyperlink = %v %q", links, target)
	}
}

func TestBuildWorkbookPlainMode(t *testing.T) {
	t.Parallel()
	f, _, err := BuildWorkbook([][]string{{"h"}, {"**x**"}}, WorkbookOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := f.GetCellValue(workbookSheet, "A2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Fatalf("A2 = %q, want markers stripped", got)
	}
}

func TestBuildWorkbookSerializes(t *testing.T) {
	t.Parallel()
	f, _, err := BuildWorkbook([][]string{{"a", "b"}, {"1", "2"}}, WorkbookOptions{KeepFormat: true})
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty workbook output")
	}
}
