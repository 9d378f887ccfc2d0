package selector_test

import (
	"testing"

	"gitlab.com/webpilot/selector"
)

func TestSplitCompound(t *testing.T) {
	parts := selector.SplitCompound("input, select, textarea")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts got %d", len(parts))
	}
	if parts[0] != "input" || parts[1] != "select" || parts[2] != "textarea" {
		t.Fatalf("bad parts: %v", parts)
	}
}

func TestSplitCompoundNested(t *testing.T) {
	tests := []struct {
		sel   string
		parts int
	}{
		{"input", 1},
		{"input[name='a,b']", 1},
		{":is(a, b)", 1},
		{"div > span", 1},
		{"a[title=\"x,y\"], b", 2},
		{":is(a, b), c", 2},
	}
	for _, tt := range tests {
		got := selector.SplitCompound(tt.sel)
		if len(got) != tt.parts {
			t.Fatalf("%s: expected %d parts got %v", tt.sel, tt.parts, got)
		}
	}
}

func TestIsCompound(t *testing.T) {
	if selector.IsCompound("input[name='a,b']") {
		t.Fatalf("quoted comma should not be compound")
	}
	if !selector.IsCompound("input, select") {
		t.Fatalf("expected compound")
	}
}

func TestIndexedRoundTrip(t *testing.T) {
	m := selector.SynthesizeIndexed("input, select, textarea", 7)
	if m != "(input, select, textarea)>>>nth-index-7" {
		t.Fatalf("bad marker form: %s", m)
	}
	base, idx, ok := selector.ParseIndexed(m)
	if !ok {
		t.Fatalf("marker did not round trip")
	}
	if base != "input, select, textarea" || idx != 7 {
		t.Fatalf("got base %q idx %d", base, idx)
	}
}

func TestParseIndexedMalformed(t *testing.T) {
	bad := []string{
		"",
		"input",
		"(input)>>>nth-index-",
		"(input)>>>nth-index-x",
		"(input)>>>nth-index--1",
		")>>>nth-index-3",
		"input)>>>nth-index-3",
	}
	for _, sel := range bad {
		if _, _, ok := selector.ParseIndexed(sel); ok {
			t.Fatalf("%q should not parse", sel)
		}
	}
}

func TestNthRoundTrip(t *testing.T) {
	m := selector.SynthesizeNth("label", 1)
	if m != "label:nth-of-type(2)" {
		t.Fatalf("bad nth form: %s", m)
	}
	base, idx, ok := selector.ParseNth(m)
	if !ok || base != "label" || idx != 1 {
		t.Fatalf("got %q %d %v", base, idx, ok)
	}
}

func TestParseNthMalformed(t *testing.T) {
	bad := []string{
		"label",
		"label:nth-of-type()",
		"label:nth-of-type(0)",
		"label:nth-of-type(x)",
		"label:nth-of-type(2",
		":nth-of-type(2)",
	}
	for _, sel := range bad {
		if _, _, ok := selector.ParseNth(sel); ok {
			t.Fatalf("%q should not parse", sel)
		}
	}
}

func TestXPathClassification(t *testing.T) {
	if !selector.IsXPath("xpath=//div") {
		t.Fatalf("expected xpath selector")
	}
	if selector.XPathExpression("xpath=//div") != "//div" {
		t.Fatalf("prefix not stripped")
	}
	unsafe := []string{
		"xpath=//input | //select",
		"xpath=//span/ancestor::div",
		"xpath=//div/descendant::a",
		"xpath=//td/following::tr",
		"xpath=//td/preceding::tr",
	}
	for _, sel := range unsafe {
		if selector.SafeXPath(sel) {
			t.Fatalf("%q should be unsafe", sel)
		}
	}
	if !selector.SafeXPath("xpath=//div[@id='x']/span") {
		t.Fatalf("plain expression should be safe")
	}
}
