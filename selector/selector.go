// Package selector holds the pure string transforms the locator layer
// applies to selector text: compound selector detection, nth index
// synthesis and the strict parsers for the internal marker forms. No
// function here touches the network or the DOM.
package selector

import (
	"strconv"
	"strings"
)

const (
	indexedMarker = ")>>>nth-index-"
	nthOfType     = ":nth-of-type("
	xpathPrefix   = "xpath="
)

// IsCompound reports whether the selector contains a top level comma,
// meaning it is a group of clauses ("input, select, textarea"). Commas
// inside brackets, parentheses or quotes do not count.
func IsCompound(sel string) bool {
	return len(SplitCompound(sel)) > 1
}

// SplitCompound splits a selector on top level commas. A selector with
// no top level comma comes back as a single element slice. Clauses are
// trimmed of surrounding whitespace.
func SplitCompound(sel string) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(sel); i++ {
		c := sel[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(sel[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(sel[start:]))
	return parts
}

// SynthesizeIndexed produces the internal marker form for indexing into
// a compound selector's unioned match list: "(<sel>)>>>nth-index-<i>".
// The dispatch layer resolves it by running the plain base query and
// indexing the ordered result, which sidesteps the per-clause semantics
// of :nth-of-type on grouped selectors. Index is 0 based.
func SynthesizeIndexed(sel string, index int) string {
	return "(" + sel + indexedMarker + strconv.Itoa(index)
}

// ParseIndexed is the strict inverse of SynthesizeIndexed. ok is false
// for anything malformed so callers fall through to the default path.
func ParseIndexed(sel string) (base string, index int, ok bool) {
	if !strings.HasPrefix(sel, "(") {
		return "", 0, false
	}
	at := strings.Index(sel, indexedMarker)
	if at < 1 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(sel[at+len(indexedMarker):])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return sel[1:at], idx, true
}

// SynthesizeNth appends :nth-of-type for a non compound selector.
// Index is 0 based, CSS nth is 1 based.
func SynthesizeNth(sel string, index int) string {
	return sel + nthOfType + strconv.Itoa(index+1) + ")"
}

// ParseNth recognizes a selector ending in :nth-of-type(n) and returns
// the base selector and the 0 based index. Malformed input is ok=false.
func ParseNth(sel string) (base string, index int, ok bool) {
	at := strings.LastIndex(sel, nthOfType)
	if at < 1 || !strings.HasSuffix(sel, ")") {
		return "", 0, false
	}
	n, err := strconv.Atoi(sel[at+len(nthOfType) : len(sel)-1])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return sel[:at], n - 1, true
}

// IsXPath reports whether the selector is addressed to the XPath engine.
func IsXPath(sel string) bool {
	return strings.HasPrefix(sel, xpathPrefix)
}

// XPathExpression strips the engine prefix from an XPath selector.
func XPathExpression(sel string) string {
	return strings.TrimPrefix(sel, xpathPrefix)
}

// unsafe axis keywords and the union operator hang the remote query
// engine instead of returning or failing
var unsafeXPath = []string{
	"|",
	"ancestor::",
	"descendant::",
	"following::",
	"preceding::",
}

// SafeXPath reports whether an XPath selector can be sent to the native
// query path. Unsafe expressions must go through the in-page
// document.evaluate fallback instead.
func SafeXPath(sel string) bool {
	for _, pat := range unsafeXPath {
		if strings.Contains(sel, pat) {
			return false
		}
	}
	return true
}
