package normalize

import (
	"strings"
)

// Canonical salutations accepted by the import endpoint.
const (
	SalutationMr = "Mr."
	SalutationMs = "Ms."
	SalutationMx = "Mx."
)

// Salutations lists the canonical salutation values.
var Salutations = []string{SalutationMr, SalutationMs, SalutationMx}

// salutationTable maps lowercased English and German variants to their
// canonical form.
var salutationTable = map[string]string{
	"mr":       SalutationMr,
	"mr.":      SalutationMr,
	"mister":   SalutationMr,
	"sir":      SalutationMr,
	"herr":     SalutationMr,
	"herrn":    SalutationMr,
	"hr":       SalutationMr,
	"hr.":      SalutationMr,
	"ms":       SalutationMs,
	"ms.":      SalutationMs,
	"miss":     SalutationMs,
	"mrs":      SalutationMs,
	"mrs.":     SalutationMs,
	"madam":    SalutationMs,
	"frau":     SalutationMs,
	"fr":       SalutationMs,
	"fr.":      SalutationMs,
	"fräulein": SalutationMs,
	"mx":       SalutationMx,
	"mx.":      SalutationMx,
}

// SalutationResult is the outcome of normalizing a salutation. An empty
// Salutation means the input was blank.
type SalutationResult struct {
	Salutation string
	// Honorifics holds text that followed a recognized title, e.g. "Dr."
	// in "Herr Dr.".
	Honorifics string
}

// Salutation canonicalizes input. The boolean reports whether a known
// variant was matched; unmatched input is returned trimmed and verbatim.
func Salutation(input string) (SalutationResult, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return SalutationResult{}, false
	}

	if canonical, ok := salutationTable[strings.ToLower(trimmed)]; ok {
		return SalutationResult{Salutation: canonical}, true
	}

	// "<title> <honorifics...>"
	if idx := strings.IndexFunc(trimmed, isSpace); idx > 0 {
		title := trimmed[:idx]
		if canonical, ok := salutationTable[strings.ToLower(title)]; ok {
			return SalutationResult{
				Salutation: canonical,
				Honorifics: strings.TrimSpace(trimmed[idx:]),
			}, true
		}
	}

	return SalutationResult{Salutation: trimmed}, false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
