package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/treelint/treelint/pkg/lint"
)

// Filename casing styles.
const (
	StyleKebab  = "kebab-case"
	StyleCamel  = "camel-case"
	StylePascal = "pascal-case"
	StyleSnake  = "snake-case"
)

// DefaultFilenameStyle is the style enforced when none is configured.
const DefaultFilenameStyle = StyleKebab

// filenameAllowlist contains special framework filenames and recognized
// config filenames that are never style-checked. The allowlist is
// consulted before any classification.
var filenameAllowlist = map[string]bool{
	"page":       true,
	"layout":     true,
	"template":   true,
	"loading":    true,
	"error":      true,
	"not-found":  true,
	"route":      true,
	"default":    true,
	"middleware": true,

	"next.config":     true,
	"tailwind.config": true,
	"postcss.config":  true,
	"eslint.config":   true,
	"tsconfig":        true,
	"jsconfig":        true,
	"vitest.config":   true,
	"jest.config":     true,
}

func init() {
	lint.Register(lint.RuleDef{
		ID:          "filename-style-consistency",
		Name:        "naming.filename-style",
		Group:       "naming",
		Description: "Filename does not match the configured casing style",
		Severity:    lint.SeverityWarn,
		ConfigKeys:  []string{"filename_style"},
		Check:       checkFilenameStyle,
	})
}

// ValidFilenameStyle reports whether s names a known casing style.
func ValidFilenameStyle(s string) bool {
	switch s {
	case StyleKebab, StyleCamel, StylePascal, StyleSnake:
		return true
	}
	return false
}

// checkFilenameStyle classifies the filename stem by tokenizing on case
// transitions, hyphens and underscores, reconstructing the stem under the
// configured style, and comparing for equality.
func checkFilenameStyle(f *lint.File, opts map[string]any) []lint.Diagnostic {
	stem := f.Stem()
	if stem == "" || filenameAllowlist[stem] {
		return nil
	}

	style := lint.GetStringOption(opts, "filename_style", DefaultFilenameStyle)
	if !ValidFilenameStyle(style) {
		style = DefaultFilenameStyle
	}

	if RestyleIdentifier(stem, style) == stem {
		return nil
	}

	return []lint.Diagnostic{{
		Severity: lint.SeverityWarn,
		Rule:     "filename-style-consistency",
		Message:  fmt.Sprintf("Filename '%s' does not match expected style: %s", stem, style),
		File:     f.RelPath,
	}}
}

// RestyleIdentifier rewrites an identifier under the target casing style.
func RestyleIdentifier(s, style string) string {
	tokens := tokenize(s)
	if len(tokens) == 0 {
		return s
	}
	switch style {
	case StyleSnake:
		return strings.Join(lowerAll(tokens), "_")
	case StylePascal:
		var b strings.Builder
		for _, t := range tokens {
			b.WriteString(capitalize(t))
		}
		return b.String()
	case StyleCamel:
		var b strings.Builder
		b.WriteString(strings.ToLower(tokens[0]))
		for _, t := range tokens[1:] {
			b.WriteString(capitalize(t))
		}
		return b.String()
	default: // kebab
		return strings.Join(lowerAll(tokens), "-")
	}
}

// tokenize splits an identifier into words on hyphens, underscores and
// lower-to-upper case transitions. Runs of uppercase letters followed by a
// lowercase letter split before the final uppercase letter, so
// "HTTPServer" yields ["HTTP", "Server"].
func tokenize(s string) []string {
	var tokens []string
	var current []rune
	runes := []rune(s)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		switch {
		case r == '-' || r == '_':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return tokens
}

func lowerAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(t)
	}
	return out
}

func capitalize(t string) string {
	if t == "" {
		return t
	}
	runes := []rune(strings.ToLower(t))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
