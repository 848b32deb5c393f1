package namer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// reservedWords lists TypeScript reserved words that cannot be used as
// bare identifiers in declaration output.
var reservedWords = map[string]bool{
	"break":      true,
	"case":       true,
	"catch":      true,
	"class":      true,
	"const":      true,
	"continue":   true,
	"debugger":   true,
	"default":    true,
	"delete":     true,
	"do":         true,
	"else":       true,
	"enum":       true,
	"export":     true,
	"extends":    true,
	"false":      true,
	"finally":    true,
	"for":        true,
	"function":   true,
	"if":         true,
	"implements": true,
	"import":     true,
	"in":         true,
	"instanceof": true,
	"interface":  true,
	"let":        true,
	"new":        true,
	"null":       true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"return":     true,
	"static":     true,
	"super":      true,
	"switch":     true,
	"this":       true,
	"throw":      true,
	"true":       true,
	"try":        true,
	"type":       true,
	"typeof":     true,
	"var":        true,
	"void":       true,
	"while":      true,
	"with":       true,
	"yield":      true,
}

// IsReservedWord reports whether name is a TypeScript reserved word.
func IsReservedWord(name string) bool { return reservedWords[name] }

// escapeReservedWord escapes a reserved word by appending an
// underscore. Suffixing (never prefixing) keeps sort order and
// readability intact.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// SanitizeIdentifier makes an identifier valid for TypeScript:
// invalid characters become underscores, a leading digit gains an
// underscore prefix, and reserved words gain an underscore suffix.
func SanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}

	var result strings.Builder
	if first, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(first) {
		result.WriteRune('_')
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}
	return escapeReservedWord(result.String())
}

// ValidIdentifier reports whether name is already a legal, sanitized
// TypeScript identifier: non-empty, no invalid characters, no leading
// digit, and not a bare reserved word.
func ValidIdentifier(name string) bool {
	if name == "" || reservedWords[name] {
		return false
	}
	if first, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(first) {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}
