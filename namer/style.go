package namer

import "strings"

// Transform is a naming style applied to requested identifiers before
// reservation.
type Transform string

const (
	TransformPreserve Transform = "preserve"
	TransformCamel    Transform = "camel"
	TransformPascal   Transform = "pascal"
)

// Valid reports whether the transform is a recognized style.
func (t Transform) Valid() bool {
	switch t {
	case TransformPreserve, TransformCamel, TransformPascal, "":
		return true
	}
	return false
}

// Apply applies the transform to a name. Empty transform preserves.
func (t Transform) Apply(name string) string {
	switch t {
	case TransformCamel:
		return toCamelCase(name)
	case TransformPascal:
		return toPascalCase(name)
	default:
		return name
	}
}

// splitWords splits an identifier into lowercase words on underscores
// and lower-to-upper case boundaries.
func splitWords(name string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	prevLower := false
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			flush()
		case r >= 'A' && r <= 'Z':
			if prevLower {
				flush()
			}
			current.WriteRune(r)
			prevLower = false
		default:
			current.WriteRune(r)
			prevLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		}
	}
	flush()
	return words
}

// toCamelCase converts an identifier to camelCase ("MY_FIELD" ->
// "myField").
func toCamelCase(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(words[0])
	for _, w := range words[1:] {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// toPascalCase converts an identifier to PascalCase ("my_field" ->
// "MyField").
func toPascalCase(name string) string {
	words := splitWords(name)
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
