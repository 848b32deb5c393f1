package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		in        string
		want      string
	}{
		{"camel simple", TransformCamel, "Compare", "compare"},
		{"camel screaming", TransformCamel, "MY_FIELD", "myField"},
		{"camel already camel", TransformCamel, "myField", "myField"},
		{"camel acronym run", TransformCamel, "HTTPClient", "httpclient"},
		{"pascal simple", TransformPascal, "my_field", "MyField"},
		{"pascal from camel", TransformPascal, "myField", "MyField"},
		{"preserve untouched", TransformPreserve, "MY_FIELD", "MY_FIELD"},
		{"empty transform preserves", Transform(""), "Mixed_Case", "Mixed_Case"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transform.Apply(tt.in))
		})
	}
}

func TestTransformValid(t *testing.T) {
	assert.True(t, TransformCamel.Valid())
	assert.True(t, Transform("").Valid())
	assert.False(t, Transform("snake").Valid())
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"delete", "delete_"},
		{"class", "class_"},
		{"1stItem", "_1stItem"},
		{"٣cols", "_٣cols"},
		{"has-dash", "has_dash"},
		{"dot.ted", "dot_ted"},
		{"", "_"},
		{"$ok", "$ok"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SanitizeIdentifier(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, ValidIdentifier(got))
		})
	}
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, ValidIdentifier("dispose_IDisposable"))
	assert.True(t, ValidIdentifier("delete_"))
	assert.False(t, ValidIdentifier("delete"))
	assert.False(t, ValidIdentifier("9lives"))
	// Leading digit detection must decode the first rune, not the
	// first byte.
	assert.False(t, ValidIdentifier("٣cols"))
	assert.False(t, ValidIdentifier("a.b"))
	assert.False(t, ValidIdentifier(""))
}
