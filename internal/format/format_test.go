package format

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatJSON(t *testing.T) {
	out, kind, err := Format(`  {"a":1,"b":[true,null]}  `)
	require.NoError(t, err)
	assert.Equal(t, KindJSON, kind)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}", out)
}

func TestFormatJSONError(t *testing.T) {
	out, kind, err := Format(`{"a":}`)
	assert.Equal(t, KindJSON, kind)
	assert.Empty(t, out)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindJSON, fe.Kind)
	assert.Positive(t, fe.Offset)
	assert.Contains(t, fe.Error(), "format json: offset")

	var se *json.SyntaxError
	assert.True(t, errors.As(err, &se))
}

func TestFormatIndent(t *testing.T) {
	src := "function f() {\nif (x) {\nreturn [\n1,\n]\n}\n}"
	out, kind, err := Format(src)
	require.NoError(t, err)
	assert.Equal(t, KindIndent, kind)
	assert.Equal(t, "function f() {\n  if (x) {\n    return [\n      1,\n    ]\n  }\n}", out)
}

func TestFormatIndentNeverNegative(t *testing.T) {
	out, _, err := Format("}\n}\nx")
	require.NoError(t, err)
	assert.Equal(t, "}\n}\nx", out)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, KindJSON, Detect("\n[1]"))
	assert.Equal(t, KindIndent, Detect("const a = {}"))
	assert.Equal(t, KindIndent, Detect(""))
}
