package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuppalabs/cuppa/internal/spec/docs"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

func parseDoc(t *testing.T, src string) (*ParsedModel, error) {
	t.Helper()
	root, err := docs.Parse([]byte(src))
	require.NoError(t, err)
	return Parse(root)
}

func TestParse_Basic(t *testing.T) {
	t.Parallel()
	m, err := parseDoc(t, `{
		"type": "object",
		"title": "User",
		"required": ["id"],
		"properties": {
			"id": {"type": "string"},
			"age": {"type": "integer"}
		}
	}`)
	require.NoError(t, err)

	assert.Equal(t, "User", m.Name)
	require.Len(t, m.Properties, 2)

	// Document order is preserved.
	assert.Equal(t, "id", m.Properties[0].Name)
	assert.Equal(t, "string", m.Properties[0].SourceType)
	assert.False(t, m.Properties[0].Optional)

	assert.Equal(t, "age", m.Properties[1].Name)
	assert.Equal(t, "integer", m.Properties[1].SourceType)
	assert.True(t, m.Properties[1].Optional)
}

func TestParse_NonObjectRoot(t *testing.T) {
	t.Parallel()
	_, err := parseDoc(t, `{"type": "array", "items": {"type": "string"}}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema type")
}

func TestParse_UnionAndNullable(t *testing.T) {
	t.Parallel()
	m, err := parseDoc(t, `
type: object
title: Note
required: [body, pinned]
properties:
  body:
    type: ["null", string]
  pinned:
    type: boolean
    nullable: true
  empty:
    type: ["null"]
`)
	require.NoError(t, err)
	require.Len(t, m.Properties, 3)

	// Union type takes the first non-null entry.
	assert.Equal(t, "string", m.Properties[0].SourceType)
	assert.False(t, m.Properties[0].Optional)

	// Required but nullable is still optional: either signal is enough.
	assert.True(t, m.Properties[1].Optional)

	// Only "null" listed degrades to the untyped marker.
	assert.Equal(t, "any", m.Properties[2].SourceType)
}

func TestParse_Arrays(t *testing.T) {
	t.Parallel()
	m, err := parseDoc(t, `
type: object
title: Order
properties:
  tags:
    type: array
    items: {type: string}
  lines:
    type: array
    items: {$ref: "#/components/schemas/OrderLine"}
`)
	require.NoError(t, err)
	require.Len(t, m.Properties, 2)

	tags := m.Properties[0]
	assert.True(t, tags.Array)
	assert.Equal(t, "string", tags.SourceType, "element type, never array itself")

	lines := m.Properties[1]
	assert.True(t, lines.Array)
	assert.Equal(t, "OrderLine", lines.SourceType)
}

func TestParse_NeverInventsProperties(t *testing.T) {
	t.Parallel()
	m, err := parseDoc(t, `{"type":"object","title":"Empty"}`)
	require.NoError(t, err)
	assert.Empty(t, m.Properties)
}

func TestTargetTypeName(t *testing.T) {
	t.Parallel()
	p := ParsedProperty{Name: "tags", SourceType: "string", Array: true, Optional: true}
	assert.Equal(t, "[String]?", p.TargetTypeName(typeconv.IOS))
	assert.Equal(t, "List<String>?", p.TargetTypeName(typeconv.Android))
	assert.Equal(t, "string[] | null", p.TargetTypeName(typeconv.Web))
}

func TestParse_DefaultsAndFormat(t *testing.T) {
	t.Parallel()
	m, err := parseDoc(t, `
type: object
title: Event
required: [when]
properties:
  when:
    type: string
    format: date-time
  retries:
    type: integer
    default: 3
`)
	require.NoError(t, err)
	require.Len(t, m.Properties, 2)
	assert.Equal(t, "date-time", m.Properties[0].Format)
	assert.Equal(t, 3, m.Properties[1].DefaultValue)
}
