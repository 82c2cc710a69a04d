package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuppalabs/cuppa/internal/spec/docs"
)

const buttonSpec = `
name: PrimaryButton
category: buttons
description: Main call-to-action button.
properties:
  - name: title
    type: string
    required: true
  - name: is-enabled
    type: Binding<boolean>
    default: true
  - name: badgeCount
    type: number?
style:
  padding: 12
  cornerRadius: 8
  backgroundColor: primary
states:
  loading:
    description: Spinner shown while the action runs.
    opacity: 0.6
  disabled:
    opacity: 0.4
actions:
  - name: on-tap
    type: async
    returns: void
slots:
  - name: icon
    description: Leading icon.
`

func parseDoc(t *testing.T, src string) *ParsedComponent {
	t.Helper()
	root, err := docs.Parse([]byte(src))
	require.NoError(t, err)
	c, err := Parse(root, "", "")
	require.NoError(t, err)
	return c
}

func TestParse_Button(t *testing.T) {
	t.Parallel()
	c := parseDoc(t, buttonSpec)

	assert.Equal(t, "PrimaryButton", c.Name)
	assert.Equal(t, "buttons", c.Category)

	require.Len(t, c.Properties, 3)
	assert.Equal(t, "title", c.Properties[0].Name)
	assert.True(t, c.Properties[0].Required)

	binding := c.Properties[1]
	assert.Equal(t, "isEnabled", binding.Name)
	assert.True(t, binding.IsBinding())
	assert.Equal(t, "boolean", binding.Type.Base)
	assert.Equal(t, true, binding.DefaultValue)

	optional := c.Properties[2]
	assert.True(t, optional.Type.Optional)
	assert.False(t, optional.Required)
}

func TestParse_DerivedFlags(t *testing.T) {
	t.Parallel()
	c := parseDoc(t, buttonSpec)

	assert.True(t, c.HasAsyncAction)
	assert.True(t, c.HasLoadingState)

	require.Len(t, c.Actions, 1)
	assert.Equal(t, "onTap", c.Actions[0].Name)
	assert.True(t, c.Actions[0].Async)

	require.Len(t, c.States, 2)
	assert.Equal(t, "loading", c.States[0].Name)
	assert.Equal(t, map[string]any{"opacity": 0.6}, c.States[0].Overrides)
}

func TestParse_SyncOnlyHasNoAsyncFlag(t *testing.T) {
	t.Parallel()
	c := parseDoc(t, `
name: Card
actions:
  - name: onSelect
states:
  hover: {}
`)
	assert.False(t, c.HasAsyncAction)
	assert.False(t, c.HasLoadingState)
	assert.False(t, c.Actions[0].Async)
}

func TestParse_PaddingNormalization(t *testing.T) {
	t.Parallel()

	uniform := parseDoc(t, `{"name":"A","style":{"padding":12}}`)
	assert.Equal(t, Padding{Top: 12, Right: 12, Bottom: 12, Left: 12}, uniform.Style.Padding)
	assert.True(t, uniform.Style.Padding.Uniform())

	partial := parseDoc(t, `{"name":"B","style":{"padding":{"top":4,"bottom":4}}}`)
	assert.Equal(t, Padding{Top: 4, Right: 16, Bottom: 4, Left: 16}, partial.Style.Padding)

	absent := parseDoc(t, `{"name":"C"}`)
	assert.Equal(t, Padding{Top: 16, Right: 16, Bottom: 16, Left: 16}, absent.Style.Padding)
}

func TestParse_MissingName(t *testing.T) {
	t.Parallel()
	root, err := docs.Parse([]byte(`{"category":"misc"}`))
	require.NoError(t, err)
	_, err = Parse(root, "", "")
	require.Error(t, err)
}

func TestSynthesize(t *testing.T) {
	t.Parallel()
	c := Synthesize("tag-chip", "")
	assert.Equal(t, "TagChip", c.Name)
	assert.Equal(t, "custom", c.Category)
	require.Len(t, c.Properties, 1)
	require.Len(t, c.Actions, 1)
	assert.False(t, c.HasAsyncAction)
	assert.True(t, c.Style.Padding.Uniform())
}
