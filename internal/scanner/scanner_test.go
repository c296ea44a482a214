package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcvoid/streamjson/internal/numeric"
	"github.com/mcvoid/streamjson/internal/reader"
)

// recordingHandler builds a minimal in-memory tree so driver tests can
// assert on shape without depending on the root package's Value type.
type recHash struct {
	keys []string
	vals []any
}

type recArr struct {
	vals []any
}

type recordingHandler struct {
	root any
}

func (h *recordingHandler) StartArray() any         { return &recArr{} }
func (h *recordingHandler) EndArray(handle any) any { return handle }
func (h *recordingHandler) StartHash() any          { return &recHash{} }
func (h *recordingHandler) EndHash(handle any) any  { return handle }
func (h *recordingHandler) AddRoot(v any)            { h.root = v }
func (h *recordingHandler) ArrayAppend(handle any, v any) {
	a := handle.(*recArr)
	a.vals = append(a.vals, v)
}
func (h *recordingHandler) HashSet(handle any, key string, v any) {
	m := handle.(*recHash)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

func runDriver(t *testing.T, src string) (*recordingHandler, *Driver) {
	t.Helper()
	rd := reader.NewString(src)
	h := &recordingHandler{}
	d := NewDriver(rd, h, NumberOptions{})
	e := d.Run()
	require.Nil(t, e, "unexpected parse error: %v", e)
	return h, d
}

func TestDriverParsesFlatArray(t *testing.T) {
	h, d := runDriver(t, `[1,2,3]`)
	assert.Equal(t, 0, d.StackLen())
	arr := h.root.(*recArr)
	require.Len(t, arr.vals, 3)
	assert.Equal(t, int64(1), arr.vals[0].(numeric.Result).Int64)
}

func TestDriverParsesNestedContainers(t *testing.T) {
	h, _ := runDriver(t, `{"a":[1,{"b":true}]}`)
	obj := h.root.(*recHash)
	require.Equal(t, []string{"a"}, obj.keys)
	arr := obj.vals[0].(*recArr)
	require.Len(t, arr.vals, 2)
	inner := arr.vals[1].(*recHash)
	assert.Equal(t, []string{"b"}, inner.keys)
	assert.Equal(t, true, inner.vals[0])
}

func TestDriverParsesString(t *testing.T) {
	h, _ := runDriver(t, `"hello"`)
	assert.Equal(t, "hello", h.root)
}

func TestDriverParsesEscapedString(t *testing.T) {
	h, _ := runDriver(t, `"a\nbA"`)
	assert.Equal(t, "a\nbA", h.root)
}

func TestDriverParsesSurrogatePair(t *testing.T) {
	h, _ := runDriver(t, "\"\\uD83D\\uDE00\"")
	assert.Equal(t, "\U0001F600", h.root)
}

func TestDriverParsesNull(t *testing.T) {
	h, _ := runDriver(t, `null`)
	assert.Equal(t, Null{}, h.root)
}

func TestDriverParsesBooleans(t *testing.T) {
	h, _ := runDriver(t, `true`)
	assert.Equal(t, true, h.root)
	h, _ = runDriver(t, `false`)
	assert.Equal(t, false, h.root)
}

func TestDriverParsesLenientExtensions(t *testing.T) {
	h, _ := runDriver(t, `+5`)
	assert.Equal(t, int64(5), h.root.(numeric.Result).Int64)

	h, _ = runDriver(t, `Infinity`)
	assert.True(t, h.root.(numeric.Result).Kind == numeric.KindFloat64)

	h, _ = runDriver(t, `NaN`)
	assert.True(t, h.root.(numeric.Result).Kind == numeric.KindFloat64)
}

func TestDriverSkipsComments(t *testing.T) {
	h, _ := runDriver(t, "/* c */[1 /*x*/,2] // trailing\n")
	arr := h.root.(*recArr)
	require.Len(t, arr.vals, 2)
}

func TestDriverRejectsUnexpectedComma(t *testing.T) {
	rd := reader.NewString(`[,1]`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
}

func TestDriverRejectsUnexpectedColon(t *testing.T) {
	rd := reader.NewString(`[1:2]`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
}

func TestDriverRejectsMismatchedClose(t *testing.T) {
	rd := reader.NewString(`[1}`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
}

func TestDriverDetectsUnterminatedArray(t *testing.T) {
	rd := reader.NewString(`[1,2`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.Nil(t, e)
	require.Equal(t, 1, d.StackLen())
	top := d.StackTop()
	assert.Equal(t, ArrayComma, top.Next)
}

func TestDriverDetectsUnterminatedHash(t *testing.T) {
	rd := reader.NewString(`{"a":1`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.Nil(t, e)
	require.Equal(t, 1, d.StackLen())
	top := d.StackTop()
	assert.Equal(t, HashComma, top.Next)
}

func TestDriverRejectsUnterminatedString(t *testing.T) {
	rd := reader.NewString(`"abc`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
}

func TestDriverHashKeyMustBeString(t *testing.T) {
	rd := reader.NewString(`{1:2}`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
}

func TestDriverEnforcesMaxDepth(t *testing.T) {
	src := ""
	for i := 0; i < MaxDepth+1; i++ {
		src += "["
	}
	rd := reader.NewString(src)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "maximum nesting depth exceeded", e.Kind.String())
}

func TestDriverAbortDrainsStackWithoutCallbacks(t *testing.T) {
	rd := reader.NewString(`[1,[2,3`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.Nil(t, e)
	require.Equal(t, 2, d.StackLen())
	d.Abort()
	assert.Equal(t, 0, d.StackLen())
}

func TestDriverRejectsMalformedCommentOpener(t *testing.T) {
	rd := reader.NewString(`/x`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "invalid comment format", e.Kind.String())
}

func TestDriverRejectsUnterminatedBlockComment(t *testing.T) {
	rd := reader.NewString(`/* never closed`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "comment not terminated", e.Kind.String())
}

func TestDriverRejectsInvalidHexDigitInUnicodeEscape(t *testing.T) {
	rd := reader.NewString(`"\uZZZZ"`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "invalid hex character", e.Kind.String())
}

func TestDriverRejectsUnknownEscapeCharacter(t *testing.T) {
	rd := reader.NewString(`"\q"`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "invalid escaped character", e.Kind.String())
}

func TestDriverRejectsUnpairedHighSurrogate(t *testing.T) {
	rd := reader.NewString(`"\uD800x"`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "invalid escaped character", e.Kind.String())
}

func TestDriverRejectsMisspelledNaN(t *testing.T) {
	rd := reader.NewString(`Nax`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "expected NaN", e.Kind.String())
}

func TestDriverRejectsMisspelledInfinity(t *testing.T) {
	rd := reader.NewString(`Infinty`)
	d := NewDriver(rd, &recordingHandler{}, NumberOptions{})
	e := d.Run()
	require.NotNil(t, e)
	assert.Equal(t, "not a number or other value", e.Kind.String())
}

func TestDriverBigDecimalOptionForcesEscalation(t *testing.T) {
	rd := reader.NewString(`5`)
	h := &recordingHandler{}
	d := NewDriver(rd, h, NumberOptions{ForceBig: true})
	e := d.Run()
	require.Nil(t, e)
	res := h.root.(numeric.Result)
	assert.Equal(t, numeric.KindBigInt, res.Kind)
}
