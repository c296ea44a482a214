package streamjson

import (
	"fmt"

	"github.com/mcvoid/streamjson/internal/numeric"
	"github.com/mcvoid/streamjson/internal/scanner"
)

// containerOps implements the container and binding halves of
// scanner.Handler (spec §6.2) that are identical whether the caller
// wants one accumulated root Value or a per-document callback stream;
// only AddRoot differs between the two modes, so it's embedded by both
// concrete handlers below.
type containerOps struct{}

func (containerOps) StartArray() any        { return &Value{typ: Array, arr: []*Value{}} }
func (containerOps) EndArray(handle any) any { return handle }
func (containerOps) StartHash() any         { return &Value{typ: Object, obj: []pair{}} }
func (containerOps) EndHash(handle any) any  { return handle }

func (containerOps) ArrayAppend(handle any, v any) {
	arr := handle.(*Value)
	arr.arr = append(arr.arr, toValue(v))
}

func (containerOps) HashSet(handle any, key string, v any) {
	obj := handle.(*Value)
	obj.obj = append(obj.obj, pair{key: key, val: toValue(v)})
}

// treeHandler accumulates a single document into root, the teacher's
// original single-result behavior, generalized to the expanded Type set.
type treeHandler struct {
	containerOps
	root *Value
}

func (h *treeHandler) AddRoot(v any) {
	h.root = toValue(v)
}

// streamHandler delivers one Value per completed root-level document to
// onDoc instead of accumulating a result, for the JSON-Lines-style
// streaming mode of SPEC_FULL §3. The first error onDoc returns is kept
// and surfaces from ParseDocuments.
type streamHandler struct {
	containerOps
	onDoc func(*Value) error
	err   error
}

func (h *streamHandler) AddRoot(v any) {
	if h.err != nil {
		return
	}
	h.err = h.onDoc(toValue(v))
}

var _ scanner.Handler = (*treeHandler)(nil)
var _ scanner.Handler = (*streamHandler)(nil)

// toValue normalizes the handful of shapes the scanner hands to a
// Handler (spec §6.2's add_value/add_cstr/add_num family, collapsed per
// scanner.Handler's doc comment) into the public Value tree.
func toValue(v any) *Value {
	switch t := v.(type) {
	case *Value:
		return t
	case scanner.Null:
		return &Value{typ: Null}
	case bool:
		return &Value{typ: Boolean, b: t}
	case string:
		return &Value{typ: String, s: t}
	case numeric.Result:
		return numResultToValue(t)
	default:
		panic(fmt.Sprintf("streamjson: internal: unexpected handler value %T", v))
	}
}

func numResultToValue(r numeric.Result) *Value {
	switch r.Kind {
	case numeric.KindInt64:
		return &Value{typ: Integer, i: r.Int64}
	case numeric.KindFloat64:
		return &Value{typ: Number, f: r.Float}
	case numeric.KindBigInt:
		return &Value{typ: BigInteger, bigI: r.Int}
	case numeric.KindBigFloat:
		return &Value{typ: BigDecimal, bigF: r.Dec}
	default:
		return &Value{}
	}
}
