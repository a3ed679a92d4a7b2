// Package otlpjson renders decoded OTLP export requests as OTLP/JSON.
//
// Keys are lowerCamelCase, 64-bit integers are written as decimal strings,
// trace and span ids as lowercase hex and other bytes as base64. Fields
// holding their zero value are left out, except for oneof variants which are
// always written.
package otlpjson

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/grafana/otlpcodec/pkg/otlp/common"
)

type writer struct {
	*jsoniter.Stream
	// first[i] is true while the i-th open object has no fields yet.
	first []bool
}

func write(w io.Writer, fn func(*writer)) error {
	s := jsoniter.ConfigFastest.BorrowStream(w)
	defer jsoniter.ConfigFastest.ReturnStream(s)

	fn(&writer{Stream: s})
	s.WriteRaw("\n")
	if s.Error != nil {
		return s.Error
	}
	return s.Flush()
}

func (w *writer) objectStart() {
	w.WriteObjectStart()
	w.first = append(w.first, true)
}

func (w *writer) objectEnd() {
	w.first = w.first[:len(w.first)-1]
	w.WriteObjectEnd()
}

func (w *writer) field(name string) {
	top := len(w.first) - 1
	if !w.first[top] {
		w.WriteMore()
	}
	w.first[top] = false
	w.WriteObjectField(name)
}

// array writes a field holding n elements, or nothing when n is zero.
func (w *writer) array(name string, n int, elem func(i int)) {
	if n == 0 {
		return
	}
	w.field(name)
	w.WriteArrayStart()
	for i := 0; i < n; i++ {
		if i > 0 {
			w.WriteMore()
		}
		elem(i)
	}
	w.WriteArrayEnd()
}

func (w *writer) str(name, v string) {
	if v == "" {
		return
	}
	w.field(name)
	w.WriteString(v)
}

func (w *writer) boolean(name string, v bool) {
	if !v {
		return
	}
	w.field(name)
	w.WriteBool(v)
}

func (w *writer) u32(name string, v uint32) {
	if v == 0 {
		return
	}
	w.field(name)
	w.WriteUint32(v)
}

func (w *writer) i32(name string, v int32) {
	if v == 0 {
		return
	}
	w.field(name)
	w.WriteInt32(v)
}

func (w *writer) u64(name string, v uint64) {
	if v == 0 {
		return
	}
	w.field(name)
	w.WriteString(strconv.FormatUint(v, 10))
}

func (w *writer) f64(name string, v float64) {
	if math.Float64bits(v) == 0 {
		return
	}
	w.field(name)
	w.double(v)
}

func (w *writer) optionalF64(name string, v *float64) {
	if v == nil {
		return
	}
	w.field(name)
	w.double(*v)
}

// double writes v, spelling out the values JSON numbers cannot hold.
func (w *writer) double(v float64) {
	switch {
	case math.IsNaN(v):
		w.WriteString("NaN")
	case math.IsInf(v, 1):
		w.WriteString("Infinity")
	case math.IsInf(v, -1):
		w.WriteString("-Infinity")
	default:
		w.WriteFloat64(v)
	}
}

func (w *writer) hexID(name string, id []byte) {
	if len(id) == 0 {
		return
	}
	w.field(name)
	w.WriteString(hex.EncodeToString(id))
}

func (w *writer) attributes(name string, attrs []*common.KeyValue) {
	w.array(name, len(attrs), func(i int) { w.keyValue(attrs[i]) })
}

func (w *writer) keyValue(kv *common.KeyValue) {
	w.objectStart()
	w.str("key", kv.Key)
	if kv.Value != nil {
		w.field("value")
		w.anyValue(kv.Value)
	}
	w.objectEnd()
}

func (w *writer) anyValue(v *common.AnyValue) {
	w.objectStart()
	switch v := v.Value.(type) {
	case nil:
	case common.StringValue:
		w.field("stringValue")
		w.WriteString(string(v))
	case common.BoolValue:
		w.field("boolValue")
		w.WriteBool(bool(v))
	case common.IntValue:
		w.field("intValue")
		w.WriteString(strconv.FormatInt(int64(v), 10))
	case common.DoubleValue:
		w.field("doubleValue")
		w.double(float64(v))
	case common.BytesValue:
		w.field("bytesValue")
		w.WriteString(base64.StdEncoding.EncodeToString(v))
	case *common.ArrayValue:
		w.field("arrayValue")
		w.objectStart()
		values := v.GetValues()
		w.array("values", len(values), func(i int) { w.anyValue(values[i]) })
		w.objectEnd()
	case *common.KeyValueList:
		w.field("kvlistValue")
		w.objectStart()
		w.attributes("values", v.GetValues())
		w.objectEnd()
	}
	w.objectEnd()
}

func (w *writer) resource(r *common.Resource) {
	if r == nil {
		return
	}
	w.field("resource")
	w.objectStart()
	w.attributes("attributes", r.Attributes)
	w.u32("droppedAttributesCount", r.DroppedAttributesCount)
	w.objectEnd()
}

func (w *writer) scope(s *common.InstrumentationScope) {
	if s == nil {
		return
	}
	w.field("scope")
	w.objectStart()
	w.str("name", s.Name)
	w.str("version", s.Version)
	w.attributes("attributes", s.Attributes)
	w.u32("droppedAttributesCount", s.DroppedAttributesCount)
	w.objectEnd()
}
