package arrow

import (
	"reflect"

	"github.com/michalsrutek/arrow/conv"
	ftime "github.com/michalsrutek/arrow/format/time"
	"github.com/viant/tagly/format"
)

// Value is a read-only view over one decoded JSON node, or over nothing when the node is absent.
// A date format attached with WithDateFormat applies to this access only, it is not inherited by children.
type Value struct {
	data       interface{}
	present    bool
	dateFormat string
	timeLayout ftime.Layout
	hasFormat  bool
	config     *Config
}

// NewValue creates a Value bound to the process wide config
func NewValue(node interface{}) Value {
	return defaultConfig.Value(node)
}

// Absent returns a Value without node
func Absent() Value {
	return defaultConfig.Absent()
}

// Unmarshal populates model from a decoded JSON node with the process wide config
func Unmarshal(node interface{}, model Model) {
	defaultConfig.Unmarshal(node, model)
}

// Data returns decoded node, false if absent
func (v Value) Data() (interface{}, bool) {
	return v.data, v.present
}

// DateFormat returns per field date format override
func (v Value) DateFormat() (string, bool) {
	return v.dateFormat, v.hasFormat && v.dateFormat != ""
}

// Kind returns node kind
func (v Value) Kind() Kind {
	if !v.present {
		return KindAbsent
	}
	return kindOf(v.data)
}

// IsAbsent returns true if value has no node
func (v Value) IsAbsent() bool {
	return !v.present
}

// IsNull returns true for JSON null
func (v Value) IsNull() bool {
	return v.present && v.data == nil
}

// Config returns bound config
func (v Value) Config() *Config {
	if v.config == nil {
		return defaultConfig
	}
	return v.config
}

func (v Value) converter() *conv.Converter {
	return v.Config().converter
}

// WithDateFormat returns a copy of v parsing string dates with the supplied Unicode date pattern
func (v Value) WithDateFormat(pattern string) Value {
	v.dateFormat = pattern
	v.timeLayout = ftime.Compile(pattern)
	v.hasFormat = true
	return v
}

// WithTimeLayout returns a copy of v parsing string dates with the supplied Go time layout
func (v Value) WithTimeLayout(layout string) Value {
	v.dateFormat = ""
	v.timeLayout = ftime.GoLayout(layout)
	v.hasFormat = true
	return v
}

// WithFormatTag returns a copy of v with the date override of a format tag
// (e.g. `format:"dateFormat=dd/MM/yyyy"` or `format:"timeLayout=02/01/2006"`).
// Tags without date settings or that fail to parse leave v unchanged.
func (v Value) WithFormatTag(tag reflect.StructTag) Value {
	formatTag, err := format.Parse(tag)
	if err != nil || formatTag == nil {
		return v
	}
	if formatTag.DateFormat != "" {
		return v.WithDateFormat(formatTag.DateFormat)
	}
	if formatTag.TimeLayout != "" {
		return v.WithTimeLayout(formatTag.TimeLayout)
	}
	return v
}

// Key returns object member, absent if v is not an object or has no such key
func (v Value) Key(name string) Value {
	if !v.present {
		return v.child(nil, false)
	}
	switch actual := v.data.(type) {
	case map[string]interface{}:
		node, ok := actual[name]
		return v.child(node, ok)
	case nil:
		return v.child(nil, false)
	}
	val := reflect.ValueOf(v.data)
	if val.Kind() != reflect.Map || val.Type().Key().Kind() != reflect.String {
		return v.child(nil, false)
	}
	item := val.MapIndex(reflect.ValueOf(name).Convert(val.Type().Key()))
	if !item.IsValid() {
		return v.child(nil, false)
	}
	return v.child(item.Interface(), true)
}

// Index returns array element, absent if v is not an array or index is out of range
func (v Value) Index(index int) Value {
	if !v.present || index < 0 {
		return v.child(nil, false)
	}
	switch actual := v.data.(type) {
	case []interface{}:
		if index >= len(actual) {
			return v.child(nil, false)
		}
		return v.child(actual[index], true)
	case nil, []byte, string:
		return v.child(nil, false)
	}
	val := reflect.ValueOf(v.data)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return v.child(nil, false)
	}
	if index >= val.Len() {
		return v.child(nil, false)
	}
	return v.child(val.Index(index).Interface(), true)
}

// Path returns value selected by a path expression, i.e. "users[0].address.city" or `meta["a.b"]`.
// Malformed expressions select an absent value.
func (v Value) Path(expr string) Value {
	segments, err := parsePath(expr)
	if err != nil {
		return v.child(nil, false)
	}
	result := v.child(v.data, v.present)
	for _, segment := range segments {
		if segment.isIndex {
			result = result.Index(segment.index)
		} else {
			result = result.Key(segment.key)
		}
		if !result.present {
			break
		}
	}
	return result
}

func (v Value) child(node interface{}, present bool) Value {
	return Value{data: node, present: present, config: v.config}
}
