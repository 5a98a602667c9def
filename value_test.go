package arrow

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Kind(t *testing.T) {
	var testCases = []struct {
		description string
		value       Value
		expect      Kind
	}{
		{description: "absent", value: Absent(), expect: KindAbsent},
		{description: "null", value: NewValue(nil), expect: KindNull},
		{description: "bool", value: NewValue(false), expect: KindBool},
		{description: "float", value: NewValue(1.5), expect: KindNumber},
		{description: "json number", value: NewValue(json.Number("1")), expect: KindNumber},
		{description: "string", value: NewValue("x"), expect: KindString},
		{description: "array", value: NewValue([]interface{}{}), expect: KindArray},
		{description: "typed array", value: NewValue([]string{"a"}), expect: KindArray},
		{description: "object", value: NewValue(map[string]interface{}{}), expect: KindObject},
		{description: "typed object", value: NewValue(map[string]int{}), expect: KindObject},
		{description: "struct", value: NewValue(struct{}{}), expect: KindUnknown},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.value.Kind(), testCase.description)
	}
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestValue_Key(t *testing.T) {
	node := map[string]interface{}{"a": 1.0, "n": nil}

	actual, ok := NewValue(node).Key("a").Data()
	assert.True(t, ok)
	assert.Equal(t, 1.0, actual)

	assert.True(t, NewValue(node).Key("n").IsNull())
	assert.True(t, NewValue(node).Key("missing").IsAbsent())
	assert.True(t, NewValue("text").Key("a").IsAbsent())
	assert.True(t, NewValue(nil).Key("a").IsAbsent())
	assert.True(t, Absent().Key("a").Key("b").IsAbsent())

	typed, ok := NewValue(map[string]int{"x": 3}).Key("x").Data()
	assert.True(t, ok)
	assert.Equal(t, 3, typed)
}

func TestValue_Index(t *testing.T) {
	node := []interface{}{"a", "b"}

	actual, ok := NewValue(node).Index(1).Data()
	assert.True(t, ok)
	assert.Equal(t, "b", actual)

	assert.True(t, NewValue(node).Index(2).IsAbsent())
	assert.True(t, NewValue(node).Index(-1).IsAbsent())
	assert.True(t, NewValue("ab").Index(0).IsAbsent())
	assert.True(t, NewValue(map[string]interface{}{"0": 1.0}).Index(0).IsAbsent())

	typed, ok := NewValue([2]int{4, 5}).Index(1).Data()
	assert.True(t, ok)
	assert.Equal(t, 5, typed)
}

func TestValue_Path(t *testing.T) {
	node := map[string]interface{}{
		"users": []interface{}{
			map[string]interface{}{"address": map[string]interface{}{"city": "Oslo"}},
		},
		"meta":   map[string]interface{}{"a.b": "dotted", "c[0]": "bracketed"},
		"matrix": []interface{}{[]interface{}{1.0, 2.0}},
	}
	value := NewValue(node)

	var testCases = []struct {
		description string
		path        string
		expect      interface{}
		present     bool
	}{
		{description: "nested", path: "users[0].address.city", expect: "Oslo", present: true},
		{description: "quoted key with dot", path: `meta["a.b"]`, expect: "dotted", present: true},
		{description: "single quoted key", path: `meta['c[0]']`, expect: "bracketed", present: true},
		{description: "nested index", path: "matrix[0][1]", expect: 2.0, present: true},
		{description: "missing index", path: "users[3].address", present: false},
		{description: "missing key", path: "users[0].phone", present: false},
		{description: "index on object", path: "meta[0]", present: false},
		{description: "unterminated index", path: "users[0", present: false},
		{description: "bad index", path: "users[x]", present: false},
	}

	for _, testCase := range testCases {
		actual, ok := value.Path(testCase.path).Data()
		assert.Equal(t, testCase.present, ok, testCase.description)
		if testCase.present {
			assert.Equal(t, testCase.expect, actual, testCase.description)
		}
	}
}

func TestParsePath_Cache(t *testing.T) {
	for i := 0; i < 2*pathCacheCapacity; i++ {
		segments, err := parsePath(fmt.Sprintf("items[%d].name", i))
		assert.NoError(t, err)
		assert.Len(t, segments, 3)
	}
	assert.LessOrEqual(t, pathCache.Len(), pathCacheCapacity)

	_, err := parsePath("users[x]")
	assert.Error(t, err)
	_, ok := pathCache.Get("users[x]")
	assert.False(t, ok, "failed parse is not cached")
}

func TestValue_DateFormat(t *testing.T) {
	value := NewValue("x")
	_, ok := value.DateFormat()
	assert.False(t, ok)

	override := value.WithDateFormat("dd/MM/yyyy")
	format, ok := override.DateFormat()
	assert.True(t, ok)
	assert.Equal(t, "dd/MM/yyyy", format)

	_, ok = value.DateFormat()
	assert.False(t, ok, "WithDateFormat returns a copy")

	tagged := value.WithFormatTag(reflect.StructTag(`format:"dateFormat=yyyy"`))
	format, ok = tagged.DateFormat()
	assert.True(t, ok)
	assert.Equal(t, "yyyy", format)

	untagged := value.WithFormatTag(reflect.StructTag(`json:"x"`))
	_, ok = untagged.DateFormat()
	assert.False(t, ok)
}
