package mapper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleSchema() Schema {
	return Schema{
		"prop1": {Key: "property1"},
		"prop2": {Key: "property2"},
		"prop3": {Key: "property3"},
	}
}

func TestMap_FalsySourceReturnedUnchanged(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{"nil", nil},
		{"undefined", Undefined},
		{"false", false},
		{"zero int", 0},
		{"zero float", 0.0},
		{"empty string", ""},
		{"nil object", Object(nil)},
	}
	// A broken schema proves the schema is never consulted.
	broken := Schema{"x": {Keys: []string{"a", "b"}}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(tt.src, broken, WithInherit(true))
			require.NoError(t, err)
			assert.Equal(t, tt.src, got)
		})
	}
}

func TestMap_SimpleProperties(t *testing.T) {
	src := Object{"property1": "how", "property2": "you", "property3": "doin"}
	got, err := Map(src, simpleSchema())
	require.NoError(t, err)
	assert.Equal(t, Object{"prop1": "how", "prop2": "you", "prop3": "doin"}, got)
}

func TestMap_DefaultWhenMissing(t *testing.T) {
	schema := simpleSchema()
	schema["prop3"] = Rule{Key: "property3"}.WithDefault("doin")

	got, err := Map(Object{"property1": "how", "property2": "you"}, schema)
	require.NoError(t, err)
	assert.Equal(t, Object{"prop1": "how", "prop2": "you", "prop3": "doin"}, got)

	got, err = Map(Object{"property3": "x"}, schema)
	require.NoError(t, err)
	assert.Equal(t, "x", got.(Object)["prop3"])
}

func TestMap_DefaultNeverOverridesFalsyPresentValue(t *testing.T) {
	for _, v := range []any{false, 0, "", nil} {
		t.Run(fmt.Sprintf("%T(%v)", v, v), func(t *testing.T) {
			schema := Schema{"prop3": Rule{Key: "property3"}.WithDefault("doin")}
			got, err := MapObject(Object{"property3": v}, schema)
			require.NoError(t, err)
			assert.Equal(t, v, got["prop3"])
		})
	}
}

func TestMap_NilDefaultIsApplied(t *testing.T) {
	schema := Schema{"prop": Rule{Key: "missing"}.WithDefault(nil)}
	got, err := MapObject(Object{"other": 1}, schema)
	require.NoError(t, err)
	v, ok := got["prop"]
	require.True(t, ok)
	assert.Nil(t, v)
	assert.False(t, IsUndefined(v))
}

func TestMap_UndefinedWhenMissing(t *testing.T) {
	got, err := MapObject(Object{"property1": "how", "property2": "you"}, simpleSchema())
	require.NoError(t, err)
	v, ok := got["prop3"]
	require.True(t, ok, "missing field keeps its key")
	assert.True(t, IsUndefined(v))
	assert.Len(t, got, 3)
}

func TestMap_MissingNonRequiredDeepValue(t *testing.T) {
	schema := Schema{"prop1": {Key: "a.b.c.d"}}
	got, err := MapObject(Object{"a": nil}, schema)
	require.NoError(t, err)
	assert.True(t, IsUndefined(got["prop1"]))
}

func TestMap_RequiredMissing(t *testing.T) {
	schema := simpleSchema()
	schema["prop3"] = Rule{Key: "property3", Required: true}

	_, err := Map(Object{"property1": "how", "property2": "you"}, schema)
	require.Error(t, err)
	assert.EqualError(t, err, "field property3 is required and missing")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "prop3", verr.Field)
	assert.Equal(t, "property3", verr.Path)
}

func TestMap_RequiredFalsyPresentPasses(t *testing.T) {
	schema := Schema{
		"prop1": {Key: "property1"},
		"prop2": {Key: "property2"},
		"prop3": {Key: "property3", Required: true},
		"prop4": {Key: "property4", Required: true},
		"prop5": {Key: "property5", Required: true},
		"prop6": {Key: "property6", Required: true},
	}
	src := Object{
		"property1": "how",
		"property2": "you",
		"property3": false,
		"property4": 0,
		"property5": "",
		"property6": nil,
	}
	got, err := Map(src, schema)
	require.NoError(t, err)
	assert.Equal(t, Object{
		"prop1": "how",
		"prop2": "you",
		"prop3": false,
		"prop4": 0,
		"prop5": "",
		"prop6": nil,
	}, got)
}

func TestMap_SingleKeyHandler(t *testing.T) {
	schema := Schema{
		"prop1": {Key: "property1", Handler: func(v ...any) (any, error) {
			return fmt.Sprintf("%v, and you can't teach that", v[0]), nil
		}},
	}
	got, err := Map(Object{"property1": "6ft tall"}, schema)
	require.NoError(t, err)
	assert.Equal(t, Object{"prop1": "6ft tall, and you can't teach that"}, got)
}

func TestMap_SingleKeyHandlerReceivesDefaultAndUndefined(t *testing.T) {
	var seen []any
	record := func(v ...any) (any, error) {
		require.Len(t, v, 1)
		seen = append(seen, v[0])
		if IsUndefined(v[0]) {
			return "filled", nil
		}
		return fmt.Sprintf("%v!", v[0]), nil
	}
	schema := Schema{
		"a": Rule{Key: "missing", Handler: record}.WithDefault("dflt"),
		"b": {Key: "missing", Handler: record},
	}
	got, err := MapObject(Object{}, schema)
	require.NoError(t, err)
	assert.Equal(t, "dflt!", got["a"])
	assert.Equal(t, "filled", got["b"])
	assert.Equal(t, []any{"dflt", Undefined}, seen)
}

func TestMap_MultiKeyHandler(t *testing.T) {
	schema := Schema{
		"prop1": {
			Keys: []string{"property1", "property2", "property3", "property4", "property5"},
			Handler: func(v ...any) (any, error) {
				require.Len(t, v, 5)
				return fmt.Sprint(v[0], v[1], v[2], v[3], v[4]), nil
			},
		},
	}
	src := Object{"property1": "S", "property2": "A", "property3": "W", "property4": "F", "property5": "T"}
	got, err := Map(src, schema)
	require.NoError(t, err)
	assert.Equal(t, Object{"prop1": "SAWFT"}, got)
}

func TestMap_MultiKeyWithoutHandler(t *testing.T) {
	schema := Schema{
		"prop1": {Keys: []string{"property1", "property2", "property3", "property4", "property5"}},
	}
	src := Object{"property1": "S", "property2": "A", "property3": "W", "property4": "F", "property5": "T"}
	_, err := Map(src, schema)
	require.Error(t, err)
	assert.EqualError(t, err, "handler is required for multiple keys")

	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "prop1", cerr.Field)
}

func TestMap_MultiKeyIgnoresRequiredAndDefault(t *testing.T) {
	schema := Schema{
		"both": Rule{
			Keys:     []string{"a", "missing"},
			Required: true,
			Handler: func(v ...any) (any, error) {
				return []any{v[0], v[1]}, nil
			},
		}.WithDefault("never"),
	}
	got, err := MapObject(Object{"a": 1}, schema)
	require.NoError(t, err)
	assert.Equal(t, []any{1, Undefined}, got["both"])
}

func TestMap_KeyDefaultsToFieldName(t *testing.T) {
	schema := Schema{"property1": {}, "property2": {}, "property3": {}}
	src := Object{"property1": "how", "property2": "you", "property3": "doin"}
	got, err := Map(src, schema)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestMap_DeepDotPath(t *testing.T) {
	schema := Schema{"prop1": {Key: "s.a.w.f.t", Required: true}}
	src := Object{"s": Object{"a": Object{"w": Object{"f": Object{"t": "SAWFT"}}}}}
	got, err := Map(src, schema)
	require.NoError(t, err)
	assert.Equal(t, Object{"prop1": "SAWFT"}, got)
}

func TestMap_MultipleDeepValuesWithHandler(t *testing.T) {
	schema := Schema{
		"prop1": {
			Keys: []string{"ba.da.boom", "ba.da.bing"},
			Handler: func(v ...any) (any, error) {
				return fmt.Sprintf("%v %v", v[0], v[1]), nil
			},
		},
	}
	src := Object{"ba": Object{"da": Object{"boom": "badaboom", "bing": "badabing"}}}
	got, err := Map(src, schema)
	require.NoError(t, err)
	assert.Equal(t, Object{"prop1": "badaboom badabing"}, got)
}

func TestMap_RequiredDeepValueMissing(t *testing.T) {
	schema := Schema{"prop1": {Key: "s.a.w.f.t", Required: true}}
	for _, src := range []Object{
		{"s": Object{"a": Object{}}},
		{"s": Object{"a": nil}},
		{"s": nil},
	} {
		_, err := Map(src, schema)
		require.Error(t, err)
		assert.EqualError(t, err, "field s.a.w.f.t is required and missing")
	}
}

func TestMap_HandlerErrorAborts(t *testing.T) {
	schema := Schema{
		"ok":  {Key: "a"},
		"bad": {Key: "a", Handler: func(...any) (any, error) { return nil, errors.New("boom") }},
	}
	got, err := Map(Object{"a": 1}, schema)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestMap_NonSchemaFieldsDroppedWithoutInherit(t *testing.T) {
	src := Object{"property1": "how", "property2": "you", "property3": "doin", "property4": "dude"}
	want := Object{"prop1": "how", "prop2": "you", "prop3": "doin"}

	cases := map[string][]Option{
		"no options":         nil,
		"empty options":      {WithOptions(&Options{})},
		"nil options":        {WithOptions(nil)},
		"nil option func":    {nil},
		"inherit false":      {WithInherit(false)},
		"inherit overridden": {WithInherit(true), WithInherit(false)},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Map(src, simpleSchema(), opts...)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMap_SourceNotMutated(t *testing.T) {
	src := Object{"a": Object{"b": 1}, "c": 2}
	schema := Schema{
		"x": {Key: "a.b"},
		"y": Rule{Key: "missing"}.WithDefault(3),
	}
	_, err := Map(src, schema, WithInherit(true))
	require.NoError(t, err)
	assert.Equal(t, Object{"a": Object{"b": 1}, "c": 2}, src)
}

func TestMap_NonObjectTruthySource(t *testing.T) {
	schema := Schema{"a": {}, "b": Rule{}.WithDefault("d")}
	got, err := Map(42, schema, WithInherit(true))
	require.NoError(t, err)
	obj := got.(Object)
	assert.True(t, IsUndefined(obj["a"]))
	assert.Equal(t, "d", obj["b"])
	assert.Len(t, obj, 2)
}

func TestMapObject_Nil(t *testing.T) {
	got, err := MapObject(nil, simpleSchema())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMapper_Reusable(t *testing.T) {
	m := New(simpleSchema(), WithInherit(true))
	assert.True(t, m.Options().Inherit)

	a, err := m.MapObject(Object{"property1": "a", "extra": 1})
	require.NoError(t, err)
	b, err := m.MapObject(Object{"property1": "b", "other": 2})
	require.NoError(t, err)

	assert.Equal(t, "a", a["prop1"])
	assert.Equal(t, 1, a["extra"])
	assert.NotContains(t, a, "other")
	assert.Equal(t, "b", b["prop1"])
	assert.Equal(t, 2, b["other"])
}

func TestMapper_SchemaCopiedOnNew(t *testing.T) {
	keys := []string{"a", "b"}
	schema := Schema{"x": {Keys: keys, Handler: func(v ...any) (any, error) { return v, nil }}}
	m := New(schema)
	keys[0] = "changed"
	delete(schema, "x")

	got, err := m.MapObject(Object{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got["x"])
}

func TestMapSlice(t *testing.T) {
	schema := Schema{"id": {Key: "ID", Required: true}}
	got, err := MapSlice([]any{Object{"ID": 1}, nil, Object{"ID": 2}}, schema)
	require.NoError(t, err)
	assert.Equal(t, []any{Object{"id": 1}, nil, Object{"id": 2}}, got)

	_, err = MapSlice([]any{Object{"ID": 1}, Object{}}, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping element 1")
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestSchema_Validate(t *testing.T) {
	assert.NoError(t, simpleSchema().Validate())

	err := Schema{"ok": {}, "bad": {Keys: []string{"a"}}}.Validate()
	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "bad", cerr.Field)
}
