package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue_Presence(t *testing.T) {
	tests := []struct {
		name      string
		value     Value[string]
		isPresent bool
		want      string
	}{
		{"zero value is absent", Value[string]{}, false, ""},
		{"None is absent", None[string](), false, ""},
		{"Of is present", Of("alice"), true, "alice"},
		{"empty string is present", Of(""), true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isPresent, tc.value.IsPresent())

			got, ok := tc.value.Get()
			assert.Equal(t, tc.isPresent, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValue_OrElse(t *testing.T) {
	assert.Equal(t, "fallback", None[string]().OrElse("fallback"))
	assert.Equal(t, "", Of("").OrElse("fallback"))
	assert.Equal(t, "set", Of("set").OrElse("fallback"))
}

func TestValue_Ptr(t *testing.T) {
	assert.Nil(t, None[string]().Ptr())

	v := Of("0644")
	p := v.Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "0644", *p)

	*p = "0000"
	got, _ := v.Get()
	assert.Equal(t, "0644", got, "Ptr must return a copy")
}

func TestFromPtr(t *testing.T) {
	assert.False(t, FromPtr[string](nil).IsPresent())

	s := "staff"
	v := FromPtr(&s)
	assert.True(t, v.IsPresent())
	assert.Equal(t, "staff", v.OrElse(""))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "<absent>", None[string]().String())
	assert.Equal(t, "bob", Of("bob").String())
	assert.Equal(t, "", Of("").String())
}

func TestValue_JSON(t *testing.T) {
	type payload struct {
		User  Value[string] `json:"user"`
		Group Value[string] `json:"group"`
	}

	data, err := json.Marshal(payload{User: Of("alice")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":"alice","group":null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"user":"","group":null}`), &decoded))
	assert.True(t, decoded.User.IsPresent())
	assert.False(t, decoded.Group.IsPresent())
}

func TestValue_YAML(t *testing.T) {
	type payload struct {
		User  Value[string] `yaml:"user"`
		Group Value[string] `yaml:"group"`
	}

	data, err := yaml.Marshal(payload{User: Of("alice")})
	require.NoError(t, err)
	assert.Contains(t, string(data), "user: alice")
	assert.Contains(t, string(data), "group: null")
}
