package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Notes Field[string] `json:"notes"`
	Phone Field[string] `json:"phone"`
	Count Field[int]    `json:"count"`
}

func TestField_UnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"notes": "hello", "phone": null}`), &p))

	assert.True(t, p.Notes.IsSet())
	assert.True(t, p.Notes.HasValue())
	assert.Equal(t, "hello", p.Notes.Value)

	assert.True(t, p.Phone.IsSet())
	assert.False(t, p.Phone.HasValue())
	assert.Nil(t, p.Phone.Ptr())

	assert.False(t, p.Count.IsSet())
}

func TestField_EmptyStringIsAValue(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"notes": ""}`), &p))

	require.True(t, p.Notes.HasValue())
	require.NotNil(t, p.Notes.Ptr())
	assert.Equal(t, "", *p.Notes.Ptr())
}

func TestField_InvalidValue(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"count": "ten"}`), &p)
	assert.Error(t, err)
}

func TestField_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Field[int] `json:"a"`
		B Field[int] `json:"b"`
	}{A: Of(5), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 5, "b": null}`, string(out))
}
