package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntAcceptsLooseInput(t *testing.T) {
	cases := map[string]FlexInt{
		`5`:     Int(5),
		`"12"`:  Int(12),
		`" "`:   {},
		`null`:  {},
		`true`:  Int(1),
		`false`: Int(0),
	}
	for in, want := range cases {
		var got FlexInt
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, want, got, in)
	}

	var bad FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &bad))
}

func TestFlexFlag(t *testing.T) {
	cases := map[string]any{
		`true`:  1,
		`0`:     0,
		`"YES"`: 1,
		`"no"`:  0,
		`""`:    nil,
		`null`:  nil,
	}
	for in, want := range cases {
		var f FlexFlag
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, f.Arg(), in)
	}
	var f FlexFlag
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`2`), &f))
}

func TestIDList(t *testing.T) {
	cases := map[string]string{
		`7`:          "7",
		`"1, 2,3"`:   "1,2,3",
		`[4,"5", 6]`: "4,5,6",
		`null`:       "",
		`[]`:         "",
	}
	for in, want := range cases {
		var l IDList
		require.NoError(t, json.Unmarshal([]byte(in), &l), in)
		assert.Equal(t, want, l.String(), in)
	}
}

func TestFilterInputAbsentVersusZero(t *testing.T) {
	var in FilterInput
	require.NoError(t, json.Unmarshal([]byte(`{"departmentId":0,"cityId":null}`), &in))
	assert.True(t, in.DepartmentID.Valid)
	assert.False(t, in.CityID.Valid)
	assert.False(t, in.StateID.Valid)
}
