package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesInsertionOrder(t *testing.T) {
	p := NewProperties()
	p.Set("State", "PRIMARY")
	p.Set("Control Channel", "ent6")
	p.Set("PVID", "1")

	assert.Equal(t, []string{"State", "Control Channel", "PVID"}, p.Keys())
	assert.Equal(t, 3, p.Len())
}

func TestPropertiesOverwriteKeepsPosition(t *testing.T) {
	p := NewProperties()
	p.Set("PVID", "1")
	p.Set("State", "PRIMARY")
	p.Set("PVID", "99")

	assert.Equal(t, []string{"PVID", "State"}, p.Keys())
	v, ok := p.Get("PVID")
	require.True(t, ok)
	assert.Equal(t, "99", v)
}

func TestPropertiesGetMissing(t *testing.T) {
	p := NewProperties()
	_, ok := p.Get("nope")
	assert.False(t, ok)
}

func TestPropertiesMarshalOrder(t *testing.T) {
	p := NewProperties()
	p.Set("zeta", "1")
	p.Set("alpha", "2")
	p.Set("mid: dle", `va"lue`)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"1","alpha":"2","mid: dle":"va\"lue"}`, string(data))
}

func TestPropertiesUnmarshalPreservesOrder(t *testing.T) {
	var p Properties
	err := json.Unmarshal([]byte(`{"zeta":"1","alpha":"2"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha"}, p.Keys())
	v, _ := p.Get("alpha")
	assert.Equal(t, "2", v)
}

func TestPropertiesRoundTrip(t *testing.T) {
	p := NewProperties()
	p.Set("State", "PRIMARY")
	p.Set("Control Channel", "ent6")

	data, err := json.Marshal(p)
	require.NoError(t, err)

	out := NewProperties()
	require.NoError(t, json.Unmarshal(data, out))
	assert.Equal(t, p, out)
}

func TestPropertiesUnmarshalRejectsNonObject(t *testing.T) {
	var p Properties
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &p))
}

func TestPropertiesEmptyMarshal(t *testing.T) {
	data, err := json.Marshal(NewProperties())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
