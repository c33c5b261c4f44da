package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestItemCreateMissing(t *testing.T) {
	complete := ItemCreate{UserID: strptr("u1"), Name: strptr("Widget"), Price: strptr("9.99")}
	assert.Empty(t, complete.Missing())

	assert.Equal(t, []string{"user_id", "name", "price"}, ItemCreate{}.Missing())
	assert.Equal(t, []string{"price"}, ItemCreate{UserID: strptr("u1"), Name: strptr("Widget")}.Missing())
}

func TestItemCreateEmptyStringIsPresent(t *testing.T) {
	// An explicit empty string satisfies the presence check; only a missing
	// key counts as absent.
	in := ItemCreate{UserID: strptr(""), Name: strptr(""), Price: strptr("")}
	assert.Empty(t, in.Missing())
	assert.Equal(t, Item{}, in.Item())
}

func TestItemCreateUnmarshalPresence(t *testing.T) {
	var in ItemCreate
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u1","price":""}`), &in))
	assert.Equal(t, []string{"name"}, in.Missing())
	require.NotNil(t, in.Price)
	assert.Equal(t, "", *in.Price)
}

func TestItemUpdateIsEmpty(t *testing.T) {
	assert.True(t, ItemUpdate{}.IsEmpty())
	assert.False(t, ItemUpdate{Price: strptr("12.00")}.IsEmpty())
	assert.False(t, ItemUpdate{Name: strptr("")}.IsEmpty())
}

func TestItemUpdateUnmarshalDistinguishesOmittedFromSet(t *testing.T) {
	var omitted ItemUpdate
	require.NoError(t, json.Unmarshal([]byte(`{}`), &omitted))
	assert.True(t, omitted.IsEmpty())

	var set ItemUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &set))
	assert.False(t, set.IsEmpty())
}

func TestItemUpdateApply(t *testing.T) {
	it := Item{ID: "id-1", UserID: "u1", Name: "Widget", Price: "9.99"}

	ItemUpdate{Price: strptr("12.00")}.Apply(&it)
	assert.Equal(t, Item{ID: "id-1", UserID: "u1", Name: "Widget", Price: "12.00"}, it)

	ItemUpdate{UserID: strptr("u2"), Name: strptr("Gadget")}.Apply(&it)
	assert.Equal(t, Item{ID: "id-1", UserID: "u2", Name: "Gadget", Price: "12.00"}, it)
}
