package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullValue(t *testing.T) {
	type payload struct {
		Notes Optional[string] `json:"notes"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Notes.Present)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &null))
	assert.True(t, null.Notes.Present)
	assert.True(t, null.Notes.Null)
	assert.Nil(t, null.Notes.Ptr())

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"notes":"washed"}`), &set))
	assert.True(t, set.Notes.Present)
	assert.False(t, set.Notes.Null)
	require.NotNil(t, set.Notes.Ptr())
	assert.Equal(t, "washed", *set.Notes.Ptr())
}

func TestDateRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-31"`), &d))
	assert.Equal(t, 2026, d.Time.Year())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-31"`, string(out))
}
