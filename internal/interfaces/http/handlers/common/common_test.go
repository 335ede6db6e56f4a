package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableUint(t *testing.T) {
	type body struct {
		PrimaryMechanicID NullableUint `json:"primary_mechanic_id"`
	}

	var absent body
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.PrimaryMechanicID.Set)

	var cleared body
	require.NoError(t, json.Unmarshal([]byte(`{"primary_mechanic_id": null}`), &cleared))
	assert.True(t, cleared.PrimaryMechanicID.Set)
	assert.Nil(t, cleared.PrimaryMechanicID.Value)

	var set body
	require.NoError(t, json.Unmarshal([]byte(`{"primary_mechanic_id": 7}`), &set))
	assert.True(t, set.PrimaryMechanicID.Set)
	require.NotNil(t, set.PrimaryMechanicID.Value)
	assert.Equal(t, uint(7), *set.PrimaryMechanicID.Value)

	var bad body
	assert.Error(t, json.Unmarshal([]byte(`{"primary_mechanic_id": "x"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"primary_mechanic_id": -1}`), &bad))
}
