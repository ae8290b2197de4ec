//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyMutation edits a request body that was round-tripped through JSON.
type BodyMutation func(m map[string]any)

// Field sets key to value; a nil value drops the key so the request
// arrives with the field missing.
func Field(key string, value any) BodyMutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// DtoMap turns a request DTO into the map the handler tests send, so
// individual fields can be broken without a dedicated struct per case.
func DtoMap(t *testing.T, v any, muts ...BodyMutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}
