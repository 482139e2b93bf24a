package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokesapi/src/core/domain"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestValidateNew(t *testing.T) {
	tests := []struct {
		name   string
		fields domain.JokeFields
		field  string
	}{
		{"complete", domain.JokeFields{Type: intPtr(3), Setup: strPtr("S"), Punchline: strPtr("P")}, ""},
		{"type zero is present", domain.JokeFields{Type: intPtr(0), Setup: strPtr("S"), Punchline: strPtr("P")}, ""},
		{"missing type", domain.JokeFields{Setup: strPtr("S"), Punchline: strPtr("P")}, "type"},
		{"missing setup", domain.JokeFields{Type: intPtr(1), Punchline: strPtr("P")}, "setup"},
		{"blank punchline", domain.JokeFields{Type: intPtr(1), Setup: strPtr("S"), Punchline: strPtr("  ")}, "punchline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNew(tt.fields)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))

			se := domain.AsStoreError(err)
			assert.Equal(t, tt.field, se.Field)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	require.NoError(t, validatePatch(domain.JokeFields{}))
	require.NoError(t, validatePatch(domain.JokeFields{Punchline: strPtr("new")}))

	err := validatePatch(domain.JokeFields{Setup: strPtr("")})
	require.Error(t, err)
	assert.Equal(t, "setup", domain.AsStoreError(err).Field)
}
