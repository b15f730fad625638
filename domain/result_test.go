package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeSuccessCarriesOnlyData(t *testing.T) {
	res := Envelope(DeletedResponse{ID: 3}, nil, MessageFailedDeleteRecipe)

	assert.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, uint(3), res.Data.ID)
	assert.Empty(t, res.Message)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "message")
}

func TestEnvelopeFailureMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"validation", NewValidationError("title is required"), "title is required"},
		{"not found", ErrRecipeNotFound, "no recipe with that ID found"},
		{"conflict", NewConflictError("instruction order 2 already exists"), "instruction order 2 already exists"},
		{"upstream", &UpstreamError{Kind: UpstreamNoRecipe, Message: "no recipe on that page"}, "no recipe on that page"},
		{"upstream without message", &UpstreamError{Kind: UpstreamAmbiguousData}, "ambiguous_data"},
		{"transaction hides store error", &TransactionError{Op: "digest", Err: errors.New("pq: deadlock")}, MessageFailedDigestRecipe},
		{"unknown hides error", errors.New("dial tcp: refused"), MessageFailedDigestRecipe},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Envelope(Recipe{}, tc.err, MessageFailedDigestRecipe)

			assert.False(t, res.Success)
			assert.Nil(t, res.Data)
			assert.Equal(t, tc.want, res.Message)

			raw, err := json.Marshal(res)
			require.NoError(t, err)
			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.NotContains(t, body, "data")
			assert.Equal(t, tc.want, body["message"])
		})
	}
}

func TestFailNeverEmitsEmptyMessage(t *testing.T) {
	res := Fail[Recipe]("")
	assert.False(t, res.Success)
	assert.Equal(t, MessageFailedProcessRequest, res.Message)
}

func TestWrappedErrorsKeepTheirKind(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrIngredientNotFound)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
	assert.False(t, IsValidation(wrapped))
}
