package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/state"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func TestLoginRejectsBlankFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{name: "both empty", wantField: "username"},
		{name: "blank username", username: "   ", password: "emilyspass", wantField: "username"},
		{name: "blank password", username: "emilys", password: "\t", wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Login(tt.username, tt.password)
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, "Please enter username and password", apperrors.Reason(err))
		})
	}
}

func TestLoginPassesValuesThrough(t *testing.T) {
	t.Parallel()

	creds, err := Login(" emilys", "emilyspass ")
	require.NoError(t, err)
	assert.Equal(t, state.Credentials{Username: " emilys", Password: "emilyspass "}, creds)
}

func TestSearchQuery(t *testing.T) {
	t.Parallel()

	q, ok := SearchQuery("  phone ")
	assert.True(t, ok)
	assert.Equal(t, "phone", q)

	_, ok = SearchQuery("   ")
	assert.False(t, ok)
}
