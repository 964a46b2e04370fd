package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("api.base_url", "must be a url", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "api.base_url", validationErr.Field)
	require.Contains(t, err.Error(), "api.base_url")
}

func TestNetworkErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("dial tcp: connection refused")
	err := NewNetworkError("login", underlying)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, "login", netErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestAPIErrorDefaultsMessage(t *testing.T) {
	t.Parallel()

	err := NewAPIError(http.StatusInternalServerError, "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, FallbackAPIMessage, apiErr.Message)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestStorageErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewStorageError("write", "root", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "root", storageErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "write root")
}

func TestReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "api message", err: NewAPIError(http.StatusBadRequest, "Invalid credentials"), want: "Invalid credentials"},
		{name: "api without message", err: &APIError{Status: http.StatusBadGateway}, want: FallbackAPIMessage},
		{name: "wrapped api", err: fmt.Errorf("login: %w", NewAPIError(http.StatusBadRequest, "Invalid credentials")), want: "Invalid credentials"},
		{name: "network", err: NewNetworkError("products", stdErrors.New("timeout")), want: NetworkMessage},
		{name: "validation", err: NewValidationError("username", "Please enter username and password", nil), want: "Please enter username and password"},
		{name: "plain", err: stdErrors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Reason(tt.err))
		})
	}
}

func TestParseErrorIncludesLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("/home/u/.storefront/config.yaml", 4, fmt.Errorf("yaml: line 4: did not find expected key"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 4, parseErr.Line)
	require.Contains(t, err.Error(), "config.yaml:4")

	noLine := NewParseError("config.yaml", 0, stdErrors.New("empty"))
	require.Equal(t, "parse error: config.yaml: empty", noLine.Error())
}
