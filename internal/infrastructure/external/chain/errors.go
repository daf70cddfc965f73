package chain

import (
	"errors"
	"net/http"
)

// IsConflict checks if the error is a 409 conflict
func IsConflict(err error) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.StatusCode == http.StatusConflict
	}
	return false
}

// Is4xxError checks if the error is a 4xx client error
func Is4xxError(err error) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.StatusCode >= 400 && gwErr.StatusCode < 500
	}
	return false
}

// Is5xxError checks if the error is a 5xx server error
func Is5xxError(err error) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.StatusCode >= 500 && gwErr.StatusCode < 600
	}
	return false
}
