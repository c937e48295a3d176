package mixvel

import (
	"fmt"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

var endpoints = map[schema.OperationName]string{
	schema.Auth:          "/api/Accounts/login",
	schema.AirShopping:   "/api/Order/AirShopping",
	schema.OrderCreate:   "/api/Order/Create",
	schema.OrderRetrieve: "/api/Order/Retrieve",
	schema.OrderChange:   "/api/Order/Change",
	schema.OrderCancel:   "/api/Order/Cancel",
}

func endpoint(operation schema.OperationName) (string, error) {
	path, ok := endpoints[operation]
	if !ok {
		return "", fmt.Errorf("unknown operation: %s", operation)
	}
	return path, nil
}

// isAuthenticated reports whether the operation needs a bearer token.
func isAuthenticated(operation schema.OperationName) bool {
	return operation != schema.Auth
}
