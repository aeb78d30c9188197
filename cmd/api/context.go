package main

import (
	"context"
	"net/http"

	"castingagency/internal/data"
)

// custom `string` type to help prevent key collisions
type contextKey string

const (
	requestIDContextKey   = contextKey("request_id")
	permissionsContextKey = contextKey("permissions")
)

func (app *application) contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetRequestID returns "" for requests that never went through the requestID middleware
func (app *application) contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

func (app *application) contextSetPermissions(r *http.Request, permissions data.Permissions) *http.Request {
	ctx := context.WithValue(r.Context(), permissionsContextKey, permissions)
	return r.WithContext(ctx)
}

// the bool is false for anonymous requests
func (app *application) contextGetPermissions(r *http.Request) (data.Permissions, bool) {
	permissions, ok := r.Context().Value(permissionsContextKey).(data.Permissions)
	return permissions, ok
}
