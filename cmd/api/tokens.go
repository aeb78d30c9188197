package main

import (
	"errors"
	"fmt"

	"castingagency/internal/data"

	"github.com/golang-jwt/jwt/v5"
)

var errUnknownRole = errors.New("token carries no known role or permissions")

// authClaims is the payload of a bearer token. An explicit permissions list
// takes precedence over role.
type authClaims struct {
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

func (app *application) permissionsFromToken(tokenString string) (data.Permissions, error) {
	claims := &authClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(app.config.jwt.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if len(claims.Permissions) > 0 {
		permissions := make(data.Permissions, 0, len(claims.Permissions))
		for _, p := range claims.Permissions {
			permissions = append(permissions, data.Permission(p))
		}
		return permissions, nil
	}

	permissions, ok := data.RolePermissions(claims.Role)
	if !ok {
		return nil, errUnknownRole
	}

	return permissions, nil
}
