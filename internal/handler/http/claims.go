package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// actorFromRequest resolves the display name of the authenticated user for
// the approval audit fields, falling back to the user id when the token
// carries no name.
func actorFromRequest(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		return name
	}
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}
