package service

import (
	"strconv"

	"github.com/dtroode/storefront/internal/model"
)

// requireAuthenticated returns the sign-in redirect for anonymous sessions.
func requireAuthenticated(st *model.SessionState) (model.Result, bool) {
	if st == nil || !st.IsAuthenticated() {
		return model.Redirect(model.RouteSignIn), false
	}
	return model.Result{}, true
}

// parseID parses a client-supplied entity id. Anything that is not a
// positive integer cannot name a stored row.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
