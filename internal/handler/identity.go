package handler

import "net/http"

// Identity supplies the acting user id when a request does not name one.
type Identity interface {
	UserID(r *http.Request) string
}

// DefaultIdentity always acts as the same user.
type DefaultIdentity struct {
	ID string
}

func (d DefaultIdentity) UserID(*http.Request) string {
	return d.ID
}

// actingUserID prefers an explicit id, even an empty one, over the default.
func actingUserID(identity Identity, r *http.Request, explicit *string) string {
	if explicit != nil {
		return *explicit
	}
	return identity.UserID(r)
}
