package models

// Session is the authenticated client identity: who the user is plus the
// bearer token that proves it. Invariant: Token and UserID are either both
// set or both empty; the session service enforces this when persisting and
// clearing sessions.
type Session struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Token       string `json:"-"`
}

// Authenticated reports whether the session carries a usable identity.
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.Token != ""
}
