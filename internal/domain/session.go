package domain

// Session is the transient authentication state. It is rehydrated from the
// persisted current-user record at startup and cleared on logout.
type Session struct {
	CurrentUser *User
	IsLoggedIn  bool
}
