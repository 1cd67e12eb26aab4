package domain

// Account is a directory entry. Password is kept verbatim: the persisted
// directory layout has no hashing.
type Account struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// Session is the public projection of the authenticated account.
type Session struct {
	ID    string
	Name  string
	Email string
}

func (a Account) Session() Session {
	return Session{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

// AuthState is what navigation chrome reads to decide between anonymous and
// signed-in views.
type AuthState struct {
	Session *Session
}

func (s AuthState) IsAuthenticated() bool {
	return s.Session != nil
}
