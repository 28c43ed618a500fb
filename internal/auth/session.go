package auth

import (
	"errors"

	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/storage"
)

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNotLoggedIn is returned when a mutating operation runs without a
// session. Reads never require one: the original shows the calendar to
// anonymous visitors.
var ErrNotLoggedIn = errors.New("not logged in, run 'mantcal login' first")

// Login checks credentials against the user directory and records the
// session under the currentUser key, password excluded.
func Login(store storage.Provider, username, password string) (models.Session, error) {
	user, ok := store.User(username)
	if !ok || user.Password != password {
		return models.Session{}, ErrInvalidCredentials
	}
	sess := models.Session{
		Username: user.Username,
		Role:     user.Role,
		Plant:    user.Plant,
		Name:     user.Name,
	}
	if err := store.SetSession(&sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Logout clears the recorded session.
func Logout(store storage.Provider) error {
	return store.SetSession(nil)
}

// Require returns the active session, or ErrNotLoggedIn.
func Require(store storage.Provider) (models.Session, error) {
	sess, ok := store.Session()
	if !ok {
		return models.Session{}, ErrNotLoggedIn
	}
	return sess, nil
}

// RequireAction returns the active session if it may perform the action;
// otherwise a permission error.
func RequireAction(store storage.Provider, action Action, entity Entity) (models.Session, error) {
	sess, err := Require(store)
	if err != nil {
		return models.Session{}, err
	}
	if !Can(sess.Role, action, entity) {
		return models.Session{}, errors.New("not permitted for role " + string(sess.Role))
	}
	return sess, nil
}
