package service

import "feedback_app/internal/models"

// RequireLogin allows any authenticated session.
func RequireLogin(sess *models.Session) error {
	if sess == nil || sess.Username == "" {
		return ErrNotLoggedIn
	}
	return nil
}

// RequireOwner allows only the session whose username equals owner.
func RequireOwner(sess *models.Session, owner string) error {
	if err := RequireLogin(sess); err != nil {
		return err
	}
	return requireActor(sess.Username, owner)
}

func requireActor(actor, owner string) error {
	if actor == "" {
		return ErrNotLoggedIn
	}
	if actor != owner {
		return ErrNotOwner
	}
	return nil
}
