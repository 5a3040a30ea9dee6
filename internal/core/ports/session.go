package ports

import (
	"net/http"

	"taskmanager/internal/core/domain"
)

// SessionStore persists a domain.Session between requests.
type SessionStore interface {
	// Load always returns a usable session. A tampered or expired session comes back
	// anonymous together with the reason it was rejected.
	Load(r *http.Request) (*domain.Session, error)
	Save(w http.ResponseWriter, session *domain.Session) error
}
