package domain

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "danger"
	FlashInfo    FlashLevel = "info"
)

type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// Session is the per-request state carried between requests by a session store.
// A zero UserID means the visitor is anonymous.
type Session struct {
	UserID  uint64
	Flashes []Flash
	dirty   bool
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

func (s *Session) Login(userID uint64) {
	s.UserID = userID
	s.dirty = true
}

func (s *Session) Logout() {
	s.UserID = 0
	s.dirty = true
}

func (s *Session) AddFlash(level FlashLevel, message string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
	s.dirty = true
}

// PopFlashes returns the pending flashes and forgets them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	if len(flashes) > 0 {
		s.Flashes = nil
		s.dirty = true
	}
	return flashes
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}
