package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/frahmantamala/hrm/internal"
	"github.com/google/uuid"
)

// Section is one of the record screens an operator can switch to.
type Section string

const (
	SectionEmployee   Section = "Employee Details"
	SectionDepartment Section = "Department"
	SectionSalary     Section = "Salary"
	SectionAttendance Section = "Attendance"
	SectionLeave      Section = "Leave Management"
	SectionRules      Section = "Rules"

	DefaultSection = SectionDepartment
)

var Sections = []Section{
	SectionEmployee,
	SectionDepartment,
	SectionSalary,
	SectionAttendance,
	SectionLeave,
	SectionRules,
}

// ParseSection accepts a section name, ignoring case and surrounding space.
func ParseSection(name string) (Section, error) {
	name = strings.TrimSpace(name)
	for _, s := range Sections {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", internal.NewValidationFieldError("section", "unknown section: "+name, internal.ErrCodeInvalidSection)
}

// Session is the state of one logged-in operator.
type Session struct {
	ID            string
	Authenticated bool
	Section       Section
	StartedAt     time.Time
	ExpiresAt     time.Time
}

// SessionStore keeps the single live session. Starting a new one ends the
// previous one.
type SessionStore struct {
	mu      sync.Mutex
	current *Session
	ttl     time.Duration
	now     func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{ttl: ttl, now: time.Now}
}

func (s *SessionStore) Start() Session {
	now := s.now()
	sess := &Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		Section:       DefaultSection,
		StartedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return *sess
}

// Get returns the session with id if it is the live one and has not expired.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != id || !s.current.Authenticated {
		return Session{}, false
	}
	if !s.now().Before(s.current.ExpiresAt) {
		s.current = nil
		return Session{}, false
	}
	return *s.current, true
}

// End tears down the session with id. Ending an unknown session is a no-op.
func (s *SessionStore) End(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != id {
		return Session{}, false
	}
	ended := *s.current
	ended.Authenticated = false
	s.current = nil
	return ended, true
}

// EndAll drops the live session, whatever its id.
func (s *SessionStore) EndAll() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *SessionStore) SelectSection(id string, section Section) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != id || !s.current.Authenticated {
		return Session{}, internal.ErrSessionEnded
	}
	s.current.Section = section
	return *s.current, nil
}
