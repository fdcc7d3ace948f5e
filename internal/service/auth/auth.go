package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// ErrNotApproved is returned when the email is not on the allow list.
var ErrNotApproved = errors.New("email not approved")

// Service authorizes users against a fixed email allow list and issues
// opaque session tokens. Comparison is case-insensitive.
type Service struct {
	approved map[string]struct{}
	now      func() time.Time
}

// NewService builds the allow list from config. Entries are trimmed and
// lowercased; blanks are dropped.
func NewService(emails []string) *Service {
	approved := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			approved[e] = struct{}{}
		}
	}
	return &Service{approved: approved, now: time.Now}
}

// Authorize checks the email against the allow list and returns a session
// token on success.
func (s *Service) Authorize(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, ok := s.approved[normalized]; !ok {
		return "", ErrNotApproved
	}
	sum := sha256.Sum256([]byte(normalized + s.now().Format(time.RFC3339Nano)))
	return hex.EncodeToString(sum[:]), nil
}
