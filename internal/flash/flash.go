// Package flash carries one-shot notices across the redirect that follows
// every mutating request.
package flash

import (
	"crypto/sha256"
	"encoding/gob"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// SessionName is the name of the notice cookie.
const SessionName = "heritage-flash"

// MaxMessageRunes caps a stored notice so the encoded cookie stays well
// under the 4KB browser limit.
const MaxMessageRunes = 400

// Notice kinds, matching the page alert styles.
const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

// Notice is one message shown once on the next rendered page.
type Notice struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Notice{})
}

// Store reads and writes notices in a signed cookie.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a notice store. The secret can be any passphrase; it is
// SHA-256 hashed into the 32-byte signing key.
func NewStore(secret string, secure bool) *Store {
	key := sha256.Sum256([]byte(secret))

	cookies := sessions.NewCookieStore(key[:])
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}
}

// Add queues a notice for the next page. A tampered or expired cookie is
// replaced rather than reported.
func (s *Store) Add(c *gin.Context, kind, message string) error {
	session, _ := s.cookies.Get(c.Request, SessionName)
	session.AddFlash(Notice{Kind: kind, Message: truncate(message, MaxMessageRunes)})
	return session.Save(c.Request, c.Writer)
}

// Pop returns and clears the queued notices.
func (s *Store) Pop(c *gin.Context) []Notice {
	session, err := s.cookies.Get(c.Request, SessionName)
	if err != nil || session.IsNew {
		return nil
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	_ = session.Save(c.Request, c.Writer)

	notices := make([]Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}

// truncate shortens s to at most max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
