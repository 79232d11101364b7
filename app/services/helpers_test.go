package services

import (
	"sync"
	"testing"

	"github.com/8adiq/basic-user/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// captureMailer records the last verification token issued per email
// instead of delivering anything.
type captureMailer struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newCaptureMailer() *captureMailer {
	return &captureMailer{tokens: make(map[string]string)}
}

func (m *captureMailer) SendVerification(email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[email] = token
	return nil
}

func (m *captureMailer) tokenFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[email]
}

func newTestAuthService(t *testing.T) (*AuthService, *captureMailer) {
	db := setupTestDB(t)
	mailer := newCaptureMailer()
	auth := NewAuthService(
		repositories.NewBadgerUserRepository(db),
		repositories.NewBadgerSessionRepository(db),
		repositories.NewBadgerVerificationTokenRepository(db),
		mailer,
	)
	return auth, mailer
}
