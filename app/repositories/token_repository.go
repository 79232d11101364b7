package repositories

import (
	"time"

	"github.com/8adiq/basic-user/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerSessionRepository implements SessionRepository using BadgerDB.
// Sessions are written with a badger TTL so expired tokens vanish on
// their own.
type BadgerSessionRepository struct {
	db *badger.DB
}

// NewBadgerSessionRepository creates a new BadgerSessionRepository
func NewBadgerSessionRepository(db *badger.DB) *BadgerSessionRepository {
	return &BadgerSessionRepository{db: db}
}

// Create stores a session that expires after ttl
func (r *BadgerSessionRepository) Create(session *models.Session, ttl time.Duration) error {
	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(session)
		if err != nil {
			return err
		}
		entry := badger.NewEntry(entityKey(SessionKeyPrefix, session.Token), data).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// GetByToken retrieves a live session by its bearer token
func (r *BadgerSessionRepository) GetByToken(token string) (*models.Session, error) {
	var session models.Session

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(SessionKeyPrefix, token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &session)
		})
	})

	if err != nil {
		return nil, err
	}

	// The TTL already evicts expired sessions; the explicit check covers
	// clock skew between write and eviction.
	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &session, nil
}

// Delete removes a session, logging the bearer out
func (r *BadgerSessionRepository) Delete(token string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(entityKey(SessionKeyPrefix, token))
	})
}

// BadgerVerificationTokenRepository implements VerificationTokenRepository
// using BadgerDB. Tokens are single-use: Consume deletes the record in the
// same transaction that reads it.
type BadgerVerificationTokenRepository struct {
	db *badger.DB
}

// NewBadgerVerificationTokenRepository creates a new BadgerVerificationTokenRepository
func NewBadgerVerificationTokenRepository(db *badger.DB) *BadgerVerificationTokenRepository {
	return &BadgerVerificationTokenRepository{db: db}
}

// Create stores a verification token that expires after ttl
func (r *BadgerVerificationTokenRepository) Create(token *models.VerificationToken, ttl time.Duration) error {
	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(token)
		if err != nil {
			return err
		}
		entry := badger.NewEntry(entityKey(VerifyKeyPrefix, token.Token), data).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// Consume atomically reads and deletes a verification token. A second
// Consume of the same token fails with ErrNotFound.
func (r *BadgerVerificationTokenRepository) Consume(token string) (*models.VerificationToken, error) {
	var record models.VerificationToken

	err := r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(VerifyKeyPrefix, token)
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &record)
		}); err != nil {
			return err
		}

		return txn.Delete(key)
	})

	if err != nil {
		return nil, err
	}

	if !record.ExpiresAt.IsZero() && time.Now().After(record.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &record, nil
}
