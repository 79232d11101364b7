package repositories

import (
	"github.com/8adiq/basic-user/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerLikeRepository implements LikeRepository using BadgerDB. The
// composite key like:<postID>:<userID> enforces one like per user per post.
type BadgerLikeRepository struct {
	db *badger.DB
}

// NewBadgerLikeRepository creates a new BadgerLikeRepository
func NewBadgerLikeRepository(db *badger.DB) *BadgerLikeRepository {
	return &BadgerLikeRepository{db: db}
}

// Create stores a like, failing with ErrDuplicate if the user already
// liked the post.
func (r *BadgerLikeRepository) Create(like *models.Like) error {
	like.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		key := likeKey(like.PostID, like.UserID)

		_, err := txn.Get(key)
		if err == nil {
			return ErrDuplicate
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := marshalEntity(like)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// GetByPostAndUser retrieves a single like for a (post, user) pair
func (r *BadgerLikeRepository) GetByPostAndUser(postID, userID string) (*models.Like, error) {
	var like models.Like

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(likeKey(postID, userID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &like)
		})
	})

	if err != nil {
		return nil, err
	}
	return &like, nil
}

// ListByPost retrieves all likes recorded for a post
func (r *BadgerLikeRepository) ListByPost(postID string) ([]*models.Like, error) {
	var likes []*models.Like

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(LikeKeyPrefix + postID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var like models.Like
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &like)
			})
			if err != nil {
				return err
			}
			likes = append(likes, &like)
		}
		return nil
	})

	return likes, err
}

// Delete removes a user's like from a post
func (r *BadgerLikeRepository) Delete(postID, userID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := likeKey(postID, userID)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
