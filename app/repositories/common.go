package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix      = "user:"
	UserEmailKeyPrefix = "user_email:"
	PostKeyPrefix      = "post:"
	CommentKeyPrefix   = "comment:"
	LikeKeyPrefix      = "like:"
	SessionKeyPrefix   = "session:"
	VerifyKeyPrefix    = "verify:"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// entityKey builds the badger key for an entity id under the given prefix.
func entityKey(prefix, id string) []byte {
	return []byte(prefix + id)
}

// likeKey builds the composite key enforcing one like per (user, post).
func likeKey(postID, userID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", LikeKeyPrefix, postID, userID))
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
