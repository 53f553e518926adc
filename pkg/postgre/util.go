package postgre

import (
	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
)

// IsUUID validates if the given string is a valid UUID.
func IsUUID(u string) error {
	if u == "" {
		return errors.Wrap(ErrInvalidUUID, "UUID cannot be empty")
	}
	if _, err := uuid.Parse(u); err != nil {
		return errors.Wrap(ErrInvalidUUID, err.Error())
	}
	return nil
}

// NewUUID generates a new UUID string.
func NewUUID() string {
	return uuid.New().String()
}

// ValidateUUIDs validates a slice of UUID strings.
func ValidateUUIDs(ids []string) error {
	for i, id := range ids {
		if err := IsUUID(id); err != nil {
			return errors.Wrapf(err, "invalid UUID at index %d", i)
		}
	}
	return nil
}
