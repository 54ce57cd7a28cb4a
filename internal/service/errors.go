package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyMember   = errors.New("already a member")
	ErrNotAMember      = errors.New("not a member")
)

type EntityKind string

const (
	KindUser  EntityKind = "User"
	KindForum EntityKind = "Forum"
)

// NotFoundError reports an id that does not resolve to an entity.
type NotFoundError struct {
	Kind EntityKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The %s with ID %q does not exist.", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidArgumentError names an argument that is empty after trimming.
type InvalidArgumentError struct {
	Field string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Field %q cannot be empty.", e.Field)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// AlreadyMemberError is returned by a join that would not change membership.
// ForumSide is set when only the forum's member list already had the user.
type AlreadyMemberError struct {
	UserID    string
	ForumID   string
	ForumSide bool
}

func (e *AlreadyMemberError) Error() string {
	if e.ForumSide {
		return fmt.Sprintf("Forum with ID %s already contains the user with ID %s.", e.ForumID, e.UserID)
	}
	return fmt.Sprintf("User with ID %s is already a member of the forum with ID %s.", e.UserID, e.ForumID)
}

func (e *AlreadyMemberError) Is(target error) bool { return target == ErrAlreadyMember }

type NotAMemberError struct {
	UserID  string
	ForumID string
}

func (e *NotAMemberError) Error() string {
	return fmt.Sprintf("User with ID %q is not a member of the forum with ID %q.", e.UserID, e.ForumID)
}

func (e *NotAMemberError) Is(target error) bool { return target == ErrNotAMember }
