package service

import "tush00nka/bbbab_forums/internal/model"

// ForumQueries are read-only projections over the store.
type ForumQueries interface {
	ListUsers() ([]model.UserView, error)
	ListForums() ([]model.ForumView, error)
	GetForum(forumID string) (*model.ForumView, error)
	GetUserJoinedForums(userID string) ([]model.ForumView, error)
	GetMessages(forumID string) ([]model.MessageView, error)
}

// ForumMutations are the only operations that change store state.
type ForumMutations interface {
	CreateForum(name, userID string) (*model.ForumView, error)
	JoinForum(userID, forumID string) (*model.ForumAndUser, error)
	PostMessage(userID, forumID, text string) (*model.MessageView, error)
}

type ForumService interface {
	ForumQueries
	ForumMutations
}
