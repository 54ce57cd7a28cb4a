// Package fixture supplies the data the store is seeded with at startup.
package fixture

import (
	"context"
)

// Fixture references related entities by id. Membership is declared once,
// on the forum side, and the store derives the user side from it.
type Fixture struct {
	Users    []User    `json:"users" validate:"dive"`
	Forums   []Forum   `json:"forums" validate:"dive"`
	Messages []Message `json:"messages" validate:"dive"`
}

type User struct {
	ID      string  `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Picture *string `json:"picture,omitempty"`
}

type Forum struct {
	ID      string   `json:"id" validate:"required"`
	Name    string   `json:"name" validate:"required"`
	UserIDs []string `json:"userIds" validate:"dive,required"`
}

type Message struct {
	ID        string `json:"id" validate:"required"`
	ForumID   string `json:"forumId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
	Text      string `json:"text" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"required,datetime=2006-01-02T15:04:05.000Z"`
}

// Loader produces the startup fixture.
type Loader interface {
	Load(ctx context.Context) (*Fixture, error)
}
