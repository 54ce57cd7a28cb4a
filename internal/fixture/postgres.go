package fixture

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tush00nka/bbbab_forums/internal/model"
)

type userRow struct {
	ID      string  `gorm:"column:id"`
	Name    string  `gorm:"column:name"`
	Picture *string `gorm:"column:picture"`
}

func (userRow) TableName() string { return "users" }

type forumRow struct {
	ID   string `gorm:"column:id"`
	Name string `gorm:"column:name"`
}

func (forumRow) TableName() string { return "forums" }

type forumUserRow struct {
	ForumID  string `gorm:"column:forum_id"`
	UserID   string `gorm:"column:user_id"`
	Position int    `gorm:"column:position"`
}

func (forumUserRow) TableName() string { return "forum_users" }

type messageRow struct {
	ID        string    `gorm:"column:id"`
	ForumID   string    `gorm:"column:forum_id"`
	UserID    string    `gorm:"column:user_id"`
	Text      string    `gorm:"column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (messageRow) TableName() string { return "messages" }

// numeric ids sort correctly when shorter ids come first. The casts let the
// same order work for text and integer id columns.
const idOrder = "length(id::text), id::text"

// PostgresLoader reads seed tables once. It never writes.
type PostgresLoader struct {
	db *gorm.DB
}

func NewPostgresLoader(db *gorm.DB) *PostgresLoader {
	return &PostgresLoader{db: db}
}

func (l *PostgresLoader) Load(ctx context.Context) (*Fixture, error) {
	db := l.db.WithContext(ctx)

	var users []userRow
	if err := db.Order(idOrder).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var forums []forumRow
	if err := db.Order(idOrder).Find(&forums).Error; err != nil {
		return nil, fmt.Errorf("failed to load forums: %w", err)
	}

	var members []forumUserRow
	if err := db.Order("forum_id, position").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to load forum members: %w", err)
	}

	var messages []messageRow
	if err := db.Order("created_at, " + idOrder).Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	return buildFixture(users, forums, members, messages), nil
}

func buildFixture(users []userRow, forums []forumRow, members []forumUserRow, messages []messageRow) *Fixture {
	byForum := make(map[string][]string, len(forums))
	for _, m := range members {
		byForum[m.ForumID] = append(byForum[m.ForumID], m.UserID)
	}

	f := &Fixture{
		Users:    make([]User, 0, len(users)),
		Forums:   make([]Forum, 0, len(forums)),
		Messages: make([]Message, 0, len(messages)),
	}
	for _, u := range users {
		f.Users = append(f.Users, User{ID: u.ID, Name: u.Name, Picture: u.Picture})
	}
	for _, r := range forums {
		f.Forums = append(f.Forums, Forum{ID: r.ID, Name: r.Name, UserIDs: byForum[r.ID]})
	}
	for _, m := range messages {
		f.Messages = append(f.Messages, Message{
			ID:        m.ID,
			ForumID:   m.ForumID,
			UserID:    m.UserID,
			Text:      m.Text,
			CreatedAt: model.FormatTimestamp(m.CreatedAt),
		})
	}

	return f
}
