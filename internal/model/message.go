package model

import "time"

// TimestampLayout renders createdAt so that string order equals time order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type Message struct {
	ID        string
	ForumID   string
	UserID    string
	Text      string
	CreatedAt string
}

type MessageView struct {
	ID        string  `json:"id"`
	ForumID   string  `json:"forumId"`
	User      UserRef `json:"user"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"createdAt"`
}
