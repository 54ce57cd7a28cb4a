package model

// Forum is a discussion group. UserIDs and MessageIDs only ever grow.
type Forum struct {
	ID         string
	Name       string
	UserIDs    []string
	MessageIDs []string
}

// HasMember reports whether userID is on the forum's side of the membership.
func (f *Forum) HasMember(userID string) bool {
	for _, id := range f.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (f *Forum) Ref() ForumRef {
	return ForumRef{ID: f.ID, Name: f.Name}
}

// ForumRef is the shallow form of a forum embedded in user views.
type ForumRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ForumView is a forum with members and messages resolved. Messages are in
// posting order.
type ForumView struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Users    []UserRef     `json:"users"`
	Messages []MessageView `json:"messages"`
}

// ForumAndUser is the result of a join.
type ForumAndUser struct {
	Forum ForumView `json:"forum"`
	User  UserView  `json:"user"`
}
