package model

// User is a seeded account. Forums holds the ids of the forums the user has
// joined, in join order.
type User struct {
	ID       string
	Name     string
	Picture  *string
	ForumIDs []string
}

// IsMemberOf reports whether forumID is on the user's side of the membership.
func (u *User) IsMemberOf(forumID string) bool {
	for _, id := range u.ForumIDs {
		if id == forumID {
			return true
		}
	}
	return false
}

// UserRef is the shallow form of a user embedded in other views.
type UserRef struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Picture *string `json:"picture,omitempty"`
}

// UserView is a user with its forums resolved.
type UserView struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Picture *string    `json:"picture,omitempty"`
	Forums  []ForumRef `json:"forums"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Picture: u.Picture}
}
