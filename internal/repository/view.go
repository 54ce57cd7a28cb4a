package repository

import (
	"github.com/samber/lo"

	"tush00nka/bbbab_forums/internal/model"
)

// UserView resolves the user's forum ids into shallow forum references.
func (tx *Tx) UserView(u *model.User) model.UserView {
	return model.UserView{
		ID:      u.ID,
		Name:    u.Name,
		Picture: u.Picture,
		Forums:  tx.forumRefs(u.ForumIDs),
	}
}

// ForumView resolves members and messages. Messages stay in posting order.
func (tx *Tx) ForumView(f *model.Forum) model.ForumView {
	users := lo.FilterMap(f.UserIDs, func(id string, _ int) (model.UserRef, bool) {
		u, ok := tx.FindUser(id)
		if !ok {
			return model.UserRef{}, false
		}
		return u.Ref(), true
	})
	messages := lo.FilterMap(f.MessageIDs, func(id string, _ int) (model.MessageView, bool) {
		m, ok := tx.FindMessage(id)
		if !ok {
			return model.MessageView{}, false
		}
		return tx.MessageView(m), true
	})

	return model.ForumView{
		ID:       f.ID,
		Name:     f.Name,
		Users:    users,
		Messages: messages,
	}
}

func (tx *Tx) MessageView(m *model.Message) model.MessageView {
	view := model.MessageView{
		ID:        m.ID,
		ForumID:   m.ForumID,
		User:      model.UserRef{ID: m.UserID},
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
	if u, ok := tx.FindUser(m.UserID); ok {
		view.User = u.Ref()
	}
	return view
}

func (tx *Tx) forumRefs(ids []string) []model.ForumRef {
	return lo.FilterMap(ids, func(id string, _ int) (model.ForumRef, bool) {
		f, ok := tx.FindForum(id)
		if !ok {
			return model.ForumRef{}, false
		}
		return f.Ref(), true
	})
}
