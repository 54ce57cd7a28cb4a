package repository

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tush00nka/bbbab_forums/internal/fixture"
	"tush00nka/bbbab_forums/internal/model"
)

var ErrAlreadySeeded = errors.New("store is already seeded")

var validate = validator.New()

// Seed loads f into an empty store. Membership is taken from the forum side
// and mirrored onto users; seeded messages must be written by members.
func (s *Store) Seed(f *fixture.Fixture) error {
	if f == nil {
		return errors.New("fixture cannot be nil")
	}
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid fixture: %w", err)
	}

	return s.Update(func(_ *Tx) error {
		if s.users.len() > 0 || s.forums.len() > 0 || s.messages.len() > 0 {
			return ErrAlreadySeeded
		}

		// everything is checked before the first write so a bad fixture
		// leaves the store empty
		next := NewStore()
		if err := seedInto(next, f); err != nil {
			return err
		}
		s.users, s.forums, s.messages = next.users, next.forums, next.messages
		return nil
	})
}

func seedInto(s *Store, f *fixture.Fixture) error {
	for _, u := range f.Users {
		if _, ok := s.users.get(u.ID); ok {
			return fmt.Errorf("duplicate user id %q", u.ID)
		}
		s.users.add(u.ID, &model.User{
			ID:       u.ID,
			Name:     u.Name,
			Picture:  u.Picture,
			ForumIDs: []string{},
		})
	}

	for _, fr := range f.Forums {
		if _, ok := s.forums.get(fr.ID); ok {
			return fmt.Errorf("duplicate forum id %q", fr.ID)
		}
		forum := &model.Forum{
			ID:         fr.ID,
			Name:       fr.Name,
			UserIDs:    []string{},
			MessageIDs: []string{},
		}
		for _, userID := range fr.UserIDs {
			user, ok := s.users.get(userID)
			if !ok {
				return fmt.Errorf("forum %q references unknown user %q", fr.ID, userID)
			}
			if forum.HasMember(userID) {
				return fmt.Errorf("forum %q lists user %q twice", fr.ID, userID)
			}
			forum.UserIDs = append(forum.UserIDs, userID)
			user.ForumIDs = append(user.ForumIDs, forum.ID)
		}
		s.forums.add(forum.ID, forum)
	}

	for _, m := range f.Messages {
		if _, ok := s.messages.get(m.ID); ok {
			return fmt.Errorf("duplicate message id %q", m.ID)
		}
		forum, ok := s.forums.get(m.ForumID)
		if !ok {
			return fmt.Errorf("message %q references unknown forum %q", m.ID, m.ForumID)
		}
		if _, ok := s.users.get(m.UserID); !ok {
			return fmt.Errorf("message %q references unknown user %q", m.ID, m.UserID)
		}
		if !forum.HasMember(m.UserID) {
			return fmt.Errorf("message %q author %q is not a member of forum %q", m.ID, m.UserID, m.ForumID)
		}
		s.messages.add(m.ID, &model.Message{
			ID:        m.ID,
			ForumID:   m.ForumID,
			UserID:    m.UserID,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
		forum.MessageIDs = append(forum.MessageIDs, m.ID)
	}

	return nil
}
