package service

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"tush00nka/bbbab_forums/internal/model"
	"tush00nka/bbbab_forums/internal/repository"
)

type forumService struct {
	store *repository.Store
	now   func() time.Time
}

type Option func(*forumService)

// WithClock replaces the clock used to stamp new messages.
func WithClock(now func() time.Time) Option {
	return func(s *forumService) {
		s.now = now
	}
}

// NewForumService creates the query and mutation operations over store.
func NewForumService(store *repository.Store, opts ...Option) ForumService {
	s := &forumService{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *forumService) ListUsers() ([]model.UserView, error) {
	var users []model.UserView
	err := s.store.View(func(tx *repository.Tx) error {
		users = lo.Map(tx.Users(), func(u *model.User, _ int) model.UserView {
			return tx.UserView(u)
		})
		return nil
	})
	return users, err
}

func (s *forumService) ListForums() ([]model.ForumView, error) {
	var forums []model.ForumView
	err := s.store.View(func(tx *repository.Tx) error {
		forums = lo.Map(tx.Forums(), func(f *model.Forum, _ int) model.ForumView {
			return tx.ForumView(f)
		})
		return nil
	})
	return forums, err
}

func (s *forumService) GetForum(forumID string) (*model.ForumView, error) {
	var view model.ForumView
	err := s.store.View(func(tx *repository.Tx) error {
		forum, ok := tx.FindForum(forumID)
		if !ok {
			return &NotFoundError{Kind: KindForum, ID: forumID}
		}
		view = tx.ForumView(forum)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *forumService) GetUserJoinedForums(userID string) ([]model.ForumView, error) {
	var forums []model.ForumView
	err := s.store.View(func(tx *repository.Tx) error {
		user, ok := tx.FindUser(userID)
		if !ok {
			return &NotFoundError{Kind: KindUser, ID: userID}
		}
		forums = lo.FilterMap(user.ForumIDs, func(id string, _ int) (model.ForumView, bool) {
			f, ok := tx.FindForum(id)
			if !ok {
				return model.ForumView{}, false
			}
			return tx.ForumView(f), true
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return forums, nil
}

// GetMessages returns the forum's messages newest first. Messages stamped
// with the same instant keep newest-posted first.
func (s *forumService) GetMessages(forumID string) ([]model.MessageView, error) {
	var messages []model.MessageView
	err := s.store.View(func(tx *repository.Tx) error {
		if _, ok := tx.FindForum(forumID); !ok {
			return &NotFoundError{Kind: KindForum, ID: forumID}
		}

		matched := lo.Filter(tx.Messages(), func(m *model.Message, _ int) bool {
			return m.ForumID == forumID
		})
		slices.Reverse(matched)
		slices.SortStableFunc(matched, func(a, b *model.Message) int {
			return strings.Compare(b.CreatedAt, a.CreatedAt)
		})

		messages = lo.Map(matched, func(m *model.Message, _ int) model.MessageView {
			return tx.MessageView(m)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateForum checks the creator before the name, so an unknown user wins
// over an empty name.
func (s *forumService) CreateForum(name, userID string) (*model.ForumView, error) {
	var view model.ForumView
	err := s.store.Update(func(tx *repository.Tx) error {
		user, ok := tx.FindUser(userID)
		if !ok {
			return &NotFoundError{Kind: KindUser, ID: userID}
		}

		if strings.TrimSpace(name) == "" {
			return &InvalidArgumentError{Field: "name"}
		}

		forum, err := tx.CreateForum(name, user)
		if err != nil {
			return err
		}

		view = tx.ForumView(forum)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *forumService) JoinForum(userID, forumID string) (*model.ForumAndUser, error) {
	var result model.ForumAndUser
	err := s.store.Update(func(tx *repository.Tx) error {
		user, forum, err := findPair(tx, userID, forumID)
		if err != nil {
			return err
		}

		if user.IsMemberOf(forumID) {
			return &AlreadyMemberError{UserID: userID, ForumID: forumID}
		}
		// only reachable if a write ever skipped the user side
		if forum.HasMember(userID) {
			return &AlreadyMemberError{UserID: userID, ForumID: forumID, ForumSide: true}
		}

		if err := tx.AddMembership(user, forum); err != nil {
			return err
		}

		result = model.ForumAndUser{
			Forum: tx.ForumView(forum),
			User:  tx.UserView(user),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *forumService) PostMessage(userID, forumID, text string) (*model.MessageView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidArgumentError{Field: "text"}
	}

	var view model.MessageView
	err := s.store.Update(func(tx *repository.Tx) error {
		user, forum, err := findPair(tx, userID, forumID)
		if err != nil {
			return err
		}

		if !user.IsMemberOf(forum.ID) || !forum.HasMember(user.ID) {
			return &NotAMemberError{UserID: userID, ForumID: forumID}
		}

		msg, err := tx.AppendMessage(forum, user, text, model.FormatTimestamp(s.now()))
		if err != nil {
			return err
		}

		view = tx.MessageView(msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// findPair resolves both sides of a membership. A missing forum is reported
// ahead of a missing user.
func findPair(tx *repository.Tx, userID, forumID string) (*model.User, *model.Forum, error) {
	user, userOK := tx.FindUser(userID)
	forum, forumOK := tx.FindForum(forumID)

	if !forumOK {
		return nil, nil, &NotFoundError{Kind: KindForum, ID: forumID}
	}
	if !userOK {
		return nil, nil, &NotFoundError{Kind: KindUser, ID: userID}
	}
	return user, forum, nil
}
