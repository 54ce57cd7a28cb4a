package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tush00nka/bbbab_forums/internal/fixture"
	"tush00nka/bbbab_forums/internal/model"
	"tush00nka/bbbab_forums/internal/repository"
)

func sampleFixture() *fixture.Fixture {
	return &fixture.Fixture{
		Users: []fixture.User{
			{ID: "1", Name: "Ada"},
			{ID: "2", Name: "Alan"},
			{ID: "3", Name: "Grace"},
		},
		Forums: []fixture.Forum{
			{ID: "1", Name: "General", UserIDs: []string{"1", "2"}},
			{ID: "2", Name: "Compilers", UserIDs: []string{"3"}},
		},
		Messages: []fixture.Message{
			{ID: "1", ForumID: "1", UserID: "1", Text: "hello", CreatedAt: "2024-03-01T09:00:00.000Z"},
			{ID: "2", ForumID: "2", UserID: "3", Text: "linker?", CreatedAt: "2024-03-01T10:00:00.000Z"},
		},
	}
}

func seededStore(t *testing.T) *repository.Store {
	t.Helper()
	store := repository.NewStore()
	require.NoError(t, store.Seed(sampleFixture()))
	return store
}

func assertSymmetric(t *testing.T, store *repository.Store) {
	t.Helper()
	require.NoError(t, store.View(func(tx *repository.Tx) error {
		for _, u := range tx.Users() {
			for _, f := range tx.Forums() {
				assert.Equal(t, u.IsMemberOf(f.ID), f.HasMember(u.ID),
					"user %s / forum %s membership must match on both sides", u.ID, f.ID)
			}
		}
		return nil
	}))
}

func TestStore_Seed(t *testing.T) {
	store := seededStore(t)

	err := store.View(func(tx *repository.Tx) error {
		assert.Len(t, tx.Users(), 3)
		assert.Len(t, tx.Forums(), 2)
		assert.Len(t, tx.Messages(), 2)

		ada, ok := tx.FindUser("1")
		require.True(t, ok)
		assert.Equal(t, []string{"1"}, ada.ForumIDs)

		general, ok := tx.FindForum("1")
		require.True(t, ok)
		assert.Equal(t, []string{"1", "2"}, general.UserIDs)
		assert.Equal(t, []string{"1"}, general.MessageIDs)
		return nil
	})
	require.NoError(t, err)
	assertSymmetric(t, store)
}

func TestStore_Seed_KeepsInsertionOrder(t *testing.T) {
	store := seededStore(t)

	require.NoError(t, store.View(func(tx *repository.Tx) error {
		ids := make([]string, 0)
		for _, u := range tx.Users() {
			ids = append(ids, u.ID)
		}
		assert.Equal(t, []string{"1", "2", "3"}, ids)
		return nil
	}))
}

func TestStore_Seed_Twice(t *testing.T) {
	store := seededStore(t)

	err := store.Seed(sampleFixture())
	assert.ErrorIs(t, err, repository.ErrAlreadySeeded)
}

func TestStore_Seed_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *fixture.Fixture)
	}{
		{"duplicate user", func(f *fixture.Fixture) { f.Users = append(f.Users, fixture.User{ID: "1", Name: "Again"}) }},
		{"duplicate forum", func(f *fixture.Fixture) { f.Forums = append(f.Forums, fixture.Forum{ID: "2", Name: "Again"}) }},
		{"unknown member", func(f *fixture.Fixture) { f.Forums[0].UserIDs = append(f.Forums[0].UserIDs, "99") }},
		{"member listed twice", func(f *fixture.Fixture) { f.Forums[0].UserIDs = append(f.Forums[0].UserIDs, "1") }},
		{"unknown forum", func(f *fixture.Fixture) { f.Messages[0].ForumID = "99" }},
		{"unknown author", func(f *fixture.Fixture) { f.Messages[0].UserID = "99" }},
		{"author not a member", func(f *fixture.Fixture) { f.Messages[0].UserID = "3" }},
		{"duplicate message", func(f *fixture.Fixture) { f.Messages[1].ID = "1" }},
		{"missing name", func(f *fixture.Fixture) { f.Users[0].Name = "" }},
		{"bad timestamp", func(f *fixture.Fixture) { f.Messages[0].CreatedAt = "yesterday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sampleFixture()
			tt.mutate(f)

			store := repository.NewStore()
			require.Error(t, store.Seed(f))

			// a rejected fixture leaves nothing behind
			require.NoError(t, store.Seed(sampleFixture()))
		})
	}
}

func TestTx_FindMissing(t *testing.T) {
	store := seededStore(t)

	require.NoError(t, store.View(func(tx *repository.Tx) error {
		_, ok := tx.FindUser("42")
		assert.False(t, ok)
		_, ok = tx.FindForum("42")
		assert.False(t, ok)
		_, ok = tx.FindMessage("42")
		assert.False(t, ok)
		return nil
	}))
}

func TestTx_CreateForum(t *testing.T) {
	store := seededStore(t)

	var created *model.Forum
	err := store.Update(func(tx *repository.Tx) error {
		grace, _ := tx.FindUser("3")
		var err error
		created, err = tx.CreateForum("Linkers", grace)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "3", created.ID)
	assert.Equal(t, []string{"3"}, created.UserIDs)
	assert.Empty(t, created.MessageIDs)

	require.NoError(t, store.View(func(tx *repository.Tx) error {
		grace, _ := tx.FindUser("3")
		assert.Equal(t, []string{"2", "3"}, grace.ForumIDs)
		return nil
	}))
	assertSymmetric(t, store)
}

func TestTx_NextIDSkipsSeededIDs(t *testing.T) {
	store := repository.NewStore()
	require.NoError(t, store.Seed(&fixture.Fixture{
		Users:  []fixture.User{{ID: "1", Name: "Ada"}},
		Forums: []fixture.Forum{{ID: "1", Name: "a"}, {ID: "7", Name: "b"}},
	}))

	require.NoError(t, store.Update(func(tx *repository.Tx) error {
		ada, _ := tx.FindUser("1")
		forum, err := tx.CreateForum("c", ada)
		require.NoError(t, err)
		assert.Equal(t, "8", forum.ID)
		return nil
	}))
}

func TestTx_AppendMessage(t *testing.T) {
	store := seededStore(t)

	require.NoError(t, store.Update(func(tx *repository.Tx) error {
		forum, _ := tx.FindForum("1")
		alan, _ := tx.FindUser("2")

		msg, err := tx.AppendMessage(forum, alan, "hi", "2024-03-02T00:00:00.000Z")
		require.NoError(t, err)

		assert.Equal(t, "3", msg.ID)
		assert.Equal(t, []string{"1", "3"}, forum.MessageIDs)
		assert.Len(t, tx.Messages(), 3)
		assert.Same(t, msg, tx.Messages()[2])
		return nil
	}))
}

func TestTx_ReadOnly(t *testing.T) {
	store := seededStore(t)

	err := store.View(func(tx *repository.Tx) error {
		ada, _ := tx.FindUser("1")
		forum, _ := tx.FindForum("2")

		_, err := tx.CreateForum("nope", ada)
		assert.ErrorIs(t, err, repository.ErrReadOnlyTx)
		assert.ErrorIs(t, tx.AddMembership(ada, forum), repository.ErrReadOnlyTx)
		_, err = tx.AppendMessage(forum, ada, "nope", "2024-03-02T00:00:00.000Z")
		assert.ErrorIs(t, err, repository.ErrReadOnlyTx)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, store.View(func(tx *repository.Tx) error {
		assert.Len(t, tx.Forums(), 2)
		assert.Len(t, tx.Messages(), 2)
		return nil
	}))
}

func TestTx_Views(t *testing.T) {
	store := seededStore(t)

	require.NoError(t, store.View(func(tx *repository.Tx) error {
		general, _ := tx.FindForum("1")
		view := tx.ForumView(general)
		assert.Equal(t, "General", view.Name)
		require.Len(t, view.Users, 2)
		assert.Equal(t, "Ada", view.Users[0].Name)
		require.Len(t, view.Messages, 1)
		assert.Equal(t, "Ada", view.Messages[0].User.Name)

		ada, _ := tx.FindUser("1")
		userView := tx.UserView(ada)
		assert.Equal(t, []model.ForumRef{{ID: "1", Name: "General"}}, userView.Forums)
		return nil
	}))
}
