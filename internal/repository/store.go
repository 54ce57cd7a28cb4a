package repository

import (
	"errors"
	"strconv"
	"sync"

	"tush00nka/bbbab_forums/internal/model"
)

var ErrReadOnlyTx = errors.New("write attempted in a read-only transaction")

// collection keeps entities by id together with their insertion order.
type collection[T any] struct {
	byID  map[string]*T
	order []string
	// highest numeric id seen, so seeded ids are never handed out again
	high int
}

func newCollection[T any]() collection[T] {
	return collection[T]{byID: make(map[string]*T)}
}

func (c *collection[T]) get(id string) (*T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) add(id string, v *T) {
	c.byID[id] = v
	c.order = append(c.order, id)
	if n, err := strconv.Atoi(id); err == nil && n > c.high {
		c.high = n
	}
}

// nextID is count+1 unless seeded ids already went past the count.
func (c *collection[T]) nextID() string {
	n := len(c.order)
	if c.high > n {
		n = c.high
	}
	return strconv.Itoa(n + 1)
}

func (c *collection[T]) all() []*T {
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) len() int {
	return len(c.order)
}

// Store owns every user, forum and message for the life of the process.
// Relationships are stored as ids and resolved on read.
type Store struct {
	mu       sync.RWMutex
	users    collection[model.User]
	forums   collection[model.Forum]
	messages collection[model.Message]
}

func NewStore() *Store {
	return &Store{
		users:    newCollection[model.User](),
		forums:   newCollection[model.Forum](),
		messages: newCollection[model.Message](),
	}
}

// View runs fn with shared access. The Tx must not be used after fn returns.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Update runs fn with exclusive access, so a read-validate-write sequence
// inside fn is atomic with respect to every other View and Update.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s, writable: true})
}

// Tx is the lookup and write surface handed to View and Update callbacks.
type Tx struct {
	s        *Store
	writable bool
}

// FindUser returns the user or false. It never fails.
func (tx *Tx) FindUser(id string) (*model.User, bool) {
	return tx.s.users.get(id)
}

// FindForum returns the forum or false. It never fails.
func (tx *Tx) FindForum(id string) (*model.Forum, bool) {
	return tx.s.forums.get(id)
}

func (tx *Tx) FindMessage(id string) (*model.Message, bool) {
	return tx.s.messages.get(id)
}

func (tx *Tx) Users() []*model.User {
	return tx.s.users.all()
}

func (tx *Tx) Forums() []*model.Forum {
	return tx.s.forums.all()
}

// Messages returns the global message collection in posting order.
func (tx *Tx) Messages() []*model.Message {
	return tx.s.messages.all()
}

// CreateForum stores a new forum whose only member is creator. Both sides
// of the membership are written.
func (tx *Tx) CreateForum(name string, creator *model.User) (*model.Forum, error) {
	if !tx.writable {
		return nil, ErrReadOnlyTx
	}

	forum := &model.Forum{
		ID:         tx.s.forums.nextID(),
		Name:       name,
		UserIDs:    []string{creator.ID},
		MessageIDs: []string{},
	}
	tx.s.forums.add(forum.ID, forum)
	creator.ForumIDs = append(creator.ForumIDs, forum.ID)

	return forum, nil
}

// AddMembership appends forum to user.ForumIDs and user to forum.UserIDs.
// Callers check for an existing membership first.
func (tx *Tx) AddMembership(user *model.User, forum *model.Forum) error {
	if !tx.writable {
		return ErrReadOnlyTx
	}

	user.ForumIDs = append(user.ForumIDs, forum.ID)
	forum.UserIDs = append(forum.UserIDs, user.ID)
	return nil
}

// AppendMessage pushes a new message onto the forum and the global
// collection together.
func (tx *Tx) AppendMessage(forum *model.Forum, author *model.User, text, createdAt string) (*model.Message, error) {
	if !tx.writable {
		return nil, ErrReadOnlyTx
	}

	msg := &model.Message{
		ID:        tx.s.messages.nextID(),
		ForumID:   forum.ID,
		UserID:    author.ID,
		Text:      text,
		CreatedAt: createdAt,
	}
	tx.s.messages.add(msg.ID, msg)
	forum.MessageIDs = append(forum.MessageIDs, msg.ID)

	return msg, nil
}
