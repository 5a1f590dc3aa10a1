package prospect

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

// ErrNotFound reports an operation that referenced a client or note id
// that does not exist in the collection.
var ErrNotFound = errors.New("not found")

const (
	snapshotBucket = "snapshot"
	snapshotKey    = "clients"
)

// Store owns the canonical in-memory client collection and keeps it
// synchronized with a bbolt database: the full collection is written as a
// single snapshot before any mutating operation returns, and hydrated
// once when the store is opened.
//
// The tool is a single logical writer; the mutex only guarantees that one
// mutation completes before the next begins if a caller ever shares a
// Store between goroutines.
type Store struct {
	mu      sync.Mutex
	db      *bbolt.DB
	clients []Client
	nextID  int64
}

// Open opens (creating it if needed) the database at path and hydrates
// the client collection from the persisted snapshot.
//
// An absent snapshot starts an empty collection. So does an unparseable
// one: recovering to empty favors availability over surfacing corruption,
// and a warning is logged instead. A snapshot written by a newer schema
// version is an error.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open database %q: %w", path, err)
	}

	var raw []byte
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(snapshotBucket))
		if err != nil {
			return err
		}
		if v := b.Get([]byte(snapshotKey)); v != nil {
			raw = append(raw, v...) // copy, the value is only valid inside the transaction
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load error: cannot read snapshot from %q: %w", path, err)
	}

	s := &Store{db: db}
	if raw != nil {
		clients, err := decodeSnapshot(raw)
		if err != nil {
			if errors.Is(err, errFutureSnapshot) {
				db.Close()
				return nil, err
			}
			log.Printf("warning: %v, starting from an empty collection", err)
			clients = nil
		}
		s.clients = clients
	}
	s.nextID = maxID(s.clients) + 1
	return s, nil
}

// maxID returns the largest id used by any client or note in the collection.
func maxID(clients []Client) int64 {
	var max int64
	for _, c := range clients {
		if c.ID > max {
			max = c.ID
		}
		for _, n := range c.Notes {
			if n.ID > max {
				max = n.ID
			}
		}
	}
	return max
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Clients returns a deep copy of the collection in insertion order.
func (s *Store) Clients() []Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	clients := make([]Client, len(s.clients))
	for i, c := range s.clients {
		clients[i] = c.Clone()
	}
	return clients
}

// Client returns a deep copy of the client with this id.
func (s *Store) Client(id int64) (Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.clients[i].Clone(), true
	}
	return Client{}, false
}

// CreateClient assigns a fresh id to the draft, appends the new client to
// the collection with an empty note list, persists, and returns it.
func (s *Store) CreateClient(d ClientDraft) (Client, error) {
	if err := d.Validate(); err != nil {
		return Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Client{ID: s.newID(), Notes: make([]Note, 0)}
	d.apply(&c)
	s.clients = append(s.clients, c)
	if err := s.persist(); err != nil {
		return Client{}, err
	}
	return c.Clone(), nil
}

// UpdateClient replaces all draft fields on the client with this id,
// preserving its id and notes, and persists. It returns ErrNotFound when
// the id does not resolve.
func (s *Store) UpdateClient(id int64, d ClientDraft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	d.apply(&s.clients[i])
	return s.persist()
}

// DeleteClient removes the client with this id, and with it all of its
// notes, then persists. Deleting an unknown id is a no-op.
func (s *Store) DeleteClient(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	return s.persist()
}

// CreateNote assigns a fresh id to the draft, appends the new note to the
// owning client's collection, persists, and returns it. It returns
// ErrNotFound, leaving the collection untouched, when the client id does
// not resolve.
func (s *Store) CreateNote(clientID int64, d NoteDraft) (Note, error) {
	if err := d.Validate(); err != nil {
		return Note{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(clientID)
	if i < 0 {
		return Note{}, fmt.Errorf("client %d: %w", clientID, ErrNotFound)
	}
	n := Note{ID: s.newID(), ClientID: clientID}
	d.apply(&n)
	s.clients[i].Notes = append(s.clients[i].Notes, n)
	if err := s.persist(); err != nil {
		return Note{}, err
	}
	return n, nil
}

// UpdateNote replaces all draft fields on the note identified by both
// ids, preserving its id and clientId, and persists. It returns
// ErrNotFound when either id does not resolve.
func (s *Store) UpdateNote(clientID, noteID int64, d NoteDraft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(clientID)
	if i < 0 {
		return fmt.Errorf("client %d: %w", clientID, ErrNotFound)
	}
	for j := range s.clients[i].Notes {
		if s.clients[i].Notes[j].ID == noteID {
			d.apply(&s.clients[i].Notes[j])
			return s.persist()
		}
	}
	return fmt.Errorf("note %d of client %d: %w", noteID, clientID, ErrNotFound)
}

// DeleteNote removes the note identified by both ids from its client's
// collection and persists. Deleting an unknown note is a no-op.
func (s *Store) DeleteNote(clientID, noteID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(clientID)
	if i < 0 {
		return nil
	}
	notes := s.clients[i].Notes
	for j := range notes {
		if notes[j].ID == noteID {
			s.clients[i].Notes = append(notes[:j], notes[j+1:]...)
			return s.persist()
		}
	}
	return nil
}

// indexOf returns the position of the client with this id, or -1.
// Callers must hold the mutex.
func (s *Store) indexOf(id int64) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

// newID returns a fresh identifier. Ids are a monotonic counter seeded
// from the largest persisted id, so they never collide and never reuse
// a deleted id within one session.
func (s *Store) newID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// persist writes the full collection snapshot to the database. Callers
// must hold the mutex.
func (s *Store) persist() error {
	data, err := encodeSnapshot(s.clients)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(snapshotBucket)).Put([]byte(snapshotKey), data)
	})
	if err != nil {
		return fmt.Errorf("persist error: cannot write snapshot: %w", err)
	}
	return nil
}
