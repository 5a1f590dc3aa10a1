package prospect

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"
)

// testDraft returns a valid client draft for tests.
func testDraft(name string) ClientDraft {
	return ClientDraft{
		Name:          name,
		Services:      []int{1, 4},
		NeedDate:      MustParseDate("2026-03-15"),
		SentDate:      MustParseDate("2026-02-01"),
		Status:        StatusPending,
		Country:       "AR",
		Currency:      ARS,
		OneTimeAmount: decimal.NewFromInt(1500),
		MonthlyAmount: decimal.NewFromInt(200),
	}
}

func testNoteDraft(title string) NoteDraft {
	return NoteDraft{
		Title:   title,
		Date:    MustParseDate("2026-02-10"),
		Content: "some content",
		Tags:    []NoteTag{TagMeeting, TagImportant},
	}
}

// asJSON renders clients in their canonical serialized form, the easiest
// way to compare collections that contain decimals.
func asJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospect.db")

	s := openTestStore(t, path)
	a, err := s.CreateClient(testDraft("Acme SRL"))
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	b, err := s.CreateClient(testDraft("Globex"))
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if _, err := s.CreateNote(a.ID, testNoteDraft("Kickoff")); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if _, err := s.CreateNote(b.ID, testNoteDraft("Intro call")); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	before := asJSON(t, s.Clients())
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s = openTestStore(t, path)
	defer s.Close()
	after := asJSON(t, s.Clients())

	if before != after {
		t.Errorf("collection changed across reload:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestStoreIDsAreSequentialAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospect.db")

	s := openTestStore(t, path)
	a, _ := s.CreateClient(testDraft("first"))
	n, _ := s.CreateNote(a.ID, testNoteDraft("a note"))
	if a.ID != 1 || n.ID != 2 {
		t.Fatalf("got ids %d and %d, want 1 and 2", a.ID, n.ID)
	}
	s.Close()

	// A fresh session must pick up after the largest persisted id, even
	// when that id belongs to a note.
	s = openTestStore(t, path)
	defer s.Close()
	b, err := s.CreateClient(testDraft("second"))
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if b.ID != 3 {
		t.Errorf("got id %d after reload, want 3", b.ID)
	}
}

func TestStoreUpdateClient(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	c, _ := s.CreateClient(testDraft("Acme SRL"))
	s.CreateNote(c.ID, testNoteDraft("Kickoff"))

	draft := testDraft("Acme SRL")
	draft.Status = StatusAccepted
	draft.Country = "ES"
	draft.Currency = EUR
	if err := s.UpdateClient(c.ID, draft); err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}

	got, ok := s.Client(c.ID)
	if !ok {
		t.Fatal("client disappeared after update")
	}
	if got.Status != StatusAccepted || got.Country != "ES" || got.Currency != EUR {
		t.Errorf("update not applied: %+v", got)
	}
	if got.ID != c.ID {
		t.Errorf("update changed the id: got %d want %d", got.ID, c.ID)
	}
	if len(got.Notes) != 1 {
		t.Errorf("update lost the notes: got %d, want 1", len(got.Notes))
	}
}

func TestStoreUpdateClientNotFound(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	err := s.UpdateClient(42, testDraft("ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteClientCascades(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	a, _ := s.CreateClient(testDraft("Acme SRL"))
	b, _ := s.CreateClient(testDraft("Globex"))
	s.CreateNote(a.ID, testNoteDraft("to be deleted"))

	if err := s.DeleteClient(a.ID); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if _, ok := s.Client(a.ID); ok {
		t.Error("deleted client still resolvable")
	}
	if got := len(s.Clients()); got != 1 {
		t.Fatalf("got %d clients, want 1", got)
	}
	if _, ok := s.Client(b.ID); !ok {
		t.Error("unrelated client lost")
	}

	// Deleting again, or deleting an id that never existed, is a no-op.
	if err := s.DeleteClient(a.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
	if err := s.DeleteClient(999); err != nil {
		t.Errorf("unknown delete: %v", err)
	}
}

func TestStoreCreateNoteUnknownClient(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	s.CreateClient(testDraft("Acme SRL"))
	before := asJSON(t, s.Clients())

	_, err := s.CreateNote(42, testNoteDraft("orphan"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if after := asJSON(t, s.Clients()); after != before {
		t.Error("failed note creation mutated the collection")
	}
}

func TestStoreUpdateNote(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	c, _ := s.CreateClient(testDraft("Acme SRL"))
	n, _ := s.CreateNote(c.ID, testNoteDraft("draft title"))

	d := n.Draft()
	d.Title = "final title"
	d.Tags = []NoteTag{TagFollowUp}
	if err := s.UpdateNote(c.ID, n.ID, d); err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}

	got, _ := s.Client(c.ID)
	if got.Notes[0].Title != "final title" {
		t.Errorf("got title %q, want %q", got.Notes[0].Title, "final title")
	}
	if got.Notes[0].ID != n.ID || got.Notes[0].ClientID != c.ID {
		t.Error("update changed note identity")
	}

	if err := s.UpdateNote(c.ID, 999, d); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown note: got %v, want ErrNotFound", err)
	}
	if err := s.UpdateNote(999, n.ID, d); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown client: got %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteNote(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	c, _ := s.CreateClient(testDraft("Acme SRL"))
	n, _ := s.CreateNote(c.ID, testNoteDraft("ephemeral"))

	if err := s.DeleteNote(c.ID, n.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	got, _ := s.Client(c.ID)
	if len(got.Notes) != 0 {
		t.Errorf("note still present: %+v", got.Notes)
	}
	if err := s.DeleteNote(c.ID, n.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
	if err := s.DeleteNote(999, n.ID); err != nil {
		t.Errorf("unknown client delete: %v", err)
	}
}

func TestStoreValidation(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	cases := map[string]func(*ClientDraft){
		"empty name":       func(d *ClientDraft) { d.Name = "" },
		"zero dates":       func(d *ClientDraft) { d.NeedDate = Date{}; d.SentDate = Date{} },
		"unknown status":   func(d *ClientDraft) { d.Status = "MAYBE" },
		"unknown country":  func(d *ClientDraft) { d.Country = "ZZ" },
		"unknown currency": func(d *ClientDraft) { d.Currency = "BTC" },
		"unknown service":  func(d *ClientDraft) { d.Services = []int{1, 42} },
		"negative amount":  func(d *ClientDraft) { d.OneTimeAmount = decimal.NewFromInt(-1) },
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			d := testDraft("Acme SRL")
			corrupt(&d)
			if _, err := s.CreateClient(d); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v, want ErrInvalid", err)
			}
		})
	}
	if got := len(s.Clients()); got != 0 {
		t.Errorf("rejected drafts left %d clients behind", got)
	}
}

func TestStoreClientsAreCopies(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "prospect.db"))
	defer s.Close()

	c, _ := s.CreateClient(testDraft("Acme SRL"))
	s.CreateNote(c.ID, testNoteDraft("Kickoff"))

	clients := s.Clients()
	clients[0].Name = "mutated"
	clients[0].Services[0] = 99
	clients[0].Notes[0].Title = "mutated"

	got, _ := s.Client(c.ID)
	if got.Name != "Acme SRL" || got.Services[0] != 1 || got.Notes[0].Title != "Kickoff" {
		t.Error("mutating a returned client leaked into the store")
	}
}

// putSnapshot overwrites the persisted snapshot with arbitrary bytes,
// simulating a database touched by another program or version.
func putSnapshot(t *testing.T, path string, data []byte) {
	t.Helper()
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("bbolt.Open: %v", err)
	}
	defer db.Close()
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(snapshotBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(snapshotKey), data)
	})
	if err != nil {
		t.Fatalf("put snapshot: %v", err)
	}
}

func TestStoreRecoversFromCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospect.db")
	putSnapshot(t, path, []byte("{not json"))

	s := openTestStore(t, path)
	defer s.Close()
	if got := len(s.Clients()); got != 0 {
		t.Errorf("got %d clients from a corrupt snapshot, want 0", got)
	}

	// The recovered store must still accept new entries.
	if _, err := s.CreateClient(testDraft("fresh start")); err != nil {
		t.Errorf("CreateClient after recovery: %v", err)
	}
}

func TestStoreRejectsFutureSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospect.db")
	putSnapshot(t, path, []byte(`{"version":2,"clients":[]}`))

	if _, err := Open(path); err == nil {
		t.Error("opened a snapshot from a newer schema version")
	}
}
