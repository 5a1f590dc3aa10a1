package prospect

import (
	"errors"
	"testing"
)

func TestClientServiceNames(t *testing.T) {
	c := Client{Services: []int{4, 1, 99}}
	got := c.ServiceNames()
	// Assignment order is preserved, unknown ids are skipped.
	if len(got) != 2 || got[0] != "SEO" || got[1] != "Diseño Web" {
		t.Errorf("got %v", got)
	}
}

func TestClientCountryName(t *testing.T) {
	if got := (Client{Country: "UK"}).CountryName(); got != "Reino Unido" {
		t.Errorf("got %q, want Reino Unido", got)
	}
	if got := (Client{Country: "XX"}).CountryName(); got != "XX" {
		t.Errorf("unknown country: got %q, want the raw id", got)
	}
}

func TestClientClone(t *testing.T) {
	c := Client{
		ID:       1,
		Name:     "Acme SRL",
		Services: []int{1, 2},
		Notes:    []Note{{ID: 2, Title: "Kickoff", Tags: []NoteTag{TagMeeting}}},
	}
	clone := c.Clone()
	clone.Services[0] = 99
	clone.Notes[0].Title = "mutated"
	clone.Notes[0].Tags[0] = TagGeneral

	if c.Services[0] != 1 || c.Notes[0].Title != "Kickoff" || c.Notes[0].Tags[0] != TagMeeting {
		t.Error("mutating a clone leaked into the original")
	}
}

func TestClientDraftRoundTrip(t *testing.T) {
	d := testDraft("Acme SRL")
	c := Client{ID: 7, Notes: []Note{{ID: 8, Title: "kept"}}}
	d.apply(&c)

	if c.ID != 7 || len(c.Notes) != 1 {
		t.Error("apply touched id or notes")
	}
	if got := c.Draft(); asJSON(t, got) != asJSON(t, d) {
		t.Errorf("Draft() does not reproduce the applied draft:\ngot:  %+v\nwant: %+v", got, d)
	}
}

func TestNoteDraftValidate(t *testing.T) {
	valid := testNoteDraft("Kickoff")
	if err := valid.Validate(); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}

	cases := map[string]func(*NoteDraft){
		"empty title": func(d *NoteDraft) { d.Title = "" },
		"zero date":   func(d *NoteDraft) { d.Date = Date{} },
		"unknown tag": func(d *NoteDraft) { d.Tags = []NoteTag{"URGENT"} },
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			d := testNoteDraft("Kickoff")
			corrupt(&d)
			if err := d.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v, want ErrInvalid", err)
			}
		})
	}
}
