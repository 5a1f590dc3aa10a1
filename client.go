package prospect

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// ErrInvalid reports a payload that is missing required fields or
// references unknown reference data.
var ErrInvalid = errors.New("invalid payload")

// Note is a dated, tagged annotation attached to exactly one client.
type Note struct {
	ID       int64     `json:"id"`
	ClientID int64     `json:"clientId"`
	Title    string    `json:"title"`
	Date     Date      `json:"date"`
	Content  string    `json:"content"` // free text; escaping is the renderer's concern
	Tags     []NoteTag `json:"tags,omitempty"`
}

// Client is a tracked prospective or active engagement.
type Client struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Services      []int           `json:"services,omitempty"` // predefined service ids, display order
	CustomService string          `json:"customService,omitempty"`
	NeedDate      Date            `json:"needDate"`
	SentDate      Date            `json:"sentDate"`
	Status        Status          `json:"status"`
	Country       string          `json:"country"` // predefined country id
	Currency      Currency        `json:"currency"`
	OneTimeAmount decimal.Decimal `json:"oneTimeAmount"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`
	Notes         []Note          `json:"notes"`
}

// ServiceNames returns the names of the client's predefined services, in
// the order they were assigned. Unknown ids are skipped.
func (c Client) ServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for _, id := range c.Services {
		if s, ok := ServiceByID(id); ok {
			names = append(names, s.Name)
		}
	}
	return names
}

// CountryName returns the display name of the client's country, or the
// raw id if it is not part of the reference data.
func (c Client) CountryName() string {
	if country, ok := CountryByID(c.Country); ok {
		return country.Name
	}
	return c.Country
}

// Clone returns a deep copy of the client, including its notes.
func (c Client) Clone() Client {
	c.Services = slices.Clone(c.Services)
	notes := make([]Note, len(c.Notes))
	for i, n := range c.Notes {
		n.Tags = slices.Clone(n.Tags)
		notes[i] = n
	}
	c.Notes = notes
	return c
}

// ClientDraft carries every client field a caller may set. Create and
// update take full drafts: an update replaces all of these fields at
// once, never a subset.
type ClientDraft struct {
	Name          string
	Services      []int
	CustomService string
	NeedDate      Date
	SentDate      Date
	Status        Status
	Country       string
	Currency      Currency
	OneTimeAmount decimal.Decimal
	MonthlyAmount decimal.Decimal
}

// Validate checks the draft for missing required fields and unknown
// reference data.
func (d ClientDraft) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalid)
	}
	if d.NeedDate.IsZero() || d.SentDate.IsZero() {
		return fmt.Errorf("%w: need date and sent date are required", ErrInvalid)
	}
	if !d.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, d.Status)
	}
	if _, ok := CountryByID(d.Country); !ok {
		return fmt.Errorf("%w: unknown country %q", ErrInvalid, d.Country)
	}
	if !d.Currency.IsValid() {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalid, d.Currency)
	}
	for _, id := range d.Services {
		if _, ok := ServiceByID(id); !ok {
			return fmt.Errorf("%w: unknown service id %d", ErrInvalid, id)
		}
	}
	if d.OneTimeAmount.IsNegative() || d.MonthlyAmount.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalid)
	}
	return nil
}

// apply copies the draft fields onto the client, leaving id and notes untouched.
func (d ClientDraft) apply(c *Client) {
	c.Name = d.Name
	c.Services = slices.Clone(d.Services)
	c.CustomService = d.CustomService
	c.NeedDate = d.NeedDate
	c.SentDate = d.SentDate
	c.Status = d.Status
	c.Country = d.Country
	c.Currency = d.Currency
	c.OneTimeAmount = d.OneTimeAmount
	c.MonthlyAmount = d.MonthlyAmount
}

// Draft returns a draft filled with the client's current field values.
// Edit forms start from it and replace what the user changed.
func (c Client) Draft() ClientDraft {
	return ClientDraft{
		Name:          c.Name,
		Services:      slices.Clone(c.Services),
		CustomService: c.CustomService,
		NeedDate:      c.NeedDate,
		SentDate:      c.SentDate,
		Status:        c.Status,
		Country:       c.Country,
		Currency:      c.Currency,
		OneTimeAmount: c.OneTimeAmount,
		MonthlyAmount: c.MonthlyAmount,
	}
}

// NoteDraft carries every note field a caller may set.
type NoteDraft struct {
	Title   string
	Date    Date
	Content string
	Tags    []NoteTag
}

// Validate checks the draft for missing required fields and unknown tags.
func (d NoteDraft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: note title is required", ErrInvalid)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: note date is required", ErrInvalid)
	}
	for _, t := range d.Tags {
		if !t.IsValid() {
			return fmt.Errorf("%w: unknown note tag %q", ErrInvalid, t)
		}
	}
	return nil
}

// apply copies the draft fields onto the note, leaving id and clientId untouched.
func (d NoteDraft) apply(n *Note) {
	n.Title = d.Title
	n.Date = d.Date
	n.Content = d.Content
	n.Tags = slices.Clone(d.Tags)
}

// Draft returns a draft filled with the note's current field values.
func (n Note) Draft() NoteDraft {
	return NoteDraft{Title: n.Title, Date: n.Date, Content: n.Content, Tags: slices.Clone(n.Tags)}
}
