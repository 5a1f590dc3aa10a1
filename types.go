package prospect

import "fmt"

// Status is the lifecycle stage of a client's proposal.
type Status string

// Proposal statuses.
const (
	StatusSent          Status = "SENT"
	StatusAccepted      Status = "ACCEPTED"
	StatusLost          Status = "LOST"
	StatusPending       Status = "PENDING"
	StatusInNegotiation Status = "IN_NEGOTIATION"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{StatusSent, StatusAccepted, StatusLost, StatusPending, StatusInNegotiation}

var statusLabels = map[Status]string{
	StatusSent:          "Enviada",
	StatusAccepted:      "Aceptada",
	StatusLost:          "Perdida",
	StatusPending:       "Pendiente",
	StatusInNegotiation: "En Negociación",
}

// Label returns the human-readable label for the status.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsValid reports whether s is one of the fixed statuses.
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsPendingGroup reports whether s counts as "pending" in dashboards
// (proposals neither accepted nor lost yet).
func (s Status) IsPendingGroup() bool {
	return s == StatusPending || s == StatusSent || s == StatusInNegotiation
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown status: %q", s)
	}
	return st, nil
}

// NoteTag categorizes a note.
type NoteTag string

// Note tags.
const (
	TagMeeting     NoteTag = "MEETING"
	TagReminder    NoteTag = "REMINDER"
	TagFollowUp    NoteTag = "FOLLOW_UP"
	TagNegotiation NoteTag = "NEGOTIATION"
	TagGeneral     NoteTag = "GENERAL"
	TagImportant   NoteTag = "IMPORTANT"
)

var noteTagLabels = map[NoteTag]string{
	TagMeeting:     "Reunión",
	TagReminder:    "Recordatorio",
	TagFollowUp:    "Seguimiento",
	TagNegotiation: "Negociación",
	TagGeneral:     "General",
	TagImportant:   "Importante",
}

// Label returns the human-readable label for the tag.
func (t NoteTag) Label() string {
	if l, ok := noteTagLabels[t]; ok {
		return l
	}
	return string(t)
}

// IsValid reports whether t is one of the fixed tags.
func (t NoteTag) IsValid() bool {
	_, ok := noteTagLabels[t]
	return ok
}

// ParseNoteTag parses a string into a NoteTag.
func ParseNoteTag(s string) (NoteTag, error) {
	t := NoteTag(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown note tag: %q", s)
	}
	return t, nil
}

// Currency is one of the supported proposal currencies.
type Currency string

// Supported currencies.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	ARS Currency = "ARS"
)

// AllCurrencies lists the supported currencies.
var AllCurrencies = []Currency{USD, EUR, ARS}

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == USD || c == EUR || c == ARS
}

// ParseCurrency parses a string into a Currency.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown currency: %q", s)
	}
	return c, nil
}
