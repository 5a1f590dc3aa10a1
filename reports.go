package prospect

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// This file contains the derivation logic behind the dashboard and
// reports views. Every function is pure: it takes the client collection
// as input, recomputes from scratch, and mutates nothing.

// StatusBreakdown tallies clients per status. Statuses absent from the
// input produce no entry.
func StatusBreakdown(clients []Client) map[Status]int {
	counts := make(map[Status]int)
	for _, c := range clients {
		counts[c.Status]++
	}
	return counts
}

// TallyEntry is one (key, count) pair of a Tally.
type TallyEntry struct {
	Key   string
	Count int
}

// Tally counts occurrences per key while remembering the order keys were
// first encountered, so TopN can break count ties deterministically.
type Tally struct {
	keys   []string
	counts map[string]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Inc increments the count for key.
func (t *Tally) Inc(key string) {
	if _, seen := t.counts[key]; !seen {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Count returns the count for key.
func (t *Tally) Count(key string) int { return t.counts[key] }

// Len returns the number of distinct keys.
func (t *Tally) Len() int { return len(t.keys) }

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	var total int
	for _, n := range t.counts {
		total += n
	}
	return total
}

// TopN returns up to n entries sorted by descending count, ties broken by
// first-encountered order. A non-positive n returns all entries.
func (t *Tally) TopN(n int) []TallyEntry {
	entries := make([]TallyEntry, 0, len(t.keys))
	for _, k := range t.keys {
		entries = append(entries, TallyEntry{Key: k, Count: t.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// CountryBreakdown tallies clients per country display name.
func CountryBreakdown(clients []Client) *Tally {
	t := NewTally()
	for _, c := range clients {
		t.Inc(c.CountryName())
	}
	return t
}

// ServiceBreakdown tallies service assignments per service name: each
// predefined service counts once per client that includes it, and each
// distinct custom service string counts as its own key, verbatim, not
// normalized against the predefined names.
func ServiceBreakdown(clients []Client) *Tally {
	t := NewTally()
	for _, c := range clients {
		for _, name := range c.ServiceNames() {
			t.Inc(name)
		}
		if c.CustomService != "" {
			t.Inc(c.CustomService)
		}
	}
	return t
}

// MonthBucket is one month of the yearly series.
type MonthBucket struct {
	Month    time.Month
	Count    int // clients whose sentDate falls in this month
	Accepted int
	Lost     int
	Pending  int // pending group: PENDING, SENT or IN_NEGOTIATION
}

// MonthlySeries buckets clients by the calendar month of their sentDate
// within the given year, January through December. Months without clients
// yield zero buckets.
func MonthlySeries(clients []Client, year int) [12]MonthBucket {
	var series [12]MonthBucket
	for i := range series {
		series[i].Month = time.Month(i + 1)
	}
	for _, c := range clients {
		if c.SentDate.Year() != year {
			continue
		}
		b := &series[c.SentDate.Month()-1]
		b.Count++
		switch {
		case c.Status == StatusAccepted:
			b.Accepted++
		case c.Status == StatusLost:
			b.Lost++
		case c.Status.IsPendingGroup():
			b.Pending++
		}
	}
	return series
}

// ConversionRate returns the percentage of accepted clients, 0 for an
// empty collection.
func ConversionRate(clients []Client) float64 {
	if len(clients) == 0 {
		return 0
	}
	return float64(StatusBreakdown(clients)[StatusAccepted]) / float64(len(clients)) * 100
}

// RevenueTotals sums the one-time and monthly amounts of accepted
// clients. Non-accepted clients contribute nothing.
func RevenueTotals(clients []Client) (oneTime, monthly decimal.Decimal) {
	for _, c := range clients {
		if c.Status != StatusAccepted {
			continue
		}
		oneTime = oneTime.Add(c.OneTimeAmount)
		monthly = monthly.Add(c.MonthlyAmount)
	}
	return oneTime, monthly
}

// RecentClients returns the n clients with the most recent sentDate,
// descending, ties broken by original collection order.
func RecentClients(clients []Client, n int) []Client {
	recent := make([]Client, len(clients))
	copy(recent, clients)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].SentDate.After(recent[j].SentDate)
	})
	if n >= 0 && len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// ClientNote is a note tagged with its owning client's name for flattened
// listings.
type ClientNote struct {
	Note
	ClientName string
}

// RecentNotes flattens every client's notes, sorted by date descending
// with ties broken by collection order, truncated to n.
func RecentNotes(clients []Client, n int) []ClientNote {
	var notes []ClientNote
	for _, c := range clients {
		for _, note := range c.Notes {
			notes = append(notes, ClientNote{Note: note, ClientName: c.Name})
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date.After(notes[j].Date)
	})
	if n >= 0 && len(notes) > n {
		notes = notes[:n]
	}
	return notes
}

// AvailableYears returns the distinct sentDate years present in the
// collection, descending. An empty collection yields the given fallback
// year so the reports view always has something to show.
func AvailableYears(clients []Client, fallback int) []int {
	seen := make(map[int]bool)
	var years []int
	for _, c := range clients {
		if y := c.SentDate.Year(); !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return []int{fallback}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Summary is the home dashboard projection.
type Summary struct {
	Date           Date
	TotalClients   int
	Accepted       int
	Pending        int // pending group
	Lost           int
	OneTimeRevenue decimal.Decimal
	MonthlyRevenue decimal.Decimal
	RecentClients  []Client
	RecentNotes    []ClientNote
	Active         bool // any proposal sent within the 7 days before Date
}

// NewSummary derives the home dashboard values from the collection, as of
// the given date.
func NewSummary(clients []Client, on Date) *Summary {
	s := &Summary{Date: on, TotalClients: len(clients)}
	for _, c := range clients {
		switch {
		case c.Status == StatusAccepted:
			s.Accepted++
		case c.Status == StatusLost:
			s.Lost++
		case c.Status.IsPendingGroup():
			s.Pending++
		}
		if !c.SentDate.Before(on.Add(-7)) && !c.SentDate.After(on) {
			s.Active = true
		}
	}
	s.OneTimeRevenue, s.MonthlyRevenue = RevenueTotals(clients)
	s.RecentClients = RecentClients(clients, 5)
	s.RecentNotes = RecentNotes(clients, 5)
	return s
}

// Report is the reports page projection for one year.
type Report struct {
	Year           int
	TotalClients   int
	ConversionRate float64
	OneTimeRevenue decimal.Decimal
	MonthlyRevenue decimal.Decimal
	Statuses       map[Status]int
	Countries      *Tally
	Services       *Tally
	Months         [12]MonthBucket
}

// NewReport derives the reports page values from the collection. The
// breakdowns and totals cover the whole collection; only the monthly
// series is restricted to the given year.
func NewReport(clients []Client, year int) *Report {
	r := &Report{
		Year:           year,
		TotalClients:   len(clients),
		ConversionRate: ConversionRate(clients),
		Statuses:       StatusBreakdown(clients),
		Countries:      CountryBreakdown(clients),
		Services:       ServiceBreakdown(clients),
		Months:         MonthlySeries(clients, year),
	}
	r.OneTimeRevenue, r.MonthlyRevenue = RevenueTotals(clients)
	return r
}
