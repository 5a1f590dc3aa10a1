package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/fmarino/prospect"
	"github.com/shopspring/decimal"
)

// clientForm gathers the client field flags shared by the add and edit
// commands. Updates have full-field replace semantics, so edit starts
// from the stored client's draft and overrides only the flags the user
// actually passed, exactly like a form pre-filled with current values.
type clientForm struct {
	name          string
	services      string
	customService string
	needDate      string
	sentDate      string
	status        string
	country       string
	currency      string
	oneTime       string
	monthly       string
}

func (c *clientForm) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client display name.")
	f.StringVar(&c.services, "services", "", "Comma-separated predefined service ids (e.g. 1,3). See 'topic clients'.")
	f.StringVar(&c.customService, "custom-service", "", "Free-text service label, additive to -services.")
	f.StringVar(&c.needDate, "need", "", "Date the client needs the project (YYYY-MM-DD).")
	f.StringVar(&c.sentDate, "sent", "", "Date the proposal was sent (YYYY-MM-DD).")
	f.StringVar(&c.status, "status", "", "Proposal status (SENT, ACCEPTED, LOST, PENDING, IN_NEGOTIATION).")
	f.StringVar(&c.country, "country", "", "Country id (AR, US, ES, ...).")
	f.StringVar(&c.currency, "currency", "", "Currency (USD, EUR, ARS). Defaults to the country's currency.")
	f.StringVar(&c.oneTime, "one-time", "", "One-time proposal amount.")
	f.StringVar(&c.monthly, "monthly", "", "Monthly proposal amount.")
}

// apply overrides the draft fields for every flag present in set.
// Changing the country without an explicit -currency re-applies the
// country's default currency; the store itself never derives currency.
func (c *clientForm) apply(d *prospect.ClientDraft, set map[string]bool) error {
	if set["name"] {
		d.Name = c.name
	}
	if set["services"] {
		ids, err := parseServiceIDs(c.services)
		if err != nil {
			return err
		}
		d.Services = ids
	}
	if set["custom-service"] {
		d.CustomService = c.customService
	}
	if set["need"] {
		on, err := prospect.ParseDate(c.needDate)
		if err != nil {
			return err
		}
		d.NeedDate = on
	}
	if set["sent"] {
		on, err := prospect.ParseDate(c.sentDate)
		if err != nil {
			return err
		}
		d.SentDate = on
	}
	if set["status"] {
		st, err := prospect.ParseStatus(c.status)
		if err != nil {
			return err
		}
		d.Status = st
	}
	if set["country"] {
		d.Country = c.country
		if cur, ok := prospect.DefaultCurrency(c.country); ok && !set["currency"] {
			d.Currency = cur
		}
	}
	if set["currency"] {
		cur, err := prospect.ParseCurrency(c.currency)
		if err != nil {
			return err
		}
		d.Currency = cur
	}
	if set["one-time"] {
		amount, err := parseAmount(c.oneTime)
		if err != nil {
			return err
		}
		d.OneTimeAmount = amount
	}
	if set["monthly"] {
		amount, err := parseAmount(c.monthly)
		if err != nil {
			return err
		}
		d.MonthlyAmount = amount
	}
	return nil
}

// flagsSet returns the names of the flags explicitly passed on the
// command line.
func flagsSet(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// parseServiceIDs parses a comma-separated list of predefined service ids.
func parseServiceIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid service id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseTags parses a comma-separated list of note tags.
func parseTags(s string) ([]prospect.NoteTag, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var tags []prospect.NoteTag
	for _, part := range strings.Split(s, ",") {
		tag, err := prospect.ParseNoteTag(strings.ToUpper(strings.TrimSpace(part)))
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// parseAmount parses a decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}
