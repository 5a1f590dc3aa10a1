package cmd

import (
	"flag"
	"testing"

	"github.com/fmarino/prospect"
	"github.com/shopspring/decimal"
)

// parseForm runs a clientForm over args the way a command would.
func parseForm(t *testing.T, args ...string) (*clientForm, map[string]bool) {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	form := &clientForm{}
	form.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return form, flagsSet(f)
}

func baseDraft() prospect.ClientDraft {
	return prospect.ClientDraft{
		Name:     "Acme SRL",
		NeedDate: prospect.MustParseDate("2026-03-15"),
		SentDate: prospect.MustParseDate("2026-02-01"),
		Status:   prospect.StatusPending,
		Country:  "AR",
		Currency: prospect.ARS,
	}
}

func TestFormOverridesOnlyPassedFlags(t *testing.T) {
	form, set := parseForm(t, "-status", "ACCEPTED", "-one-time", "1500.50")

	d := baseDraft()
	if err := form.apply(&d, set); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if d.Status != prospect.StatusAccepted {
		t.Errorf("status: got %s", d.Status)
	}
	if !d.OneTimeAmount.Equal(decimal.RequireFromString("1500.50")) {
		t.Errorf("amount: got %s", d.OneTimeAmount)
	}
	// Untouched fields keep their values.
	if d.Name != "Acme SRL" || d.Country != "AR" || d.Currency != prospect.ARS {
		t.Errorf("untouched fields changed: %+v", d)
	}
}

func TestFormCountryChangeDerivesCurrency(t *testing.T) {
	form, set := parseForm(t, "-country", "ES")
	d := baseDraft()
	if err := form.apply(&d, set); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if d.Country != "ES" || d.Currency != prospect.EUR {
		t.Errorf("got country %s currency %s, want ES EUR", d.Country, d.Currency)
	}
}

func TestFormExplicitCurrencyWinsOverCountry(t *testing.T) {
	form, set := parseForm(t, "-country", "ES", "-currency", "USD")
	d := baseDraft()
	if err := form.apply(&d, set); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if d.Currency != prospect.USD {
		t.Errorf("got currency %s, want USD", d.Currency)
	}
}

func TestFormRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"-status", "MAYBE"},
		{"-sent", "not a date"},
		{"-services", "1,x"},
		{"-currency", "BTC"},
		{"-one-time", "lots"},
	}
	for _, args := range cases {
		form, set := parseForm(t, args...)
		d := baseDraft()
		if err := form.apply(&d, set); err == nil {
			t.Errorf("apply(%v) accepted a bad value", args)
		}
	}
}

func TestParseServiceIDs(t *testing.T) {
	ids, err := parseServiceIDs(" 1, 3 ,8")
	if err != nil {
		t.Fatalf("parseServiceIDs: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 3 || ids[2] != 8 {
		t.Errorf("got %v", ids)
	}
	if ids, _ := parseServiceIDs("  "); ids != nil {
		t.Errorf("blank input: got %v, want nil", ids)
	}
}

func TestParseTags(t *testing.T) {
	tags, err := parseTags("meeting, IMPORTANT")
	if err != nil {
		t.Fatalf("parseTags: %v", err)
	}
	if len(tags) != 2 || tags[0] != prospect.TagMeeting || tags[1] != prospect.TagImportant {
		t.Errorf("got %v", tags)
	}
	if _, err := parseTags("URGENT"); err == nil {
		t.Error("accepted an unknown tag")
	}
}
