package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fmarino/prospect"
	md "github.com/nao1215/markdown"
)

// ClientsMarkdown renders the client list as a table.
func ClientsMarkdown(clients []prospect.Client) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Clientes")
	if len(clients) == 0 {
		doc.PlainText("No hay clientes registrados.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Cliente", "Estado", "País", "Enviada", "Monto Único", "Monto Mensual", "Notas"},
	}
	for _, c := range clients {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			c.Status.Label(),
			c.CountryName(),
			c.SentDate.String(),
			money(prospect.M(c.OneTimeAmount, c.Currency)),
			money(prospect.M(c.MonthlyAmount, c.Currency)),
			fmt.Sprintf("%d", len(c.Notes)),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ClientMarkdown renders a single client card, services included.
func ClientMarkdown(c prospect.Client) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (#%d)", c.Name, c.ID))

	services := strings.Join(c.ServiceNames(), ", ")
	if c.CustomService != "" {
		if services != "" {
			services += ", "
		}
		services += c.CustomService
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{md.Bold("Estado"), md.Bold(c.Status.Label())},
		Rows: [][]string{
			{"Servicios", services},
			{"Fecha de Necesidad", c.NeedDate.String()},
			{"Fecha de Envío", c.SentDate.String()},
			{"País", c.CountryName()},
			{"Moneda", string(c.Currency)},
			{"Monto Único", money(prospect.M(c.OneTimeAmount, c.Currency))},
			{"Monto Mensual", money(prospect.M(c.MonthlyAmount, c.Currency))},
		},
	})

	return doc.String()
}
