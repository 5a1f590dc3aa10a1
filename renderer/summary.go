package renderer

import (
	"bytes"
	"fmt"

	"github.com/fmarino/prospect"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the home dashboard.
func SummaryMarkdown(s *prospect.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Resumen al %s", s.Date))

	activity := "Inactivo"
	if s.Active {
		activity = "Activo"
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Clientes"), md.Bold(fmt.Sprintf("%d", s.TotalClients))},
		Rows: [][]string{
			{"Aceptados", fmt.Sprintf("%d", s.Accepted)},
			{"Pendientes", fmt.Sprintf("%d", s.Pending)},
			{"Perdidos", fmt.Sprintf("%d", s.Lost)},
			{"Ingresos Únicos", s.OneTimeRevenue.String()},
			{"Ingresos Mensuales", s.MonthlyRevenue.String()},
			{"Actividad (últimos 7 días)", activity},
		},
	})

	if len(s.RecentClients) > 0 {
		doc.H2("Clientes Recientes")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Cliente", "Enviada", "Estado"},
		}
		for _, c := range s.RecentClients {
			table.Rows = append(table.Rows, []string{c.Name, c.SentDate.String(), c.Status.Label()})
		}
		doc.Table(table)
	}

	if len(s.RecentNotes) > 0 {
		doc.H2("Notas Recientes")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Fecha", "Título", "Cliente", "Etiquetas"},
		}
		for _, n := range s.RecentNotes {
			table.Rows = append(table.Rows, []string{n.Date.String(), n.Title, n.ClientName, tags(n.Note)})
		}
		doc.Table(table)
	}

	return doc.String()
}
