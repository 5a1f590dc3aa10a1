package renderer

import (
	"bytes"
	"fmt"

	"github.com/fmarino/prospect"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the reports page: overall figures, status,
// country and service distributions, and the monthly series for the
// report's year.
func ReportMarkdown(r *prospect.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Informe de Presupuestos")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Presupuestos"), md.Bold(fmt.Sprintf("%d", r.TotalClients))},
		Rows: [][]string{
			{"Tasa de Conversión", percent(r.ConversionRate)},
			{"Ingresos Únicos", r.OneTimeRevenue.String()},
			{"Ingresos Mensuales", r.MonthlyRevenue.String()},
		},
	})

	if len(r.Statuses) > 0 {
		doc.H2("Distribución por Estado")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Estado", "Clientes"},
		}
		// fixed status order, skipping absent statuses
		for _, s := range prospect.AllStatuses {
			if count, ok := r.Statuses[s]; ok {
				table.Rows = append(table.Rows, []string{s.Label(), fmt.Sprintf("%d", count)})
			}
		}
		doc.Table(table)
	}

	if r.Countries.Len() > 0 {
		doc.H2("Distribución por País")
		doc.Table(tallyTable("País", r.Countries.TopN(5)))
	}

	if r.Services.Len() > 0 {
		doc.H2("Distribución por Servicio")
		doc.Table(tallyTable("Servicio", r.Services.TopN(5)))
	}

	doc.H2(fmt.Sprintf("Presupuestos por Mes (%d)", r.Year))
	months := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Mes", "Total", "Aceptados", "Pendientes", "Perdidos"},
	}
	for _, b := range r.Months {
		months.Rows = append(months.Rows, []string{
			b.Month.String(),
			fmt.Sprintf("%d", b.Count),
			fmt.Sprintf("%d", b.Accepted),
			fmt.Sprintf("%d", b.Pending),
			fmt.Sprintf("%d", b.Lost),
		})
	}
	doc.Table(months)

	return doc.String()
}

// tallyTable builds a two-column table from tally entries.
func tallyTable(label string, entries []prospect.TallyEntry) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{label, "Clientes"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{e.Key, fmt.Sprintf("%d", e.Count)})
	}
	return table
}
