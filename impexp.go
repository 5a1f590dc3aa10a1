package prospect

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file contains the export projection. The export format is a CSV
// with one row per client and a fixed set of columns; notes never travel
// through this path.

// DefaultCSVFilename is the fixed name of the exported file.
const DefaultCSVFilename = "clientes.csv"

// csvHeaders are the human-readable column labels of the export, in
// column order.
var csvHeaders = []string{
	"ID",
	"Nombre del Cliente",
	"Servicios",
	"Servicio Personalizado",
	"Fecha de Necesidad",
	"Fecha de Envío",
	"Estado",
	"País",
	"Moneda",
	"Monto Único",
	"Monto Mensual",
}

// CSVProjection flattens the collection into the export's header row and
// one data row per client.
func CSVProjection(clients []Client) (headers []string, rows [][]string) {
	rows = make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			strings.Join(c.ServiceNames(), ", "),
			c.CustomService,
			c.NeedDate.String(),
			c.SentDate.String(),
			string(c.Status),
			c.CountryName(),
			string(c.Currency),
			c.OneTimeAmount.String(),
			c.MonthlyAmount.String(),
		})
	}
	return csvHeaders, rows
}

// ExportCSV writes the collection to w in the export format, header row
// first.
func ExportCSV(w io.Writer, clients []Client) error {
	headers, rows := CSVProjection(clients)
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("export error: cannot write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export error: cannot write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export error: %w", err)
	}
	return nil
}
