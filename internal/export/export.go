package export

import (
	"fmt"
	"strconv"
	"strings"

	"fastparcel/internal/order"
)

// ReportFilename is the fixed name of the CSV download.
const ReportFilename = "Shipping Summary.csv"

var csvHeader = []string{"AWB", "Service", "Status", "Cost", "Origin", "Destination", "Date"}

// RenderLabel renders the fixed plain-text shipping label.
func RenderLabel(o order.Order) string {
	return fmt.Sprintf(
		"Fast Parcel\nAWB: %s\nService: %s\nFrom: %s\nTo: %s\n\n[Barcode Placeholder]",
		o.AWB, o.Service, o.Origin, o.Destination,
	)
}

// LabelFilename returns the download name for an order's label.
func LabelFilename(o order.Order) string {
	return o.AWB + "-label.txt"
}

// RenderReport serializes the full ledger as comma-joined text, one
// row per order under the fixed 7-column header. Fields are joined
// verbatim, without CSV quoting, matching the exported file format
// (write-only, not required to round-trip).
func RenderReport(orders []order.Order) string {
	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, o := range orders {
		row := []string{
			o.AWB,
			o.Service,
			string(o.Status),
			formatCents(o.CostCents),
			o.Origin,
			o.Destination,
			o.Date,
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// formatCents prints an amount as a plain number: whole rupees
// without decimals, fractional amounts with two.
func formatCents(cents int64) string {
	if cents%100 == 0 {
		return strconv.FormatInt(cents/100, 10)
	}
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
