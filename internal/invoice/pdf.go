package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/queries"
)

// Generator renders a one-page PDF invoice for a completed order.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func (g *Generator) Render(o *queries.OrderView, customerName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", o.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Order: %s", o.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", o.CreatedAt.Format(time.DateOnly)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", customerName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Ship to: %s", o.ShippingAddress))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", o.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	var subtotal int64
	for _, l := range o.Lines {
		subtotal += l.SubtotalCents
		pdf.CellFormat(90, 8, l.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", l.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatCents(l.UnitPriceCents), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatCents(l.SubtotalCents), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 8, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, formatCents(subtotal), "", 1, "R", false, 0, "")

	if o.CouponCode != nil {
		discount := subtotal - o.TotalCents
		pdf.CellFormat(150, 8, fmt.Sprintf("Coupon (%s)", *o.CouponCode), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, "-"+formatCents(discount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(150, 10, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 10, formatCents(o.TotalCents), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to render invoice pdf")
	}
	return buf.Bytes(), nil
}
