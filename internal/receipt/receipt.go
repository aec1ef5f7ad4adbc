// Package receipt renders printable order receipts.
package receipt

import (
	"bytes"
	"fmt"

	"parts-service/internal/domain"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// QRPayload is the text encoded in a receipt's QR code: order|vendor|total.
func QRPayload(o domain.Order) string {
	return fmt.Sprintf("%d|%d|%s", o.ID, o.VendorID, o.TotalAmount().StringFixed(2))
}

// Render produces an A4 PDF receipt for one order.
func Render(v domain.Vendor, o domain.Order) ([]byte, error) {
	return render(v, o, true)
}

func render(v domain.Vendor, o domain.Order, compress bool) ([]byte, error) {
	qrPNG, err := qrcode.Encode(QRPayload(o), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("receipt: qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(fmt.Sprintf("Order #%d", o.ID), false)
	// The core fonts are cp1252; names and addresses arrive as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(v.Name))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("%s  |  %s", v.Location, v.Phone)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Order #%d", o.ID))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		"Status: " + string(o.Status),
		"Placed: " + o.CreatedAt.Format("02 Jan 2006 15:04"),
		"Customer: " + o.CustomerName,
		"Phone: " + o.CustomerPhone,
		"Deliver to: " + o.DeliveryAddress,
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 30, 40, 40, false, imageOpts, 0, "")

	pdf.Ln(8)
	widths := []float64{70, 35, 35, 15, 35}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Part", "Brand", "Part No.", "Qty", "Amount"} {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, it := range o.Items {
		pdf.CellFormat(widths[0], 7, tr(it.PartName), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(it.BrandName), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, tr(it.PartNumber), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprint(it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, money(it.Currency, it.TotalPrice().StringFixed(2)), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(widths[3], 8, fmt.Sprint(o.ItemCount()), "T", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 8, money(currency(o), o.TotalAmount().StringFixed(2)), "T", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: render: %w", err)
	}
	return buf.Bytes(), nil
}

func currency(o domain.Order) string {
	for _, it := range o.Items {
		if it.Currency != "" {
			return it.Currency
		}
	}
	return domain.DefaultCurrency
}

func money(cur, amount string) string {
	if cur == "" {
		cur = domain.DefaultCurrency
	}
	return cur + " " + amount
}
