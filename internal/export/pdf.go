// Package export renders order paperwork: a PDF document with the order
// lines, the feasibility verdict, per-material cutting statistics and the
// cutting instructions text, plus a QR code identifying the order.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/avetrov/parkcut/internal/model"
	"github.com/avetrov/parkcut/internal/warehouse"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	lineHeight   = 5.0
	qrSize       = 24.0
)

// OrderDocument gathers everything the order paperwork shows.
type OrderDocument struct {
	Order        model.Order
	Catalog      *model.Catalog
	TotalCost    string
	Currency     string
	Shortfalls   []warehouse.Shortfall
	Results      map[string]model.OptimizeResult
	Instructions map[string]string
}

// orderStamp is the metadata encoded into the document's QR code.
type orderStamp struct {
	OrderID   string `json:"order_id"`
	Customer  string `json:"customer"`
	TotalCost string `json:"total_cost"`
	Feasible  bool   `json:"feasible"`
}

// ExportOrderPDF writes the order paperwork to path.
func ExportOrderPDF(path string, doc OrderDocument) error {
	if len(doc.Order.Items) == 0 {
		return fmt.Errorf("order has no items to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, doc)
	renderOrderLines(pdf, doc)
	renderFeasibility(pdf, doc)
	renderCuttingPlans(pdf, doc)

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, doc OrderDocument) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize, 8, fmt.Sprintf("Order %s", doc.Order.ID), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth-qrSize, 6, fmt.Sprintf("Customer: %s", doc.Order.Customer), "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth-qrSize, 6, fmt.Sprintf("Total: %s %s", doc.TotalCost, doc.Currency), "", 1, "L", false, 0, "")

	// QR stamp in the top-right corner; skipped silently if encoding fails
	// so a QR library hiccup never blocks the paperwork.
	stamp := orderStamp{
		OrderID:   doc.Order.ID,
		Customer:  doc.Order.Customer,
		TotalCost: doc.TotalCost,
		Feasible:  len(doc.Shortfalls) == 0,
	}
	if data, err := json.Marshal(stamp); err == nil {
		if png, err := qrcode.Encode(string(data), qrcode.Medium, 256); err == nil {
			imgName := "qr_order_" + doc.Order.ID
			pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
			pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false,
				fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}
	pdf.Ln(6)
}

func renderOrderLines(pdf *fpdf.Fpdf, doc OrderDocument) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 7, "Order lines", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	for _, item := range doc.Order.Items {
		name := item.RefID
		unit := ""
		switch item.Kind {
		case model.ItemProduct:
			if p := doc.Catalog.FindProduct(item.RefID); p != nil {
				name = p.Name
			}
			unit = "pcs"
		case model.ItemStage:
			if s := doc.Catalog.FindStage(item.RefID); s != nil {
				name = s.Name
			}
			unit = "m"
		}
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, lineHeight,
			fmt.Sprintf("%s — %g %s", name, item.Amount, unit), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func renderFeasibility(pdf *fpdf.Fpdf, doc OrderDocument) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 7, "Stock availability", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	if len(doc.Shortfalls) == 0 {
		pdf.SetTextColor(0, 120, 0)
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, lineHeight, "All materials available.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetTextColor(180, 0, 0)
		for _, s := range doc.Shortfalls {
			pdf.SetX(marginLeft)
			pdf.CellFormat(contentWidth, lineHeight, s.String(), "", 1, "L", false, 0, "")
		}
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func renderCuttingPlans(pdf *fpdf.Fpdf, doc OrderDocument) {
	if len(doc.Instructions) == 0 {
		return
	}

	materials := make([]string, 0, len(doc.Instructions))
	for name := range doc.Instructions {
		materials = append(materials, name)
	}
	sort.Strings(materials)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 7, "Cutting instructions", "B", 1, "L", false, 0, "")

	for _, material := range materials {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetX(marginLeft)
		title := material
		if res, ok := doc.Results[material]; ok {
			title = fmt.Sprintf("%s (waste %.2f m, efficiency %.1f%%)", material, res.TotalWaste, res.EfficiencyPercent)
		}
		pdf.CellFormat(contentWidth, 6, title, "", 1, "L", false, 0, "")

		pdf.SetFont("Courier", "", 8)
		for _, line := range strings.Split(strings.TrimRight(doc.Instructions[material], "\n"), "\n") {
			pdf.SetX(marginLeft)
			pdf.CellFormat(contentWidth, 4, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}
}
