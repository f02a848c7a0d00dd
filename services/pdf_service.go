// services/pdf_service.go
package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"tradepro-backend/models"

	"github.com/jung-kurt/gofpdf"
)

type PDFService struct {
	outputDir string
}

func NewPDFService() *PDFService {
	dir := os.Getenv("INVOICE_PDF_DIR")
	if dir == "" {
		dir = "pdfs"
	}
	return &PDFService{outputDir: dir}
}

// RenderInvoice renders the invoice as an A4 PDF and returns the bytes.
func (s *PDFService) RenderInvoice(invoice *models.Invoice, company *models.Company) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(120, 10, company.Name)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(70, 10, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(120, 5, company.Address)
	pdf.CellFormat(70, 5, "Invoice #: "+invoice.InvoiceNumber, "", 1, "R", false, 0, "")
	pdf.Cell(120, 5, company.Phone)
	pdf.CellFormat(70, 5, "Date: "+invoice.CreatedAt.Format("Jan 2, 2006"), "", 1, "R", false, 0, "")
	if invoice.DueDate != nil {
		pdf.Cell(120, 5, "")
		pdf.CellFormat(70, 5, "Due: "+invoice.DueDate.Format("Jan 2, 2006"), "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(40, 6, "Bill To:")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(100, 5, invoice.CustomerName)
	pdf.Ln(5)
	if invoice.CustomerAddress != "" {
		pdf.Cell(100, 5, invoice.CustomerAddress)
		pdf.Ln(5)
	}
	if invoice.CustomerEmail != "" {
		pdf.Cell(100, 5, invoice.CustomerEmail)
		pdf.Ln(5)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(60, 6, invoice.Title)
	pdf.Ln(10)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(95, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		pdf.CellFormat(95, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%g", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", item.Amount), "1", 1, "R", false, 0, "")
	}

	// Totals
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", invoice.Subtotal), "1", 1, "R", false, 0, "")
	if invoice.TaxRate > 0 {
		pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("Tax (%g%%)", invoice.TaxRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", invoice.TaxAmount), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", invoice.Total), "1", 1, "R", false, 0, "")

	if invoice.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(40, 5, "Notes")
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(190, 5, invoice.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveInvoicePDF renders and writes the PDF under the output directory,
// returning the stored path.
func (s *PDFService) SaveInvoicePDF(invoice *models.Invoice, company *models.Company) (string, error) {
	data, err := s.RenderInvoice(invoice, company)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%d.pdf", invoice.InvoiceNumber, time.Now().Unix())
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
