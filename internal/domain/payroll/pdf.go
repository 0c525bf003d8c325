package payroll

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type pdfLine struct {
	label string
	value string
}

// RenderPDF writes a single-page A4 payslip to w.
func RenderPDF(w io.Writer, p Payslip, issuedAt time.Time) error {
	d := p.Display()
	lines := []pdfLine{
		{"Gross Salary", d.GrossSalary},
		{"INSS", d.INSS},
		{"Taxable Salary", d.TaxableSalary},
		{"IRRF", d.IRRF},
	}
	if p.ReceiveAdvance {
		lines = append(lines, pdfLine{"Advance Salary", d.AdvanceSalary})
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Issued: %s", issuedAt.Format("2006-01-02")))
	pdf.Ln(10)
	for _, line := range lines {
		pdf.CellFormat(60, 8, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, line.value, "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, "Net Salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, d.NetSalary, "T", 1, "R", false, 0, "")

	return pdf.Output(w)
}
