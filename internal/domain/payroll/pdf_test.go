package payroll

import (
	"bytes"
	"testing"
	"time"
)

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	p := CalculateNetSalary(dec(t, "5000"), true)
	if err := RenderPDF(&buf, p, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf header, got %q", buf.Bytes()[:min(buf.Len(), 8)])
	}
}

func TestDisplayRoundsToTwoPlaces(t *testing.T) {
	d := CalculateNetSalary(dec(t, "3000"), false).Display()
	if d.INSS != "258.82" || d.IRRF != "36.15" || d.NetSalary != "2705.03" || d.TaxableSalary != "2741.18" {
		t.Fatalf("unexpected display %+v", d)
	}
	if d.AdvanceSalary != "0.00" {
		t.Fatalf("expected zero advance, got %s", d.AdvanceSalary)
	}
}
