// Package report renders a scan's diagnosis as an exportable artifact:
// a PDF document for saving to disk and a plain-text block for the
// clipboard.
package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/medvision-ai/medvision-client/internal/service"
	"github.com/medvision-ai/medvision-client/models"
)

// GeneratePDF renders a one-page diagnostic report for the scan: brand
// header bar, report metadata, the finding with its confidence, and the
// explanation body with the markdown bold markers stripped.
func GeneratePDF(scan models.Scan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	// brand header bar
	pdf.SetFillColor(10, 94, 215)
	pdf.Rect(0, 0, pageWidth, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(20, 25, "MedVision AI")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 35, fmt.Sprintf("Medical %s Diagnostic Report", strings.ToUpper(string(scan.ImageType))))

	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 55, fmt.Sprintf("Report ID: %s", scan.ID))
	pdf.Text(pageWidth-80, 55, fmt.Sprintf("Date: %s", scan.CreatedAt.Format("January 2, 2006 15:04")))
	pdf.Text(20, 65, fmt.Sprintf("Analyzed by: %s", scan.UserName))

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(20, 85, "Diagnosis Results")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 95, fmt.Sprintf("Finding: %s", service.DiseaseName(scan.Diagnosis.Disease)))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 103, fmt.Sprintf("Confidence: %.1f%%", scan.Diagnosis.Confidence*100))

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 118, "AI Analysis Explanation")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 122)
	pdf.MultiCell(pageWidth-40, 5, plainExplanation(scan.Diagnosis.Explanation), "", "L", false)

	if len(scan.Diagnosis.Recommendations) > 0 {
		pdf.Ln(6)
		pdf.SetX(20)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(pageWidth-40, 6, "Recommendations", "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		for _, rec := range scan.Diagnosis.Recommendations {
			pdf.SetX(20)
			pdf.MultiCell(pageWidth-40, 5, "- "+rec, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName is the report's suggested on-disk name.
func FileName(scan models.Scan) string {
	return fmt.Sprintf("MedVision_%s_Report_%s.pdf", strings.ToUpper(string(scan.ImageType)), scan.ID)
}

// SaveToFile renders the report and writes it next to path.
func SaveToFile(scan models.Scan, path string) error {
	data, err := GeneratePDF(scan)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

// Text renders the report as plain text for the clipboard.
func Text(scan models.Scan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "MedVision AI - Medical %s Diagnostic Report\n\n", strings.ToUpper(string(scan.ImageType)))
	fmt.Fprintf(&b, "Report ID: %s\n", scan.ID)
	fmt.Fprintf(&b, "Date: %s\n", scan.CreatedAt.Format("January 2, 2006 15:04"))
	fmt.Fprintf(&b, "Analyzed by: %s\n", scan.UserName)
	fmt.Fprintf(&b, "Body part: %s\n\n", scan.BodyPart)
	fmt.Fprintf(&b, "Finding: %s\n", service.DiseaseName(scan.Diagnosis.Disease))
	fmt.Fprintf(&b, "Confidence: %.1f%%\n", scan.Diagnosis.Confidence*100)
	fmt.Fprintf(&b, "Risk level: %s\n\n", scan.Diagnosis.RiskLevel)
	fmt.Fprintf(&b, "%s\n", plainExplanation(scan.Diagnosis.Explanation))

	if len(scan.Diagnosis.AffectedRegions) > 0 {
		b.WriteString("\nAffected regions:\n")
		for _, region := range scan.Diagnosis.AffectedRegions {
			fmt.Fprintf(&b, "- %s\n", region)
		}
	}

	if len(scan.Diagnosis.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range scan.Diagnosis.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}

// plainExplanation strips the markdown bold markers from the lexicon text.
func plainExplanation(text string) string {
	return strings.ReplaceAll(text, "**", "")
}
