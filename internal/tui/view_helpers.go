package tui

import (
	"fmt"
	"strings"

	"github.com/medvision-ai/medvision-client/internal/service"
	"github.com/medvision-ai/medvision-client/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func riskLabel(r models.RiskLevel) string {
	label := string(r)
	if r == models.RiskHigh {
		return highRiskStyle.Render(label)
	}
	return label
}

func scanLine(scan models.Scan) string {
	return fmt.Sprintf("%-12s %-18s %-20s %-8s %s",
		scan.CreatedAt.Format("2006-01-02"),
		fitText(service.DiseaseName(scan.Diagnosis.Disease), 18),
		fitText(scan.UserName, 20),
		percent(scan.Diagnosis.Confidence),
		riskLabel(scan.Diagnosis.RiskLevel),
	)
}
