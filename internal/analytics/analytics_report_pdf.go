package analytics

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderTeamReport writes an A4 PDF with one section per team insight.
func RenderTeamReport(w io.Writer, teams []TeamInsight, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Team insights", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Team insights")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated at "+generatedAt.UTC().Format(time.RFC3339))
	pdf.Ln(10)

	if len(teams) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 8, "No active profiles.")
	}

	for _, t := range teams {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(t.TeamName))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Members: %d", t.MemberCount))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Average performance: %.1f", t.AveragePerformance))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Average points: %.1f", t.AveragePoints))
		pdf.Ln(6)
		pdf.MultiCell(0, 6, tr("Levels: "+formatDistribution(t.LevelDistribution)), "", "L", false)
		pdf.MultiCell(0, 6, tr("Skills: "+formatDistribution(t.SkillDistribution)), "", "L", false)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(90, 6, "Member", "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, "Level", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, "Points", "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, m := range t.Members {
			pdf.CellFormat(90, 6, tr(m.FullName), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, m.Level, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d", m.Points), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// formatDistribution lists entries by count, then name.
func formatDistribution(dist map[string]int) string {
	if len(dist) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if dist[keys[i]] != dist[keys[j]] {
			return dist[keys[i]] > dist[keys[j]]
		}
		return keys[i] < keys[j]
	})

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%d)", k, dist[k])
	}
	return out
}
