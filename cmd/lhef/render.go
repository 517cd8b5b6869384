package main

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/midbel/hep/lhef"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func renderField(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func renderRun(doc *Document) string {
	var (
		run   = doc.Run()
		parts []string
	)
	parts = append(parts, titleStyle.Render(doc.File))
	if v := doc.Version(); v != "" {
		parts = append(parts, renderField("version", v))
	}
	if h, ok := doc.Header(); ok {
		parts = append(parts, renderField("header", fmt.Sprintf("%d bytes", len(h))))
	}
	if c := doc.Comments(); len(c) > 0 {
		parts = append(parts, renderField("comments", len(c)))
	}
	beams := fmt.Sprintf("%d (%s GeV) x %d (%s GeV)",
		run.BeamID[0], formatFloat(run.BeamEnergy[0]),
		run.BeamID[1], formatFloat(run.BeamEnergy[1]),
	)
	parts = append(parts, renderField("beams", beams))
	pdfs := fmt.Sprintf("group %d/%d, set %d/%d", run.PDFGroup[0], run.PDFGroup[1], run.PDFSet[0], run.PDFSet[1])
	parts = append(parts, renderField("pdf", pdfs))
	parts = append(parts, renderField("weighting", run.WeightStrategy))
	parts = append(parts, renderField("processes", run.NumProcesses))

	if run.NumProcesses > 0 {
		rows := make([][]string, 0, run.NumProcesses)
		for i := range run.NumProcesses {
			rows = append(rows, []string{
				strconv.Itoa(run.ProcessID[i]),
				formatFloat(run.CrossSection[i]),
				formatFloat(run.CrossSectionError[i]),
				formatFloat(run.MaxWeight[i]),
			})
		}
		parts = append(parts, renderTable([]string{"process", "xsec (pb)", "error (pb)", "max weight"}, rows))
	}
	if info := strings.TrimSpace(run.Info); info != "" {
		parts = append(parts, infoStyle.Render(info))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderEvent(index int, evt *lhef.Event, withInfo bool) string {
	var parts []string

	title := fmt.Sprintf("event #%d", index)
	parts = append(parts, titleStyle.Render(title))
	parts = append(parts, renderField("process", evt.ProcessID))
	parts = append(parts, renderField("weight", formatFloat(evt.Weight)))
	parts = append(parts, renderField("scale", formatFloat(evt.Scale)))
	parts = append(parts, renderField("alpha qed", formatFloat(evt.AlphaQED)))
	parts = append(parts, renderField("alpha qcd", formatFloat(evt.AlphaQCD)))

	rows := make([][]string, 0, len(evt.Particles))
	for i, p := range evt.Particles {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(p.ID),
			strconv.Itoa(p.Status),
			fmt.Sprintf("%d %d", p.Mothers[0], p.Mothers[1]),
			fmt.Sprintf("%d %d", p.Colors[0], p.Colors[1]),
			formatFloat(p.Momentum[0]),
			formatFloat(p.Momentum[1]),
			formatFloat(p.Momentum[2]),
			formatFloat(p.Energy()),
			formatFloat(p.Mass()),
			formatFloat(p.Pt()),
			formatFloat(p.Lifetime),
			formatFloat(p.Spin),
		})
	}
	headers := []string{"#", "id", "status", "mothers", "colors", "px", "py", "pz", "e", "m", "pt", "vtim", "spin"}
	parts = append(parts, renderTable(headers, rows))

	if info := strings.TrimSpace(evt.Info); withInfo && info != "" {
		parts = append(parts, infoStyle.Render(info))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
