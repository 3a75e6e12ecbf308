package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clip-relay/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderStatus(relayURL string, s models.StatusResponse) string {
	state := errorStyle.Render("stopped")
	if s.Running {
		state = okStyle.Render("running")
	}

	content := "empty"
	if !s.UpdatedAt.IsZero() {
		content = fmt.Sprintf("%s from %s", s.ContentType, orDash(s.DeviceName))
	}

	lines := []string{
		titleStyle.Render("clip relay"),
		row("relay", relayURL),
		row("state", state),
		row("version", orDash(s.Version)),
		row("clipboard", content),
		row("updated", orDash(s.UpdatedAt.String())),
		row("uploads", fmt.Sprint(s.Uploads)),
		row("fetches", fmt.Sprint(s.Fetches)),
	}

	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func renderBuildInfo(info models.AppBuildInfo) string {
	return strings.Join([]string{
		titleStyle.Render("clipctl"),
		row("version", info.BuildVersion()),
		row("date", info.BuildDate()),
		row("commit", info.BuildCommit()),
	}, "\n") + "\n"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
