package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/utils"
)

type EditSettingsMsg struct{}

type EditDatesMsg struct{}

type Model struct {
	snap   form.Snapshot
	width  int
	height int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("34")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(28)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

func New(snap form.Snapshot, width, height int) Model {
	return Model{
		snap:   snap,
		width:  width,
		height: height,
	}
}

func (m *Model) SetSnapshot(snap form.Snapshot) {
	m.snap = snap
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return m, func() tea.Msg { return EditSettingsMsg{} }
		case "d":
			return m, func() tea.Msg { return EditDatesMsg{} }
		}
	}
	return m, nil
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(value))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func (m Model) View() string {
	d := m.snap.Draft

	earliest := d.EarliestPlayableTime
	if t, err := utils.To12Hour(earliest); err == nil {
		earliest = t
	}
	days := "None"
	if len(d.PlayableDaysOfWeek) > 0 {
		days = strings.Join(d.PlayableDaysOfWeek, ", ")
	}

	var sections []string

	whenTitle := titleStyle.Render("When You Can Play")
	whenContent := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Playable days:", days),
		row("Earliest tee time:", orDash(earliest)),
		row("Season:", fmt.Sprintf("%s - %s", utils.FormatDateToMD(d.StartDate), utils.FormatDateToMD(d.EndDate))),
		row("Include holidays:", yesNo(d.IncludeHolidays)),
	)
	sections = append(sections, sectionStyle.Render(whenTitle+"\n"+whenContent))

	var dates []string
	for _, e := range m.snap.ExtraDays {
		switch {
		case strings.TrimSpace(e.Value) == "":
			continue
		case e.Invalid:
			dates = append(dates, invalidStyle.Render(e.Value+" (invalid)"))
		default:
			dates = append(dates, valueStyle.Render(e.Value))
		}
	}
	extraTitle := titleStyle.Render("Extra Playable Days")
	extraContent := labelStyle.Render("None")
	if len(dates) > 0 {
		extraContent = lipgloss.JoinVertical(lipgloss.Left, dates...)
	}
	sections = append(sections, sectionStyle.Render(extraTitle+"\n"+extraContent))

	notifTitle := titleStyle.Render("Notifications")
	notifContent := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Minimum players:", orDash(d.MinPlayers)),
		row("Minutes before sunset:", orDash(d.MinimumMinutesBeforeSunset)),
		row("Currently:", enabledLabel(m.snap.Toggle.CurrentlyEnabled)),
		row("On save:", m.choiceLabel()),
	)
	sections = append(sections, sectionStyle.Render(notifTitle+"\n"+notifContent))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "On"
	}
	return "Paused"
}

func (m Model) choiceLabel() string {
	t := m.snap.Toggle
	if t.KeepsCurrent(m.snap.Draft.NotificationsEnabled) {
		return t.KeepLabel()
	}
	return t.FlipLabel()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
