package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type teamFormModel struct {
	input      textinput.Model
	submitting bool
	created    string
}

func newTeamFormModel() teamFormModel {
	in := textinput.New()
	in.Placeholder = "team name"
	in.CharLimit = 128
	in.Width = 40
	in.Focus()
	return teamFormModel{input: in}
}

func (m teamFormModel) View() string {
	body := "Name [" + m.input.View() + "]\n"
	if m.submitting {
		body += "\n[Creating...]"
	} else {
		body += "\n[Create]"
	}
	if m.created != "" {
		body += "\n\n" + m.created
	}
	return renderPage("NEW TEAM", body, "esc: back | enter: create")
}

type memberFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newMemberFormModel() memberFormModel {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "team ID"
	inputs[0].CharLimit = 19
	inputs[0].Width = 20
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "user ID"
	inputs[1].CharLimit = 19
	inputs[1].Width = 20

	return memberFormModel{inputs: inputs}
}

func (m memberFormModel) View() string {
	var b strings.Builder
	b.WriteString("Team ID [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("User ID [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Adding...]")
	} else {
		b.WriteString("\n[Add member]")
	}
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("ADD TEAM MEMBER", b.String(), "esc: back | tab: next field | enter: add")
}
