package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/teamgrid/richinfo-server/models"
)

// lookupModel asks for a teammate's user ID before fetching their profile.
type lookupModel struct {
	input      textinput.Model
	submitting bool
}

func newLookupModel() lookupModel {
	in := textinput.New()
	in.Placeholder = "user ID"
	in.CharLimit = 19
	in.Width = 20
	in.Focus()
	return lookupModel{input: in}
}

func (m lookupModel) View() string {
	body := "User ID [" + m.input.View() + "]\n"
	if m.submitting {
		body += "\n[Fetching...]"
	} else {
		body += "\n[Fetch]"
	}
	return renderPage("VIEW TEAMMATE", body, "esc: back | enter: fetch")
}

// peerModel is the read-only view of a teammate's profile fields.
type peerModel struct {
	userID int64
	fields []models.RichField
	idx    int
	status string
}

func (m peerModel) current() (models.RichField, bool) {
	if len(m.fields) == 0 || m.idx < 0 || m.idx >= len(m.fields) {
		return models.RichField{}, false
	}
	return m.fields[m.idx], true
}

func (m peerModel) View() string {
	out := titleStyle.Render(fmt.Sprintf("Profile of user %d", m.userID)) + "\n\n"

	if len(m.fields) == 0 {
		out += "No fields\n"
	} else {
		for i, f := range m.fields {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s: %s\n", cursor, f.Name, fitText(f.Value, 48))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c copy  esc back")
	return out
}
