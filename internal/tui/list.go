package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/teamgrid/richinfo-server/models"
)

type listModel struct {
	fields  []models.RichField
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.RichField, bool) {
	if len(m.fields) == 0 || m.idx < 0 || m.idx >= len(m.fields) {
		return models.RichField{}, false
	}
	return m.fields[m.idx], true
}

func (m listModel) View() string {
	header := titleStyle.Render("My profile fields")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.fields) == 0 {
		out += "No fields yet. Press n to add one.\n"
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

	out += "\n" + helpStyle.Render("n new  e edit  d delete  c copy  u lookup  t team  m member  r reload  l logout  q quit")
	return out
}
