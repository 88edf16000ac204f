package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/teamgrid/richinfo-server/models"
)

type fieldFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	originName string
	submitting bool
}

func newFieldFormModel(field *models.RichField) fieldFormModel {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "name"
	inputs[0].CharLimit = 256
	inputs[0].Width = 40
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "value"
	inputs[1].Width = 50

	m := fieldFormModel{inputs: inputs}
	if field == nil {
		return m
	}

	m.editing = true
	m.originName = field.Name
	m.inputs[0].SetValue(field.Name)
	m.inputs[1].SetValue(field.Value)
	return m
}

func (m fieldFormModel) toField() models.RichField {
	return models.RichField{
		Name:  strings.TrimSpace(m.inputs[0].Value()),
		Value: m.inputs[1].Value(),
	}
}

func (m fieldFormModel) View() string {
	title := "NEW FIELD"
	if m.editing {
		title = "EDIT FIELD: " + m.originName
	}

	var b strings.Builder
	b.WriteString("Name  [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Value [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"esc: cancel | tab: next field | enter: save")
}
