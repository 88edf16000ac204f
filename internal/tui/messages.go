package tui

import (
	"github.com/teamgrid/richinfo-server/models"
)

type authDoneMsg struct {
	user models.User
}

type authFailedMsg struct {
	err error
}

type fieldsLoadedMsg struct {
	fields []models.RichField
	err    error
}

type fieldsSavedMsg struct {
	err error
}

type peerLoadedMsg struct {
	userID int64
	fields []models.RichField
	err    error
}

type teamCreatedMsg struct {
	team models.Team
	err  error
}

type memberAddedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
