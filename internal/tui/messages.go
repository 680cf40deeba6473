package tui

import "github.com/MKhiriev/go-user-directory/models"

type loadedMsg struct {
	notice models.Notice
	err    error
}

type createdMsg struct {
	user   models.User
	notice models.Notice
	err    error
}

type autoFilledMsg struct {
	user   models.User
	notice models.Notice
	err    error
}

type editSavedMsg struct {
	notice models.Notice
	err    error
}

type deletedMsg struct {
	notice models.Notice
	err    error
}

type favoriteToggledMsg struct {
	notice models.Notice
	err    error
}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct {
	seq int
}
