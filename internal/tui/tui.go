// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal front end of the user directory on top
// of bubbletea.
//
// A single appModel drives the list screen, the create form, the edit and
// delete overlays, the transient notice and the build info window. Every
// network operation runs as a tea.Cmd that calls the directory service and
// reports back with a message.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrNoDirectory      = errors.New("directory service is not set")
	ErrInvalidNoticeTTL = errors.New("notice ttl must be positive")
)

type TUI struct {
	buildInfo models.AppBuildInfo
	noticeTTL time.Duration
	logger    *logger.Logger
}

// New builds the terminal front end. A nil log is resolved from the context
// passed to Run.
func New(buildInfo models.AppBuildInfo, noticeTTL time.Duration, log *logger.Logger) (*TUI, error) {
	if noticeTTL <= 0 {
		return nil, ErrInvalidNoticeTTL
	}

	return &TUI{buildInfo: buildInfo, noticeTTL: noticeTTL, logger: log}, nil
}

// Run shows the directory backed by dir until the operator quits.
func (t *TUI) Run(ctx context.Context, dir service.DirectoryService) error {
	if dir == nil {
		return ErrNoDirectory
	}

	log := t.logger
	if log == nil {
		log = logger.FromContext(ctx)
	}

	model := newAppModel(ctx, dir, t.buildInfo, t.noticeTTL)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		log.Err(err).Msg("directory ui stopped with error")
		return err
	}

	log.Debug().Msg("directory ui closed")
	return nil
}
