package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ui, err := New(models.AppBuildInfo{}, time.Second, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, time.Second, ui.noticeTTL)

	_, err = New(models.AppBuildInfo{}, 0, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidNoticeTTL)
}

func TestRun_NoDirectory(t *testing.T) {
	ui, err := New(models.AppBuildInfo{}, time.Second, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, ui.Run(context.Background(), nil), ErrNoDirectory)
}
