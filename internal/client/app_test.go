package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/mock"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	mounted []service.DirectoryService
	err     error
	onRun   func(dir service.DirectoryService)
}

func (f *fakeUI) Run(_ context.Context, dir service.DirectoryService) error {
	f.mounted = append(f.mounted, dir)
	if f.onRun != nil {
		f.onRun(dir)
	}
	return f.err
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	services := service.NewClientServices(mock.NewMockStoreAdapter(ctrl), mock.NewMockIdentityAdapter(ctrl), logger.Nop())
	_, err = NewApp(services, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_EachRunMountsFreshState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStoreAdapter(ctrl)
	services := service.NewClientServices(mockStore, mock.NewMockIdentityAdapter(ctrl), logger.Nop())

	mockStore.EXPECT().List(gomock.Any()).Return([]models.User{{ID: "1", FullName: "Ann Lee"}}, nil)
	ui := &fakeUI{}
	ui.onRun = func(dir service.DirectoryService) {
		if len(ui.mounted) == 1 {
			_, _ = dir.Load(context.Background())
			dir.ToggleFilter()
		}
	}

	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	require.NoError(t, app.run(context.Background()))

	require.Len(t, ui.mounted, 2)
	assert.Len(t, ui.mounted[0].All(), 1)
	assert.True(t, ui.mounted[0].FavoritesOnly())
	assert.Empty(t, ui.mounted[1].All())
	assert.False(t, ui.mounted[1].FavoritesOnly())
	assert.NotSame(t, ui.mounted[0], ui.mounted[1])
}

func TestApp_RunPropagatesUIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := service.NewClientServices(mock.NewMockStoreAdapter(ctrl), mock.NewMockIdentityAdapter(ctrl), logger.Nop())

	boom := errors.New("terminal gone")
	app, err := NewApp(services, &fakeUI{err: boom}, logger.Nop())
	require.NoError(t, err)

	err = app.run(context.Background())
	assert.ErrorIs(t, err, boom)
}
