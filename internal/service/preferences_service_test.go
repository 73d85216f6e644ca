package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"decimal-converter/internal/settings"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPreferencesService_Get(t *testing.T) {
	t.Run("stored settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := settings.NewMockStore(ctrl)
		store.EXPECT().Load().Return(settings.Settings{MinimizeToTray: false, MinimalUI: true}, nil)

		svc := NewPreferencesService(store, zerolog.New(io.Discard))
		require.Equal(t, settings.Settings{MinimizeToTray: false, MinimalUI: true}, svc.Get())
	})
	t.Run("first run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := settings.NewMockStore(ctrl)
		store.EXPECT().Load().Return(settings.Settings{}, fmt.Errorf("could not open: %w", os.ErrNotExist))

		svc := NewPreferencesService(store, zerolog.New(io.Discard))
		require.Equal(t, settings.Defaults(), svc.Get())
	})
	t.Run("corrupt file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := settings.NewMockStore(ctrl)
		store.EXPECT().Load().Return(settings.Settings{}, errors.New("bad json"))

		svc := NewPreferencesService(store, zerolog.New(io.Discard))
		require.Equal(t, settings.Defaults(), svc.Get())
	})
}

func TestPreferencesService_toggles(t *testing.T) {
	t.Run("minimal ui", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := settings.NewMockStore(ctrl)
		gomock.InOrder(
			store.EXPECT().Load().Return(settings.Defaults(), nil),
			store.EXPECT().Save(settings.Settings{MinimizeToTray: true, MinimalUI: true}).Return(nil),
		)

		svc := NewPreferencesService(store, zerolog.New(io.Discard))
		s, err := svc.SetMinimalUI(true)
		require.NoError(t, err)
		require.True(t, s.MinimalUI)
	})
	t.Run("minimize to tray", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := settings.NewMockStore(ctrl)
		gomock.InOrder(
			store.EXPECT().Load().Return(settings.Settings{MinimizeToTray: true, MinimalUI: true}, nil),
			store.EXPECT().Save(settings.Settings{MinimizeToTray: false, MinimalUI: true}).Return(nil),
		)

		svc := NewPreferencesService(store, zerolog.New(io.Discard))
		s, err := svc.SetMinimizeToTray(false)
		require.NoError(t, err)
		require.Equal(t, settings.Settings{MinimizeToTray: false, MinimalUI: true}, s)
	})
	t.Run("save failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := settings.NewMockStore(ctrl)
		store.EXPECT().Save(gomock.Any()).Return(errors.New("read-only"))

		svc := NewPreferencesService(store, zerolog.New(io.Discard))
		_, err := svc.Update(settings.Defaults())
		require.Error(t, err)
	})
}
