package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/mock"
	"github.com/MKhiriev/anime-verse/models"
)

func newTestAnimeListSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	AnimeListService,
	*mock.MockBackendAdapter,
	*mock.MockSessionManager,
) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockSession := mock.NewMockSessionManager(ctrl)

	return NewAnimeListService(mockAdapter, mockSession, logger.Nop()), mockAdapter, mockSession
}

func validSave() models.SaveAnimeRequest {
	score := 9
	return models.SaveAnimeRequest{
		AnimeID:             52991,
		Status:              models.StatusWatching,
		CurrentEpisode:      3,
		Score:               &score,
		StartedWatchingDate: "2024-01-05",
		Anime: models.AnimeSnapshot{
			Title:         "Sousou no Frieren",
			TotalEpisodes: 28,
		},
	}
}

var testCreds = models.Credentials{Token: "abc123", UserID: "u1"}

func TestAnimeListService_Save_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)
	ctx := context.Background()
	req := validSave()

	saved := models.AnimeListEntry{ID: "7", UserID: "u1", AnimeID: req.AnimeID, Status: req.Status, Version: 1}

	gomock.InOrder(
		mockSession.EXPECT().Credentials().Return(testCreds, nil),
		mockAdapter.EXPECT().SaveAnimeToList(ctx, "abc123", models.ID("u1"), req).Return(saved, nil),
	)

	entry, err := svc.Save(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, saved, entry)
}

func TestAnimeListService_Save_ValidationFailsBeforeSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)

	req := validSave()
	req.CurrentEpisode = 40

	mockSession.EXPECT().Credentials().Times(0)
	mockAdapter.EXPECT().SaveAnimeToList(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Save(context.Background(), req)
	require.ErrorIs(t, err, app.ErrValidation)

	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "current_episode")
}

func TestAnimeListService_Save_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)

	mockSession.EXPECT().Credentials().Return(models.Credentials{}, app.NewAuthenticationError(app.MsgNotAuthenticated))
	mockAdapter.EXPECT().SaveAnimeToList(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockSession.EXPECT().LogoutToken(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Save(context.Background(), validSave())
	assert.ErrorIs(t, err, app.ErrAuthentication)
}

func TestAnimeListService_Save_RejectedTokenLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSession.EXPECT().Credentials().Return(testCreds, nil),
		mockAdapter.EXPECT().SaveAnimeToList(ctx, "abc123", models.ID("u1"), gomock.Any()).
			Return(models.AnimeListEntry{}, authErr()),
		mockSession.EXPECT().LogoutToken(ctx, "abc123").Return(true),
	)

	_, err := svc.Save(ctx, validSave())
	assert.ErrorIs(t, err, app.ErrAuthentication)
}

func TestAnimeListService_Save_OtherErrorsKeepSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Credentials().Return(testCreds, nil)
	mockAdapter.EXPECT().SaveAnimeToList(ctx, "abc123", models.ID("u1"), gomock.Any()).
		Return(models.AnimeListEntry{}, networkErr())
	mockSession.EXPECT().LogoutToken(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Save(ctx, validSave())
	assert.ErrorIs(t, err, app.ErrNetwork)
}

func TestAnimeListService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.AnimeListEntry{
		{ID: "1", AnimeID: 52991, Status: models.StatusWatching},
		{ID: "2", AnimeID: 5114, Status: models.StatusCompleted},
	}

	gomock.InOrder(
		mockSession.EXPECT().Credentials().Return(testCreds, nil),
		mockAdapter.EXPECT().GetUserAnimeList(ctx, "abc123", models.ID("u1")).Return(entries, nil),
	)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestAnimeListService_List_RejectedTokenLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSession.EXPECT().Credentials().Return(testCreds, nil),
		mockAdapter.EXPECT().GetUserAnimeList(ctx, "abc123", models.ID("u1")).Return(nil, authErr()),
		mockSession.EXPECT().LogoutToken(ctx, "abc123").Return(true),
	)

	got, err := svc.List(ctx)
	assert.ErrorIs(t, err, app.ErrAuthentication)
	assert.Nil(t, got)
}

func TestAnimeListService_List_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSession := newTestAnimeListSvc(t, ctrl)

	mockSession.EXPECT().Credentials().Return(models.Credentials{}, app.NewAuthenticationError(app.MsgTokenExpired))
	mockAdapter.EXPECT().GetUserAnimeList(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, app.ErrAuthentication)
}

func TestAnimeListService_RejectedStaleTokenKeepsNewerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session, mockAdapter, mockStorage := newTestSessionSvc(t, ctrl)
	session.becomeAuthenticated(models.Session{User: testUser(), Token: testToken()})
	svc := NewAnimeListService(mockAdapter, session, logger.Nop())
	ctx := context.Background()

	newer := models.Session{
		User:  models.User{ID: "u2", Username: "other", Email: "other@x.com", Activated: true},
		Token: models.AuthenticationToken{Token: "def456"},
	}

	mockAdapter.EXPECT().GetUserAnimeList(ctx, "abc123", models.ID("u1")).DoAndReturn(
		func(context.Context, string, models.ID) ([]models.AnimeListEntry, error) {
			// another account logs in while the request is in flight
			session.becomeAuthenticated(newer)
			return nil, authErr()
		},
	)
	mockStorage.EXPECT().ClearAll(gomock.Any()).Times(0)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, app.ErrAuthentication)

	got, ok := session.Session()
	require.True(t, ok)
	assert.Equal(t, newer, got)
}
