package kvstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

type preferences struct {
	Theme   string `json:"theme"`
	Columns int    `json:"columns"`
}

func TestStore_RoundTrip(t *testing.T) {
	store := New(repository.NewMemoryStateRepository())

	saved := preferences{Theme: "dark", Columns: 6}
	SetJSON(store, "prefs_v1", saved)

	got := GetJSON(store, "prefs_v1", preferences{Theme: "light"})
	assert.Equal(t, saved, got)
}

func TestStore_MissingKeyReturnsFallback(t *testing.T) {
	store := New(repository.NewMemoryStateRepository())

	fallback := preferences{Theme: "light", Columns: 4}
	got := GetJSON(store, "inexistente", fallback)
	assert.Equal(t, fallback, got)
}

func TestStore_FailingBackendReturnsFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepository(ctrl)
	repo.EXPECT().Get("prefs_v1").Return(nil, errors.New("storage indisponível"))

	store := New(repo)

	fallback := preferences{Theme: "light"}
	got := GetJSON(store, "prefs_v1", fallback)
	assert.Equal(t, fallback, got)
}

func TestStore_CorruptValueReturnsFallback(t *testing.T) {
	repo := repository.NewMemoryStateRepository()
	assert.NoError(t, repo.Set("prefs_v1", []byte("{nao é json")))

	store := New(repo)

	got := GetJSON(store, "prefs_v1", preferences{Theme: "light"})
	assert.Equal(t, preferences{Theme: "light"}, got)
}

func TestStore_SetFailureIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepository(ctrl)
	repo.EXPECT().Set("prefs_v1", gomock.Any()).Return(errors.New("storage indisponível"))

	store := New(repo)

	// Não deve entrar em pânico nem propagar o erro
	SetJSON(store, "prefs_v1", preferences{Theme: "dark"})
}

func TestStore_DeleteFailureIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepository(ctrl)
	repo.EXPECT().Delete("prefs_v1").Return(errors.New("storage indisponível"))

	store := New(repo)
	store.Delete("prefs_v1")
}
