package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Devang1/BVCOE-TalkZone/internal/mocks"
	"github.com/Devang1/BVCOE-TalkZone/internal/models"
	"github.com/Devang1/BVCOE-TalkZone/internal/repositories"
)

func setupNicknameRouter(handler *NicknameHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/check-nickname", handler.CheckNickname)
	return r
}

func TestCheckNicknameTaken(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupNicknameRouter(NewNicknameHandler(roomRepo, messageRepo))

	roomRepo.On("GetRoom", mock.Anything, "1st Year", "CSE1").
		Return(models.Room{ID: 3}, nil).Once()
	messageRepo.On("SenderExists", mock.Anything, 3, "bob").Return(true, nil).Once()

	body := bytes.NewBufferString(`{"classname":"CSE1","year":"1st Year","nickname":"bob"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check-nickname", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, true, resp["exists"])
	assert.Equal(t, "Nickname already taken", resp["message"])
	roomRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
}

func TestCheckNicknameAvailable(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupNicknameRouter(NewNicknameHandler(roomRepo, messageRepo))

	roomRepo.On("GetRoom", mock.Anything, "1st Year", "CSE1").
		Return(models.Room{ID: 3}, nil).Once()
	messageRepo.On("SenderExists", mock.Anything, 3, "alice").Return(false, nil).Once()

	body := bytes.NewBufferString(`{"classname":"CSE1","year":"1st Year","nickname":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check-nickname", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, false, resp["exists"])
	assert.Equal(t, "Nickname available", resp["message"])
}

func TestCheckNicknameTrimsBeforeLookup(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupNicknameRouter(NewNicknameHandler(roomRepo, messageRepo))

	roomRepo.On("GetRoom", mock.Anything, "1st Year", "CSE1").
		Return(models.Room{ID: 3}, nil).Once()
	messageRepo.On("SenderExists", mock.Anything, 3, "bob").Return(false, nil).Once()

	body := bytes.NewBufferString(`{"classname":"CSE1","year":"1st Year","nickname":"  bob "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check-nickname", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messageRepo.AssertExpectations(t)
}

func TestCheckNicknameMissingNickname(t *testing.T) {
	router := setupNicknameRouter(NewNicknameHandler(new(mocks.RoomRepositoryMock), new(mocks.MessageRepositoryMock)))

	body := bytes.NewBufferString(`{"classname":"CSE1","year":"1st Year"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check-nickname", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckNicknameMissingClass(t *testing.T) {
	router := setupNicknameRouter(NewNicknameHandler(new(mocks.RoomRepositoryMock), new(mocks.MessageRepositoryMock)))

	body := bytes.NewBufferString(`{"nickname":"bob","year":"1st Year"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check-nickname", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckNicknameRoomNotFound(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	router := setupNicknameRouter(NewNicknameHandler(roomRepo, new(mocks.MessageRepositoryMock)))

	roomRepo.On("GetRoom", mock.Anything, "1st Year", "CSE9").
		Return(models.Room{}, repositories.ErrRoomNotFound).Once()

	body := bytes.NewBufferString(`{"classname":"CSE9","year":"1st Year","nickname":"bob"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check-nickname", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	roomRepo.AssertExpectations(t)
}
