package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Devang1/BVCOE-TalkZone/internal/models"
)

type RoomRepositoryMock struct {
	mock.Mock
}

func (m *RoomRepositoryMock) GetRoom(ctx context.Context, year string, className string) (models.Room, error) {
	args := m.Called(ctx, year, className)
	var room models.Room
	if val := args.Get(0); val != nil {
		room = val.(models.Room)
	}
	return room, args.Error(1)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) CreateMessage(ctx context.Context, classID int, text *string, imageURL *string, sender string) (models.Message, error) {
	args := m.Called(ctx, classID, text, imageURL, sender)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) ListMessages(ctx context.Context, classID int) ([]models.Message, error) {
	args := m.Called(ctx, classID)
	var msgs []models.Message
	if val := args.Get(0); val != nil {
		msgs = val.([]models.Message)
	}
	return msgs, args.Error(1)
}

func (m *MessageRepositoryMock) SenderExists(ctx context.Context, classID int, sender string) (bool, error) {
	args := m.Called(ctx, classID, sender)
	return args.Bool(0), args.Error(1)
}
