package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Devang1/BVCOE-TalkZone/internal/models"
)

var ErrRoomNotFound = errors.New("room not found")

// RoomRepository abstracts room credential persistence.
type RoomRepository interface {
	GetRoom(ctx context.Context, year string, className string) (models.Room, error)
}

// RoomRepo is a sqlx implementation of RoomRepository.
type RoomRepo struct {
	db *sqlx.DB
}

// NewRoomRepo constructs a RoomRepo.
func NewRoomRepo(db *sqlx.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// GetRoom fetches a room by its (year, class_name) pair.
func (r *RoomRepo) GetRoom(ctx context.Context, year string, className string) (models.Room, error) {
	var room models.Room
	err := r.db.GetContext(ctx, &room, `SELECT id, year, class_name, password FROM class_passwords WHERE year=$1 AND class_name=$2 LIMIT 1`, year, className)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrRoomNotFound
	}
	return room, err
}
