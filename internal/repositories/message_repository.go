package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Devang1/BVCOE-TalkZone/internal/models"
)

// MessageRepository defines interactions for room messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, classID int, text *string, imageURL *string, sender string) (models.Message, error)
	ListMessages(ctx context.Context, classID int) ([]models.Message, error)
	SenderExists(ctx context.Context, classID int, sender string) (bool, error)
}

// MessageRepo is a sqlx-backed repository.
type MessageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo constructs MessageRepo.
func NewMessageRepo(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// CreateMessage stores a message in a room and returns the full row,
// including the store-assigned id and timestamp.
func (r *MessageRepo) CreateMessage(ctx context.Context, classID int, text *string, imageURL *string, sender string) (models.Message, error) {
	var msg models.Message
	err := r.db.QueryRowxContext(ctx, `INSERT INTO messages (class_id, text, image_url, sender, timestamp)
        VALUES ($1, $2, $3, $4, NOW()) RETURNING id, class_id, text, image_url, sender, timestamp`, classID, text, imageURL, sender).
		Scan(&msg.ID, &msg.ClassID, &msg.Text, &msg.ImageURL, &msg.Sender, &msg.Timestamp)
	return msg, err
}

// ListMessages returns all messages of a room in ascending timestamp order.
func (r *MessageRepo) ListMessages(ctx context.Context, classID int) ([]models.Message, error) {
	query := `SELECT id, class_id, text, image_url, sender, timestamp
        FROM messages
        WHERE class_id=$1
        ORDER BY timestamp ASC`
	var msgs []models.Message
	err := r.db.SelectContext(ctx, &msgs, query, classID)
	return msgs, err
}

// SenderExists reports whether any message in the room carries the given
// sender value. The message table doubles as the nickname registry.
func (r *MessageRepo) SenderExists(ctx context.Context, classID int, sender string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM messages WHERE class_id=$1 AND sender=$2)`, classID, sender)
	return exists, err
}
