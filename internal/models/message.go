package models

import "time"

// PlaceholderSender is the constant sender value stored on every
// ingested message. Nicknames are checked for availability but never
// threaded into inserts.
const PlaceholderSender = "user"

// Message represents a room message. Text and ImageURL are both
// optional; rows are immutable once inserted.
type Message struct {
	ID        int       `db:"id" json:"id"`
	ClassID   int       `db:"class_id" json:"class_id"`
	Text      *string   `db:"text" json:"text"`
	ImageURL  *string   `db:"image_url" json:"image_url"`
	Sender    string    `db:"sender" json:"sender"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// RoomEvent is broadcasted through websockets to room subscribers.
type RoomEvent struct {
	Type    string   `json:"type"`
	Message *Message `json:"message,omitempty"`
}
