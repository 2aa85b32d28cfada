package models

// Room is a class chat room backed by the class_passwords table.
// The shared password is stored and compared as plaintext; that is the
// observed contract of this system, not an oversight to patch here.
type Room struct {
	ID        int    `db:"id" json:"id"`
	Year      string `db:"year" json:"year"`
	ClassName string `db:"class_name" json:"class_name"`
	Password  string `db:"password" json:"-"`
}
