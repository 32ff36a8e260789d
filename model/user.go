package model

import "time"

// User is a registered account. Email and username are stored
// lowercase and carry unique indexes. The password field holds the
// bcrypt hash and is never serialized to clients.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"`
	FullName  string    `bson:"fullname" json:"fullname"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
