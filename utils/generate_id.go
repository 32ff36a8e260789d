package utils

import "github.com/google/uuid"

// GenerateID returns an opaque unique id for users and notes.
func GenerateID() string {
	return uuid.New().String()
}
