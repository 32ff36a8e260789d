package repository

import (
	"context"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NoteRepo is the note store. Every read and write after creation
// filters jointly on {_id, user_id}: a note that exists but belongs to
// someone else is indistinguishable from one that does not exist, so
// nothing leaks across owners. The single-document atomicity of
// FindOneAndUpdate/FindOneAndDelete is the only concurrency control
// needed; when an update races a delete, the loser sees no match.
type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func NewNoteRepo(client *mongo.Client, dbName string) *NoteRepo {
	return &NoteRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

func ownedFilter(noteID, userID string) bson.M {
	return bson.M{"_id": noteID, "user_id": userID}
}

// CreateNote inserts a note owned by note.UserID.
func (r *NoteRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("note_creation_failed")
		return err
	}
	return nil
}

// GetUserNotes returns every note owned by userID, oldest first.
func (r *NoteRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote returns the note only when it exists and is owned by userID.
func (r *NoteRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, ownedFilter(noteID, userID)).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies the supplied fields to an owned note and returns
// the post-update document. Empty content or color means "leave as is".
func (r *NoteRepo) UpdateNote(ctx context.Context, noteID, userID, content, color string) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{"updated_at": time.Now()}
	if content != "" {
		set["content"] = content
	}
	if color != "" {
		set["color"] = color
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		ownedFilter(noteID, userID), bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes an owned note and returns its prior state.
func (r *NoteRepo) DeleteNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOneAndDelete(ctx, ownedFilter(noteID, userID)).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}
