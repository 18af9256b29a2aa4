package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ailiteracy/internal/model"
)

// ArchiveRepo stores the full transcript of a completed session
type ArchiveRepo interface {
	SaveTranscript(ctx context.Context, sess *model.Session) error
	GetTranscript(ctx context.Context, sessionID string) (*SessionArchive, error)
}

// SessionArchive is the archived form of a completed session
type SessionArchive struct {
	SessionID  string              `bson:"sessionId" json:"sessionId"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	ArchivedAt time.Time           `bson:"archivedAt" json:"archivedAt"`
	Persona    model.Persona       `bson:"persona" json:"persona"`
	Messages   []model.ChatMessage `bson:"messages" json:"messages"`
	Scores     map[string]int      `bson:"scores" json:"scores"`
	Evidence   []string            `bson:"evidence" json:"evidence"`
	Report     *model.Report       `bson:"report,omitempty" json:"report,omitempty"`
}

type archiveRepo struct {
	archives *mongo.Collection
}

// NewArchiveRepo creates a Mongo-backed transcript archive
func NewArchiveRepo(db *mongo.Database) ArchiveRepo {
	return &archiveRepo{archives: db.Collection("session_archives")}
}

// SaveTranscript upserts the archive document for the session
func (r *archiveRepo) SaveTranscript(ctx context.Context, sess *model.Session) error {
	doc := &SessionArchive{
		SessionID:  sess.ID,
		CreatedAt:  sess.CreatedAt,
		ArchivedAt: time.Now().UTC(),
		Persona:    sess.Persona,
		Messages:   sess.Messages,
		Scores:     sess.Scores,
		Evidence:   sess.Evidence,
		Report:     sess.Report,
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.archives.ReplaceOne(ctx, bson.M{"sessionId": sess.ID}, doc, opts)
	return err
}

// GetTranscript returns the archived session, or nil when absent
func (r *archiveRepo) GetTranscript(ctx context.Context, sessionID string) (*SessionArchive, error) {
	var doc SessionArchive
	err := r.archives.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
