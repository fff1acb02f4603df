// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"classadmin/models"
)

func (r *mongoSessionRepo) ListByStatus(ctx context.Context, status string) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

func (r *mongoSessionRepo) Search(ctx context.Context, query string) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"title": bson.M{
		"$regex": primitive.Regex{Pattern: query, Options: "i"},
	}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// DeleteByScope performs the backend side of a resolved delete request.
//
// Modes:
//   - single, session: remove the session document and all its schedules.
//   - following: truncate the recurrence so no occurrence after today is
//     generated; the session document survives with its past occurrences.
//   - schedule: remove the addressed schedule documents; the request IDs may
//     be schedule IDs or, on fallback, the owning session's ID.
//   - manual: record the selected occurrence IDs as exclusions on the session
//     document.
func (r *mongoSessionRepo) DeleteByScope(ctx context.Context, sessionID string, req models.DeleteRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	switch req.Mode {
	case models.DeleteSingle, models.DeleteSession:
		res, err := r.coll.DeleteOne(ctx, bson.M{"id": sessionID})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return mongo.ErrNoDocuments
		}
		_, err = r.schedules.DeleteMany(ctx, bson.M{"sessionId": sessionID})
		return err

	case models.DeleteFollowing:
		cutoff := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		res, err := r.coll.UpdateOne(ctx, bson.M{"id": sessionID}, bson.M{"$set": bson.M{
			"recurrence.sessionEndDate": cutoff,
			"updatedAt":                 time.Now(),
		}})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil

	case models.DeleteSchedule:
		filter := bson.M{"$or": []bson.M{
			{"id": bson.M{"$in": req.IDs}},
			{"sessionId": bson.M{"$in": req.IDs}},
		}}
		res, err := r.schedules.DeleteMany(ctx, filter)
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return mongo.ErrNoDocuments
		}
		_, err = r.coll.UpdateOne(ctx, bson.M{"id": sessionID}, schedulePullUpdate(req.IDs))
		return err

	case models.DeleteManual:
		res, err := r.coll.UpdateOne(ctx, bson.M{"id": sessionID}, bson.M{
			"$addToSet": bson.M{"excludedOccurrences": bson.M{"$each": req.IDs}},
			"$set":      bson.M{"updatedAt": time.Now()},
		})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil

	default:
		return fmt.Errorf("unknown delete mode %q", req.Mode)
	}
}

// schedulePullUpdate detaches deleted schedules from the session document.
// Schedule IDs double as weekly-pattern entry IDs, so the matching pattern
// entries are pulled too; otherwise occurrence generation would keep
// emitting slots for a schedule that no longer exists.
func schedulePullUpdate(ids []string) bson.M {
	return bson.M{
		"$pull": bson.M{
			"scheduleIds":              bson.M{"$in": ids},
			"recurrence.weeklyPattern": bson.M{"id": bson.M{"$in": ids}},
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
}
