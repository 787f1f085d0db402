package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"github.com/ArowuTest/adspendwise-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnalysisRepository implements the repositories.AnalysisRepository interface
type AnalysisRepository struct {
	collection *mongo.Collection
}

// NewAnalysisRepository creates a new AnalysisRepository
func NewAnalysisRepository(db *mongo.Database) repositories.AnalysisRepository {
	return &AnalysisRepository{
		collection: db.Collection("analyses"),
	}
}

// Create inserts an analysis
func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.Analysis) error {
	_, err := r.collection.InsertOne(ctx, analysis)
	return err
}

// FindByCampaignID returns the analyses of a campaign, oldest first
func (r *AnalysisRepository) FindByCampaignID(ctx context.Context, campaignID string, limit int) ([]*models.Analysis, error) {
	return r.find(ctx, bson.M{"campaign_id": campaignID}, limit)
}

// FindAll returns all analyses. A limit <= 0 means no limit.
func (r *AnalysisRepository) FindAll(ctx context.Context, limit int) ([]*models.Analysis, error) {
	return r.find(ctx, bson.M{}, limit)
}

// ExistsSince reports whether the campaign was analyzed at or after since
func (r *AnalysisRepository) ExistsSince(ctx context.Context, campaignID string, since time.Time) (bool, error) {
	filter := bson.M{
		"campaign_id": campaignID,
		"created_at":  bson.M{"$gte": since},
	}

	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}


func (r *AnalysisRepository) find(ctx context.Context, filter bson.M, limit int) ([]*models.Analysis, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var analyses []*models.Analysis
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}

	if analyses == nil {
		analyses = []*models.Analysis{}
	}

	return analyses, nil
}
