package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"event-portal.backend/internal/domain/entities"
	domainerrors "event-portal.backend/internal/domain/errors"
	"event-portal.backend/internal/infrastructure/models"
)

type RegistrationRepository struct {
	coll *mongo.Collection
}

func NewRegistrationRepository(coll *mongo.Collection) *RegistrationRepository {
	return &RegistrationRepository{coll: coll}
}

// EnsureIndexes prepares the collection. The team_lead_email index is
// deliberately non-unique: duplicate team leads are permitted.
func (r *RegistrationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "team_lead_email", Value: 1}},
	})
	return err
}

func (r *RegistrationRepository) Insert(ctx context.Context, reg *entities.TeamRegistration) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, r.toModel(reg))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, domainerrors.ErrAlreadyExists
		}
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted ID type")
	}
	return id, nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.TeamRegistration, error) {
	var m models.TeamRegistration
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *RegistrationRepository) FindAll(ctx context.Context, newestFirst bool) ([]*entities.TeamRegistration, error) {
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ms []models.TeamRegistration
	if err := cursor.All(ctx, &ms); err != nil {
		return nil, err
	}

	items := make([]*entities.TeamRegistration, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *RegistrationRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *RegistrationRepository) toEntity(m *models.TeamRegistration) *entities.TeamRegistration {
	return &entities.TeamRegistration{
		ID:            m.ID,
		TeamName:      m.TeamName,
		TeamLeadName:  m.TeamLeadName,
		TeamLeadEmail: m.TeamLeadEmail,
		TeamLeadPhone: m.TeamLeadPhone,
		TeamLeadRegNo: m.TeamLeadRegNo,
		Member1Name:   m.Member1Name,
		Member1Email:  m.Member1Email,
		Member1RegNo:  m.Member1RegNo,
		Member2Name:   m.Member2Name,
		Member2Email:  m.Member2Email,
		Member2RegNo:  m.Member2RegNo,
		Member3Name:   m.Member3Name,
		Member3Email:  m.Member3Email,
		Member3RegNo:  m.Member3RegNo,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *RegistrationRepository) toModel(e *entities.TeamRegistration) *models.TeamRegistration {
	return &models.TeamRegistration{
		ID:            e.ID,
		TeamName:      e.TeamName,
		TeamLeadName:  e.TeamLeadName,
		TeamLeadEmail: e.TeamLeadEmail,
		TeamLeadPhone: e.TeamLeadPhone,
		TeamLeadRegNo: e.TeamLeadRegNo,
		Member1Name:   e.Member1Name,
		Member1Email:  e.Member1Email,
		Member1RegNo:  e.Member1RegNo,
		Member2Name:   e.Member2Name,
		Member2Email:  e.Member2Email,
		Member2RegNo:  e.Member2RegNo,
		Member3Name:   e.Member3Name,
		Member3Email:  e.Member3Email,
		Member3RegNo:  e.Member3RegNo,
		CreatedAt:     e.CreatedAt,
	}
}
