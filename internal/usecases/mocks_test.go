package usecases

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-portal.backend/internal/domain/entities"
	domainerrors "event-portal.backend/internal/domain/errors"
)

// regRepoStub is an in-memory RegistrationRepository for usecase tests.
type regRepoStub struct {
	items map[primitive.ObjectID]*entities.TeamRegistration

	insertErr  error
	findErr    error
	findAllErr error
}

func newRegRepoStub() *regRepoStub {
	return &regRepoStub{items: map[primitive.ObjectID]*entities.TeamRegistration{}}
}

func (s *regRepoStub) Insert(_ context.Context, reg *entities.TeamRegistration) (primitive.ObjectID, error) {
	if s.insertErr != nil {
		return primitive.NilObjectID, s.insertErr
	}
	id := primitive.NewObjectID()
	stored := *reg
	stored.ID = id
	s.items[id] = &stored
	return id, nil
}

func (s *regRepoStub) FindByID(_ context.Context, id primitive.ObjectID) (*entities.TeamRegistration, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	out := *item
	return &out, nil
}

func (s *regRepoStub) FindAll(_ context.Context, newestFirst bool) ([]*entities.TeamRegistration, error) {
	if s.findAllErr != nil {
		return nil, s.findAllErr
	}
	out := make([]*entities.TeamRegistration, 0, len(s.items))
	for _, item := range s.items {
		copied := *item
		out = append(out, &copied)
	}
	if newestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	}
	return out, nil
}

func (s *regRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}
