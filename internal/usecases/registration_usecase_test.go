package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-portal.backend/internal/domain/entities"
	domainerrors "event-portal.backend/internal/domain/errors"
)

func TestRegister_Success(t *testing.T) {
	repo := newRegRepoStub()
	u := NewRegistrationUsecase(repo)

	stored, err := u.Register(context.Background(), entities.RegistrationInput{
		TeamName:      "  Alpha  ",
		TeamLeadName:  "Ada",
		TeamLeadEmail: " a@x.com ",
		Member1Name:   "Bob",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alpha", stored.TeamName)
	assert.Equal(t, "a@x.com", stored.TeamLeadEmail)
	assert.Equal(t, "Bob", stored.Member1Name)
	assert.NotEqual(t, primitive.NilObjectID, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 1, count)
}

func TestRegister_ValidationFailures(t *testing.T) {
	cases := []struct {
		name  string
		input entities.RegistrationInput
	}{
		{"empty team name", entities.RegistrationInput{TeamLeadEmail: "a@x.com"}},
		{"whitespace team name", entities.RegistrationInput{TeamName: "   ", TeamLeadEmail: "a@x.com"}},
		{"empty lead email", entities.RegistrationInput{TeamName: "Alpha"}},
		{"whitespace lead email", entities.RegistrationInput{TeamName: "Alpha", TeamLeadEmail: "\t "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newRegRepoStub()
			u := NewRegistrationUsecase(repo)

			_, err := u.Register(context.Background(), tc.input)
			require.Error(t, err)

			var appErr *domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)

			count, _ := repo.Count(context.Background())
			assert.Zero(t, count, "validation failure must not persist a record")
		})
	}
}

func TestRegister_DuplicateKey(t *testing.T) {
	repo := newRegRepoStub()
	repo.insertErr = domainerrors.ErrAlreadyExists
	u := NewRegistrationUsecase(repo)

	_, err := u.Register(context.Background(), entities.RegistrationInput{
		TeamName: "Alpha", TeamLeadEmail: "a@x.com",
	})
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestRegister_StorageFailure(t *testing.T) {
	repo := newRegRepoStub()
	repo.insertErr = errors.New("socket closed")
	u := NewRegistrationUsecase(repo)

	_, err := u.Register(context.Background(), entities.RegistrationInput{
		TeamName: "Alpha", TeamLeadEmail: "a@x.com",
	})
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Contains(t, appErr.Message, "socket closed")
}

func TestRegister_ReReadFailure(t *testing.T) {
	repo := newRegRepoStub()
	repo.findErr = errors.New("cursor lost")
	u := NewRegistrationUsecase(repo)

	_, err := u.Register(context.Background(), entities.RegistrationInput{
		TeamName: "Alpha", TeamLeadEmail: "a@x.com",
	})
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestList_NewestFirst(t *testing.T) {
	repo := newRegRepoStub()
	u := NewRegistrationUsecase(repo)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := u.Register(context.Background(), entities.RegistrationInput{
			TeamName: name, TeamLeadEmail: name + "@x.com",
		})
		require.NoError(t, err)
	}

	teams := u.List(context.Background())
	require.Len(t, teams, 3)
	for _, team := range teams {
		assert.NotEmpty(t, team["_id"])
		assert.NotEmpty(t, team["created_at"])
	}
}

func TestList_StoreFailureYieldsEmptyList(t *testing.T) {
	repo := newRegRepoStub()
	repo.findAllErr = errors.New("connection reset")
	u := NewRegistrationUsecase(repo)

	teams := u.List(context.Background())
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
}

func TestFormatInfoText(t *testing.T) {
	u := NewRegistrationUsecase(newRegRepoStub())

	text := u.FormatInfoText(entities.RegistrationInput{
		TeamName:      "Alpha",
		TeamLeadName:  "Ada",
		TeamLeadEmail: "a@x.com",
		Member1Name:   "Bob",
		Member1Email:  "b@x.com",
		Member1RegNo:  "21BCE0002",
	})

	assert.Contains(t, text, "Team Name: Alpha")
	assert.Contains(t, text, "Team Lead: Ada")
	assert.Contains(t, text, "Member 1: Bob (b@x.com) | Reg No: 21BCE0002")
	assert.Contains(t, text, "Member 3:  () | Reg No: ")
}
