package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"event-portal.backend/internal/domain/entities"
	domainerrors "event-portal.backend/internal/domain/errors"
	"event-portal.backend/internal/domain/repositories"
	"event-portal.backend/pkg/logger"
)

// RegistrationUsecase handles team registration business logic
type RegistrationUsecase struct {
	repo repositories.RegistrationRepository
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(repo repositories.RegistrationRepository) *RegistrationUsecase {
	return &RegistrationUsecase{repo: repo}
}

// Register validates and persists a team registration. On success the record
// is re-read by its newly assigned ID so store-generated fields are reflected.
func (u *RegistrationUsecase) Register(ctx context.Context, input entities.RegistrationInput) (*entities.TeamRegistration, error) {
	trimmed := input.Trimmed()

	if trimmed.TeamName == "" || trimmed.TeamLeadEmail == "" {
		return nil, domainerrors.BadRequest("Team name and team lead email are required.")
	}

	reg := &entities.TeamRegistration{
		TeamName:      trimmed.TeamName,
		TeamLeadName:  trimmed.TeamLeadName,
		TeamLeadEmail: trimmed.TeamLeadEmail,
		TeamLeadPhone: trimmed.TeamLeadPhone,
		TeamLeadRegNo: trimmed.TeamLeadRegNo,
		Member1Name:   trimmed.Member1Name,
		Member1Email:  trimmed.Member1Email,
		Member1RegNo:  trimmed.Member1RegNo,
		Member2Name:   trimmed.Member2Name,
		Member2Email:  trimmed.Member2Email,
		Member2RegNo:  trimmed.Member2RegNo,
		Member3Name:   trimmed.Member3Name,
		Member3Email:  trimmed.Member3Email,
		Member3RegNo:  trimmed.Member3RegNo,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := u.repo.Insert(ctx, reg)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("A team with that identifier already exists.")
		}
		logger.Error(ctx, "Error inserting team", zap.Error(err))
		return nil, domainerrors.StorageError(err)
	}

	stored, err := u.repo.FindByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "Error re-reading inserted team", zap.Error(err))
		return nil, domainerrors.StorageError(err)
	}

	return stored, nil
}

// List returns all registrations newest first, flattened for display.
// A store failure yields an empty list rather than an error; see DESIGN.md
// for the rationale behind keeping this fail-open behavior.
func (u *RegistrationUsecase) List(ctx context.Context) []map[string]any {
	regs, err := u.repo.FindAll(ctx, true)
	if err != nil {
		logger.Warn(ctx, "Error fetching teams, returning empty list", zap.Error(err))
		return []map[string]any{}
	}

	out := make([]map[string]any, 0, len(regs))
	for _, reg := range regs {
		out = append(out, DocToMap(reg))
	}
	return out
}

// FormatInfoText renders submitted form fields as the plain-text summary
// offered for download after registering. Purely a reformatting step, no
// store access.
func (u *RegistrationUsecase) FormatInfoText(input entities.RegistrationInput) string {
	return fmt.Sprintf(`
Team Name: %s
Team Lead: %s
Team Lead Email: %s
Team Lead Phone: %s
Team Lead Registration Number: %s
Member 1: %s (%s) | Reg No: %s
Member 2: %s (%s) | Reg No: %s
Member 3: %s (%s) | Reg No: %s
`,
		input.TeamName,
		input.TeamLeadName,
		input.TeamLeadEmail,
		input.TeamLeadPhone,
		input.TeamLeadRegNo,
		input.Member1Name, input.Member1Email, input.Member1RegNo,
		input.Member2Name, input.Member2Email, input.Member2RegNo,
		input.Member3Name, input.Member3Email, input.Member3RegNo,
	)
}
