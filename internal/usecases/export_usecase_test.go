package usecases

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"event-portal.backend/internal/domain/entities"
	domainerrors "event-portal.backend/internal/domain/errors"
)

func TestExportXLSX_WithRecords(t *testing.T) {
	repo := newRegRepoStub()
	reg := NewRegistrationUsecase(repo)

	_, err := reg.Register(context.Background(), entities.RegistrationInput{
		TeamName: "Alpha", TeamLeadEmail: "a@x.com", TeamLeadName: "Ada",
	})
	require.NoError(t, err)
	_, err = reg.Register(context.Background(), entities.RegistrationInput{
		TeamName: "Beta", TeamLeadEmail: "b@x.com",
	})
	require.NoError(t, err)

	u := NewExportUsecase(repo)
	data, err := u.ExportXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two teams

	assert.Equal(t, "_id", rows[0][0])
	assert.Equal(t, "team_name", rows[0][1])
	assert.Equal(t, "created_at", rows[0][len(docColumns)-1])

	names := []string{rows[1][1], rows[2][1]}
	assert.Contains(t, names, "Alpha")
	assert.Contains(t, names, "Beta")
}

func TestExportXLSX_EmptyStore(t *testing.T) {
	u := NewExportUsecase(newRegRepoStub())

	data, err := u.ExportXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	assert.Empty(t, rows, "empty store exports a valid file with no data rows")
}

func TestExportXLSX_StoreFailure(t *testing.T) {
	repo := newRegRepoStub()
	repo.findAllErr = errors.New("network timeout")
	u := NewExportUsecase(repo)

	_, err := u.ExportXLSX(context.Background())
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
