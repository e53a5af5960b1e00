package usecases

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	domainerrors "event-portal.backend/internal/domain/errors"
	"event-portal.backend/internal/domain/repositories"
	"event-portal.backend/pkg/logger"
)

// ExportSheetName is the single sheet the export writes.
const ExportSheetName = "Teams"

// ExportUsecase renders the full registration set as an xlsx byte stream
type ExportUsecase struct {
	repo repositories.RegistrationRepository
}

// NewExportUsecase creates a new export usecase
func NewExportUsecase(repo repositories.RegistrationRepository) *ExportUsecase {
	return &ExportUsecase{repo: repo}
}

// ExportXLSX builds the spreadsheet. Zero registrations yield a valid file
// with an empty sheet and no data rows.
func (u *ExportUsecase) ExportXLSX(ctx context.Context) ([]byte, error) {
	regs, err := u.repo.FindAll(ctx, false)
	if err != nil {
		logger.Error(ctx, "Error exporting to Excel", zap.Error(err))
		return nil, domainerrors.InternalError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	if len(regs) > 0 {
		header := make([]any, len(docColumns))
		for i, col := range docColumns {
			header[i] = col
		}
		if err := u.setRow(f, 1, header); err != nil {
			return nil, domainerrors.InternalError(err)
		}

		for i, reg := range regs {
			doc := DocToMap(reg)
			row := make([]any, len(docColumns))
			for j, col := range docColumns {
				row[j] = doc[col]
			}
			if err := u.setRow(f, i+2, row); err != nil {
				return nil, domainerrors.InternalError(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error(ctx, "Error writing Excel file", zap.Error(err))
		return nil, domainerrors.InternalError(err)
	}
	return buf.Bytes(), nil
}

func (u *ExportUsecase) setRow(f *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(ExportSheetName, cell, &values)
}
