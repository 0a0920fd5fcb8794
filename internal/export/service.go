package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mediscan-kh/mediscan/internal/repository"
)

// Service is a tiny façade over the image repository that produces XLSX
// bytes for administrative exports.
type Service struct {
	images repository.ImageRepository
	logger *slog.Logger
}

func NewService(images repository.ImageRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{images: images, logger: logger}
}

// exportPageSize caps one workbook; listings beyond it paginate in the API.
const exportPageSize = 10000

// ExportImagesXLSX returns an XLSX workbook (as bytes) for the filtered
// listing. Pagination fields on req are ignored; the export takes the first
// exportPageSize rows in the requested order.
func (s *Service) ExportImagesXLSX(ctx context.Context, req repository.ListImagesRequest) ([]byte, error) {
	start := time.Now()

	req.Page = 1
	req.Limit = exportPageSize
	rows, total, err := s.images.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Analyses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Owner", "Email", "URL", "Status", "Description", "Analysis", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		values := []any{
			row.ID.String(),
			row.Owner.Username,
			row.Owner.Email,
			row.URL,
			string(row.Status),
			row.Description,
			row.Analysis,
			row.CreatedAt.UTC().Format(time.RFC3339),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported analyses",
		"rows", len(rows),
		"total_matched", total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
