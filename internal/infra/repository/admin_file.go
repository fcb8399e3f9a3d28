package repository

import (
	"context"
	"path/filepath"
	"strconv"

	"app/internal/domain/model"
	"app/internal/store"
)

type AdminFileRepository struct {
	tbl *store.Table
}

// DI
func NewAdminFileRepository(dataDir string) *AdminFileRepository {
	return &AdminFileRepository{
		tbl: store.New(filepath.Join(dataDir, adminFile), adminHeader),
	}
}

func (r *AdminFileRepository) ListAll(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.tbl.ReadAll()
	if err != nil {
		return nil, err
	}

	admins := make([]model.Admin, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(adminHeader) {
			continue
		}
		no, _ := strconv.ParseInt(row[0], 10, 64)
		admins = append(admins, model.Admin{
			SequenceNo: no,
			Username:   row[1],
			Password:   row[2],
		})
	}
	return admins, nil
}

func (r *AdminFileRepository) Append(ctx context.Context, a model.Admin) error {
	return r.tbl.Append([]string{
		strconv.FormatInt(a.SequenceNo, 10),
		a.Username, a.Password,
	})
}
