package repository

import (
	"context"
	"path/filepath"
	"strconv"

	"app/internal/domain/model"
	"app/internal/store"
)

type SellerFileRepository struct {
	tbl *store.Table
}

// DI
func NewSellerFileRepository(dataDir string) *SellerFileRepository {
	return &SellerFileRepository{
		tbl: store.New(filepath.Join(dataDir, sellerFile), sellerHeader),
	}
}

// 全出品者をファイル上の順序で返す。
func (r *SellerFileRepository) ListAll(ctx context.Context) ([]model.Seller, error) {
	rows, err := r.tbl.ReadAll()
	if err != nil {
		return nil, err
	}

	sellers := make([]model.Seller, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(sellerHeader) {
			continue
		}
		no, _ := strconv.ParseInt(row[0], 10, 64)
		sellers = append(sellers, model.Seller{
			SequenceNo: no,
			Name:       row[1],
			Password:   row[2],
			SellerID:   row[3],
			Email:      row[4],
			Address:    row[5],
			Phone:      row[6],
			CNIC:       row[7],
		})
	}
	return sellers, nil
}

func (r *SellerFileRepository) Append(ctx context.Context, s model.Seller) error {
	return r.tbl.Append([]string{
		strconv.FormatInt(s.SequenceNo, 10),
		s.Name, s.Password, s.SellerID, s.Email, s.Address, s.Phone, s.CNIC,
	})
}

func (r *SellerFileRepository) NextSequenceNo(ctx context.Context) (int64, error) {
	return r.tbl.LineCount()
}
