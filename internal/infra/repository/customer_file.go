package repository

import (
	"context"
	"path/filepath"
	"strconv"

	"app/internal/domain/model"
	"app/internal/store"
)

type CustomerFileRepository struct {
	tbl *store.Table
}

// DI
func NewCustomerFileRepository(dataDir string) *CustomerFileRepository {
	return &CustomerFileRepository{
		tbl: store.New(filepath.Join(dataDir, customerFile), customerHeader),
	}
}

func (r *CustomerFileRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.tbl.ReadAll()
	if err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(customerHeader) {
			continue
		}
		no, _ := strconv.ParseInt(row[0], 10, 64)
		customers = append(customers, model.Customer{
			SequenceNo: no,
			Name:       row[1],
			Password:   row[2],
			CustomerID: row[3],
			Email:      row[4],
			Address:    row[5],
			Phone:      row[6],
		})
	}
	return customers, nil
}

func (r *CustomerFileRepository) Append(ctx context.Context, c model.Customer) error {
	return r.tbl.Append([]string{
		strconv.FormatInt(c.SequenceNo, 10),
		c.Name, c.Password, c.CustomerID, c.Email, c.Address, c.Phone,
	})
}

func (r *CustomerFileRepository) NextSequenceNo(ctx context.Context) (int64, error) {
	return r.tbl.LineCount()
}
