package repository

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"app/internal/domain/model"
	"app/internal/store"
)

const colOrderID = 0

type OrderFileRepository struct {
	tbl *store.Table
}

// DI
func NewOrderFileRepository(dataDir string) *OrderFileRepository {
	return &OrderFileRepository{
		tbl: store.New(filepath.Join(dataDir, orderFile), orderHeader),
	}
}

func (r *OrderFileRepository) ListAll(ctx context.Context) ([]model.OrderLine, error) {
	rows, err := r.tbl.ReadAll()
	if err != nil {
		return nil, err
	}

	lines := make([]model.OrderLine, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(orderHeader) {
			continue
		}
		orderID, err := strconv.ParseInt(row[colOrderID], 10, 64)
		if err != nil {
			continue
		}

		orderedAt, _ := time.ParseInLocation(model.TimeLayout, row[1], time.Local)
		productID, _ := strconv.ParseInt(row[6], 10, 64)
		unitPrice, _ := model.ParseMoney(row[8])
		qty, _ := strconv.ParseInt(row[9], 10, 64)
		total, _ := model.ParseMoney(row[10])

		lines = append(lines, model.OrderLine{
			OrderID:      orderID,
			OrderedAt:    orderedAt,
			CustomerID:   row[2],
			CustomerName: row[3],
			SellerID:     row[4],
			SellerName:   row[5],
			ProductID:    productID,
			ProductName:  row[7],
			UnitPrice:    unitPrice,
			Quantity:     qty,
			TotalPrice:   total,
		})
	}
	return lines, nil
}

func (r *OrderFileRepository) NextOrderID(ctx context.Context) (int64, error) {
	return r.tbl.NextID(colOrderID)
}

// Append は1明細を追記する。total_priceは呼び出し側の値を信用せず、
// 必ず unit_price × quantity をここで計算し直す。
func (r *OrderFileRepository) Append(ctx context.Context, line model.OrderLine) error {
	total := line.UnitPrice.MulQty(line.Quantity)

	return r.tbl.Append([]string{
		strconv.FormatInt(line.OrderID, 10),
		line.OrderedAt.Format(model.TimeLayout),
		line.CustomerID,
		line.CustomerName,
		line.SellerID,
		line.SellerName,
		strconv.FormatInt(line.ProductID, 10),
		line.ProductName,
		line.UnitPrice.String(),
		strconv.FormatInt(line.Quantity, 10),
		total.String(),
	})
}
