package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/session"
)

// CartUsecase はセッション上のカートを操作する（同一商品は数量加算）。
type CartUsecase struct {
	products repo.ProductRepository
}

// DI
func NewCartUsecase(products repo.ProductRepository) *CartUsecase {
	return &CartUsecase{products: products}
}

// AddToCart は追加時点のカタログに対して数量を検証してからカートに積む。
// 単価は追加時点のスナップショットを保持し、チェックアウトまで読み直さない。
func (u *CartUsecase) AddToCart(ctx context.Context, sess *session.Session, productID int64, qty int64) error {
	if sess == nil || sess.Customer == nil {
		return ErrInvalidCredentials
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return &UnknownProductError{ProductID: productID}
	}
	if err != nil {
		return err
	}
	// 非公開の商品は購入者からは「存在しない」扱い
	if !p.Purchasable() {
		return &UnknownProductError{ProductID: productID}
	}

	// 既存行があれば加算した数量で在庫を見る
	existing := int64(0)
	for i := range sess.Cart {
		if sess.Cart[i].ProductID == productID {
			existing = sess.Cart[i].Quantity
			break
		}
	}

	merged := existing + qty
	if merged > p.Stock {
		return &InsufficientStockError{
			ProductID: productID,
			Requested: merged,
			Available: p.Stock,
		}
	}

	for i := range sess.Cart {
		if sess.Cart[i].ProductID == productID {
			sess.Cart[i].Quantity = merged
			sess.Cart[i].TotalPrice = sess.Cart[i].UnitPrice.MulQty(merged)
			return nil
		}
	}

	sess.Cart = append(sess.Cart, model.CartItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    qty,
		TotalPrice:  p.Price.MulQty(qty),
		SellerID:    p.SellerID,
		SellerName:  p.SellerName,
	})
	return nil
}

// CartTotal はカート全体の合計金額。
func (u *CartUsecase) CartTotal(sess *session.Session) model.Money {
	var total model.Money
	for _, it := range sess.Cart {
		total += it.TotalPrice
	}
	return total
}

func (u *CartUsecase) Clear(sess *session.Session) {
	sess.ClearCart()
}
