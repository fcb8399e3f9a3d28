package usecase

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/session"
	"app/pkg/log"

	"go.uber.org/zap"
)

// CheckoutUsecase はカートを台帳の行と在庫減算に変換する。
//
// 流れ:
//  1. カタログ全体を1回だけ読んでスナップショットを作る
//  2. 全明細をそのスナップショットに対して検証する（
//     ここで失敗したら何も書かない。全部通るか、全部やらないか）
//  3. order_idを採番する
//  4. カート順に台帳へ1行ずつ追記する
//  5. 在庫を減らしたカタログを1回の書き換えで保存する
//  6. カートを空にする
//
// 台帳追記→カタログ書き換えの順なので、その間でプロセスが落ちると
// 売れたのに在庫が減っていない状態になり得る（元システムの挙動を保存）。
type CheckoutUsecase struct {
	products repo.ProductRepository
	orders   repo.OrderRepository
	clock    Clock

	// スナップショット〜書き換えの窓を同一プロセス内で直列化する
	mu sync.Mutex
}

// DI
func NewCheckoutUsecase(products repo.ProductRepository, orders repo.OrderRepository, clock Clock) *CheckoutUsecase {
	return &CheckoutUsecase{products: products, orders: orders, clock: clock}
}

// Checkout は成功なら新しいorder_idを返す。
// 失敗時、カタログと台帳は一切変更されず、カートもそのまま残る。
func (u *CheckoutUsecase) Checkout(ctx context.Context, sess *session.Session) (int64, error) {
	if sess == nil || sess.Customer == nil {
		return 0, ErrInvalidCredentials
	}
	if len(sess.Cart) == 0 {
		return 0, ErrEmptyCart
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	all, err := u.products.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	snapshot := make(map[int64]model.Product, len(all))
	for _, p := range all {
		snapshot[p.ID] = p
	}

	// 書き込みを始める前に全明細を検証する。
	// 同一商品が複数行あっても合算数量で判定する。
	wanted := make(map[int64]int64, len(sess.Cart))
	for _, it := range sess.Cart {
		p, ok := snapshot[it.ProductID]
		if !ok {
			return 0, &UnknownProductError{ProductID: it.ProductID}
		}
		wanted[it.ProductID] += it.Quantity
		if wanted[it.ProductID] > p.Stock {
			return 0, &InsufficientStockError{
				ProductID: it.ProductID,
				Requested: wanted[it.ProductID],
				Available: p.Stock,
			}
		}
	}

	orderID, err := u.orders.NextOrderID(ctx)
	if err != nil {
		return 0, err
	}

	now := u.clock.Now()
	cust := sess.Customer
	deltas := make(map[int64]int64, len(sess.Cart))

	for _, it := range sess.Cart {
		deltas[it.ProductID] += it.Quantity

		// 単価はカート追加時点のスナップショット値。total_priceは
		// リポジトリ側で単価×数量を計算し直す。
		line := model.OrderLine{
			OrderID:      orderID,
			OrderedAt:    now,
			CustomerID:   cust.CustomerID,
			CustomerName: cust.Name,
			SellerID:     it.SellerID,
			SellerName:   it.SellerName,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			UnitPrice:    it.UnitPrice,
			Quantity:     it.Quantity,
		}
		if err := u.orders.Append(ctx, line); err != nil {
			return 0, err
		}
	}

	if err := u.products.DecrementStock(ctx, deltas); err != nil {
		return 0, err
	}

	sess.ClearCart()

	log.L.Info("checkout committed",
		zap.Int64("order_id", orderID),
		zap.String("customer_id", cust.CustomerID),
		zap.Int("lines", len(deltas)),
	)
	return orderID, nil
}
