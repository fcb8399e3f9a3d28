package usecase

import (
	"context"
	"strconv"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CatalogUsecase struct {
	products repo.ProductRepository
	clock    Clock
}

// DI
func NewCatalogUsecase(products repo.ProductRepository, clock Clock) *CatalogUsecase {
	return &CatalogUsecase{products: products, clock: clock}
}

// 出品フォームの入力。PriceとStockは未検証の文字列のまま受ける。
type AddProductInput struct {
	SellerID    string
	SellerName  string
	Name        string
	Description string
	Category    string
	Brand       string
	Price       string
	Stock       string
}

// AddProduct は価格・在庫を検証して商品を追記する。
// statusはactive、ratingは0で固定。product_idは採番（max+1）。
func (u *CatalogUsecase) AddProduct(ctx context.Context, in AddProductInput) (model.Product, error) {
	price, err := model.ParseMoney(in.Price)
	if err != nil || price < 0 {
		return model.Product{}, ErrInvalidQuantity
	}
	stock, err := strconv.ParseInt(strings.TrimSpace(in.Stock), 10, 64)
	if err != nil || stock < 0 {
		return model.Product{}, ErrInvalidQuantity
	}

	id, err := u.products.NextID(ctx)
	if err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:          id,
		SellerID:    strings.TrimSpace(in.SellerID),
		SellerName:  strings.TrimSpace(in.SellerName),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Brand:       strings.TrimSpace(in.Brand),
		Price:       price,
		Stock:       stock,
		Status:      model.ProductStatusActive,
		Rating:      0,
		CreatedAt:   u.clock.Now(),
	}

	if err := u.products.Append(ctx, p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// ListActive は購入可能な商品だけを挿入順で返す。
// filterは商品名への部分一致（大文字小文字を無視）。
func (u *CatalogUsecase) ListActive(ctx context.Context, filter string) ([]model.Product, error) {
	all, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter))

	products := make([]model.Product, 0, len(all))
	for _, p := range all {
		if !p.Purchasable() {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// ListBySeller はstatusや在庫に関係なく自分の商品を全部返す。
func (u *CatalogUsecase) ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error) {
	return u.products.ListBySeller(ctx, sellerID)
}
