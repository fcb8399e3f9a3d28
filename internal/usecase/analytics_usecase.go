package usecase

import (
	"context"
	"sort"
	"strconv"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AnalyticsUsecase は台帳だけを読む純粋な集計。状態を持たず毎回計算し直す。
type AnalyticsUsecase struct {
	orders repo.OrderRepository
}

// DI
func NewAnalyticsUsecase(orders repo.OrderRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{orders: orders}
}

// データが無いときの番兵。売上0の "N/A" を返す（エラーにしない）。
const NoDataLabel = "N/A"

type SellerRevenue struct {
	SellerID   string
	SellerName string
	Revenue    model.Money
}

type ProductRevenue struct {
	ProductID   int64
	ProductName string
	SellerID    string
	Revenue     model.Money
}

// 管理者向け（全体）。ランキングは売上降順、同額は先に現れたグループが先。
type AdminReport struct {
	BestSeller   SellerRevenue
	LowestSeller SellerRevenue

	BestProduct   ProductRevenue
	LowestProduct ProductRevenue

	SellerRanking  []SellerRevenue
	ProductRanking []ProductRevenue
}

// 出品者向け（自分のseller_idの行だけ）。
type SellerReport struct {
	TotalRevenue model.Money

	BestProduct   ProductRevenue
	LowestProduct ProductRevenue

	ProductRanking []ProductRevenue
}

func (u *AnalyticsUsecase) AdminReport(ctx context.Context) (AdminReport, error) {
	lines, err := u.orders.ListAll(ctx)
	if err != nil {
		return AdminReport{}, err
	}

	// グループは初出順のスライスで集める（mapの走査順に依存しない）
	sellerIdx := map[string]int{}
	var sellers []SellerRevenue

	productIdx := map[string]int{}
	var products []ProductRevenue

	for _, l := range lines {
		sk := l.SellerID + "|" + l.SellerName
		if i, ok := sellerIdx[sk]; ok {
			sellers[i].Revenue += l.TotalPrice
		} else {
			sellerIdx[sk] = len(sellers)
			sellers = append(sellers, SellerRevenue{
				SellerID:   l.SellerID,
				SellerName: l.SellerName,
				Revenue:    l.TotalPrice,
			})
		}

		pk := productKey(l)
		if i, ok := productIdx[pk]; ok {
			products[i].Revenue += l.TotalPrice
		} else {
			productIdx[pk] = len(products)
			products = append(products, ProductRevenue{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				SellerID:    l.SellerID,
				Revenue:     l.TotalPrice,
			})
		}
	}

	rep := AdminReport{
		SellerRanking:  rankSellers(sellers),
		ProductRanking: rankProducts(products),
	}
	rep.BestSeller, rep.LowestSeller = bestLowestSeller(sellers)
	rep.BestProduct, rep.LowestProduct = bestLowestProduct(products)
	return rep, nil
}

func (u *AnalyticsUsecase) SellerReport(ctx context.Context, sellerID string) (SellerReport, error) {
	lines, err := u.orders.ListAll(ctx)
	if err != nil {
		return SellerReport{}, err
	}

	var total model.Money
	productIdx := map[string]int{}
	var products []ProductRevenue

	for _, l := range lines {
		if l.SellerID != sellerID {
			continue
		}
		total += l.TotalPrice

		pk := productKey(l)
		if i, ok := productIdx[pk]; ok {
			products[i].Revenue += l.TotalPrice
		} else {
			productIdx[pk] = len(products)
			products = append(products, ProductRevenue{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				SellerID:    l.SellerID,
				Revenue:     l.TotalPrice,
			})
		}
	}

	rep := SellerReport{
		TotalRevenue:   total,
		ProductRanking: rankProducts(products),
	}
	rep.BestProduct, rep.LowestProduct = bestLowestProduct(products)
	return rep, nil
}

// 同名の商品でもIDと出品者が違えば別グループ。
func productKey(l model.OrderLine) string {
	return strconv.FormatInt(l.ProductID, 10) + "|" + l.ProductName + "|" + l.SellerID
}

// 売上昇順の安定ソートで、最小=先頭・最大=末尾を取る。
func bestLowestSeller(groups []SellerRevenue) (best, lowest SellerRevenue) {
	if len(groups) == 0 {
		s := SellerRevenue{SellerName: NoDataLabel}
		return s, s
	}
	asc := make([]SellerRevenue, len(groups))
	copy(asc, groups)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Revenue < asc[j].Revenue })
	return asc[len(asc)-1], asc[0]
}

func bestLowestProduct(groups []ProductRevenue) (best, lowest ProductRevenue) {
	if len(groups) == 0 {
		p := ProductRevenue{ProductName: NoDataLabel}
		return p, p
	}
	asc := make([]ProductRevenue, len(groups))
	copy(asc, groups)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Revenue < asc[j].Revenue })
	return asc[len(asc)-1], asc[0]
}

func rankSellers(groups []SellerRevenue) []SellerRevenue {
	ranked := make([]SellerRevenue, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Revenue > ranked[j].Revenue })
	return ranked
}

func rankProducts(groups []ProductRevenue) []ProductRevenue {
	ranked := make([]ProductRevenue, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Revenue > ranked[j].Revenue })
	return ranked
}
