package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"app/internal/config"
	infraRepo "app/internal/infra/repository"
	"app/internal/session"
	"app/internal/usecase"
	"app/pkg/log"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type app struct {
	cfg config.Config

	customers *infraRepo.CustomerFileRepository

	accounts  *usecase.AccountUsecase
	catalog   *usecase.CatalogUsecase
	cart      *usecase.CartUsecase
	checkout  *usecase.CheckoutUsecase
	analytics *usecase.AnalyticsUsecase
}

func newApp() *app {
	//.envは無ければ無いままで構わない
	_ = godotenv.Load()

	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.L.Fatal("failed to create data dir", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	//Repository（ファイル実装）生成
	sellerRepo := infraRepo.NewSellerFileRepository(cfg.DataDir)
	customerRepo := infraRepo.NewCustomerFileRepository(cfg.DataDir)
	adminRepo := infraRepo.NewAdminFileRepository(cfg.DataDir)
	productRepo := infraRepo.NewProductFileRepository(cfg.DataDir)
	orderRepo := infraRepo.NewOrderFileRepository(cfg.DataDir)

	clock := &realClock{}

	//Usecase生成
	return &app{
		cfg:       cfg,
		customers: customerRepo,
		accounts:  usecase.NewAccountUsecase(sellerRepo, customerRepo, adminRepo),
		catalog:   usecase.NewCatalogUsecase(productRepo, clock),
		cart:      usecase.NewCartUsecase(productRepo),
		checkout:  usecase.NewCheckoutUsecase(productRepo, orderRepo, clock),
		analytics: usecase.NewAnalyticsUsecase(orderRepo),
	}
}

func main() {
	a := newApp()

	cliApp := &cli.App{
		Name:  "market",
		Usage: "file-backed marketplace simulator",
		Commands: []*cli.Command{
			a.initCommand(),
			a.registerSellerCommand(),
			a.registerCustomerCommand(),
			a.addProductCommand(),
			a.productsCommand(),
			a.shopCommand(),
			a.reportCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}

// init: テーブルを作り、初期管理者をシードする。
func (a *app) initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "create table files and seed the default admin",
		Action: func(c *cli.Context) error {
			ctx := c.Context

			// どのテーブルも最初の読みで（無ければ）作られる
			if _, err := a.accounts.ListSellers(ctx); err != nil {
				return err
			}
			if _, err := a.catalog.ListActive(ctx, ""); err != nil {
				return err
			}
			if _, err := a.analytics.AdminReport(ctx); err != nil {
				return err
			}
			if _, err := a.customers.ListAll(ctx); err != nil {
				return err
			}

			if err := a.accounts.EnsureAdmin(ctx, a.cfg.AdminUser, a.cfg.AdminPassword); err != nil {
				return err
			}
			fmt.Printf("initialized %s (default admin: %s)\n", a.cfg.DataDir, a.cfg.AdminUser)
			return nil
		},
	}
}

func (a *app) registerSellerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register-seller",
		Usage: "sign up a seller account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "id", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "address"},
			&cli.StringFlag{Name: "phone", Required: true},
			&cli.StringFlag{Name: "cnic", Required: true},
		},
		Action: func(c *cli.Context) error {
			s, err := a.accounts.RegisterSeller(c.Context, usecase.RegisterSellerInput{
				Name:     c.String("name"),
				Password: c.String("password"),
				SellerID: c.String("id"),
				Email:    c.String("email"),
				Address:  c.String("address"),
				Phone:    c.String("phone"),
				CNIC:     c.String("cnic"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("seller account created (no=%d, id=%s)\n", s.SequenceNo, s.SellerID)
			return nil
		},
	}
}

func (a *app) registerCustomerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register-customer",
		Usage: "sign up a customer account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "id", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "address"},
			&cli.StringFlag{Name: "phone", Required: true},
		},
		Action: func(c *cli.Context) error {
			cu, err := a.accounts.RegisterCustomer(c.Context, usecase.RegisterCustomerInput{
				Name:       c.String("name"),
				Password:   c.String("password"),
				CustomerID: c.String("id"),
				Email:      c.String("email"),
				Address:    c.String("address"),
				Phone:      c.String("phone"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("customer account created (no=%d, id=%s)\n", cu.SequenceNo, cu.CustomerID)
			return nil
		},
	}
}

// add-product: 出品者としてログインしてから出品する。
func (a *app) addProductCommand() *cli.Command {
	return &cli.Command{
		Name:  "add-product",
		Usage: "log in as a seller and add a product",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seller", Usage: "seller name", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "description"},
			&cli.StringFlag{Name: "category"},
			&cli.StringFlag{Name: "brand"},
			&cli.StringFlag{Name: "price", Required: true},
			&cli.StringFlag{Name: "stock", Required: true},
		},
		Action: func(c *cli.Context) error {
			ctx := c.Context

			seller, err := a.accounts.LoginSeller(ctx, c.String("seller"), c.String("password"))
			if err != nil {
				return err
			}

			p, err := a.catalog.AddProduct(ctx, usecase.AddProductInput{
				SellerID:    seller.SellerID,
				SellerName:  seller.Name,
				Name:        c.String("name"),
				Description: c.String("description"),
				Category:    c.String("category"),
				Brand:       c.String("brand"),
				Price:       c.String("price"),
				Stock:       c.String("stock"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("product added (ID: %d)\n", p.ID)
			return nil
		},
	}
}

// products: 購入可能な商品の一覧。--sellerで出品者視点の全件に切り替える。
func (a *app) productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "list purchasable products (or a seller's own products)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "q", Usage: "name filter"},
			&cli.StringFlag{Name: "seller", Usage: "list everything owned by this seller id"},
		},
		Action: func(c *cli.Context) error {
			ctx := c.Context

			if sid := c.String("seller"); sid != "" {
				products, err := a.catalog.ListBySeller(ctx, sid)
				if err != nil {
					return err
				}
				for _, p := range products {
					fmt.Printf("%d,%s,%s,%d,%s\n", p.ID, p.Name, p.Price, p.Stock, p.Status)
				}
				return nil
			}

			products, err := a.catalog.ListActive(ctx, c.String("q"))
			if err != nil {
				return err
			}
			for _, p := range products {
				fmt.Printf("%d,%s,%s,%d,%s,%s\n", p.ID, p.Name, p.Price, p.Stock, p.SellerID, p.SellerName)
			}
			return nil
		},
	}
}

// shop: 購入者としてログインし、--item pid:qty をカートに積んでチェックアウト。
func (a *app) shopCommand() *cli.Command {
	return &cli.Command{
		Name:  "shop",
		Usage: "log in as a customer, fill the cart and check out",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "customer", Usage: "customer name", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringSliceFlag{Name: "item", Usage: "product_id:quantity (repeatable)", Required: true},
		},
		Action: func(c *cli.Context) error {
			ctx := c.Context

			cust, err := a.accounts.LoginCustomer(ctx, c.String("customer"), c.String("password"))
			if err != nil {
				return err
			}

			sess := session.New()
			sess.LoginCustomer(cust)

			for _, arg := range c.StringSlice("item") {
				pid, qty, err := parseItem(arg)
				if err != nil {
					return err
				}
				if err := a.cart.AddToCart(ctx, sess, pid, qty); err != nil {
					return err
				}
			}
			fmt.Printf("cart total: %s\n", a.cart.CartTotal(sess))

			orderID, err := a.checkout.Checkout(ctx, sess)
			if err != nil {
				return err
			}
			fmt.Printf("purchase successful! order ID: %d\n", orderID)
			return nil
		},
	}
}

func parseItem(arg string) (pid int64, qty int64, err error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid item %q (want product_id:quantity)", arg)
	}
	pid, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid item %q: %w", arg, err)
	}
	qty, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid item %q: %w", arg, err)
	}
	return pid, qty, nil
}

// report: 管理者なら全体、--sellerなら出品者自身の売上レポート。
func (a *app) reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "print the revenue report",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seller", Usage: "restrict to this seller id"},
		},
		Action: func(c *cli.Context) error {
			ctx := c.Context

			if sid := c.String("seller"); sid != "" {
				rep, err := a.analytics.SellerReport(ctx, sid)
				if err != nil {
					return err
				}
				fmt.Print(renderSellerReport(rep))
				return nil
			}

			sellers, err := a.accounts.ListSellers(ctx)
			if err != nil {
				return err
			}
			fmt.Println("All Sellers:")
			for _, s := range sellers {
				fmt.Printf("  %s,%s,%s,%s,%s,%s\n", s.SellerID, s.Name, s.Email, s.Phone, s.Address, s.CNIC)
			}
			fmt.Println()

			rep, err := a.analytics.AdminReport(ctx)
			if err != nil {
				return err
			}
			fmt.Print(renderAdminReport(rep))
			return nil
		},
	}
}

func sellerLabel(s usecase.SellerRevenue) string {
	if s.SellerID == "" && s.SellerName == usecase.NoDataLabel {
		return usecase.NoDataLabel
	}
	return s.SellerID + " | " + s.SellerName
}

func productLabel(p usecase.ProductRevenue, withSeller bool) string {
	if p.ProductID == 0 && p.ProductName == usecase.NoDataLabel {
		return usecase.NoDataLabel
	}
	label := fmt.Sprintf("%d | %s", p.ProductID, p.ProductName)
	if withSeller {
		label += " | seller " + p.SellerID
	}
	return label
}

func renderAdminReport(rep usecase.AdminReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Best Seller (Revenue): %s -> %s\n", sellerLabel(rep.BestSeller), rep.BestSeller.Revenue)
	fmt.Fprintf(&b, "Lowest Seller (Revenue): %s -> %s\n\n", sellerLabel(rep.LowestSeller), rep.LowestSeller.Revenue)
	fmt.Fprintf(&b, "Best Product (Revenue): %s -> %s\n", productLabel(rep.BestProduct, true), rep.BestProduct.Revenue)
	fmt.Fprintf(&b, "Lowest Product (Revenue): %s -> %s\n\n", productLabel(rep.LowestProduct, true), rep.LowestProduct.Revenue)

	b.WriteString("Revenue by Seller:\n")
	for _, s := range rep.SellerRanking {
		fmt.Fprintf(&b, "  %s -> %s\n", sellerLabel(s), s.Revenue)
	}

	b.WriteString("\nRevenue by Product:\n")
	for _, p := range rep.ProductRanking {
		fmt.Fprintf(&b, "  %s -> %s\n", productLabel(p, true), p.Revenue)
	}

	return b.String()
}

func renderSellerReport(rep usecase.SellerReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total Revenue: %s\n", rep.TotalRevenue)
	fmt.Fprintf(&b, "Best Product: %s -> %s\n", productLabel(rep.BestProduct, false), rep.BestProduct.Revenue)
	fmt.Fprintf(&b, "Lowest Product: %s -> %s\n", productLabel(rep.LowestProduct, false), rep.LowestProduct.Revenue)

	return b.String()
}
