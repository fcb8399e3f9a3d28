package repository

// テーブルファイル名とヘッダー。順序は固定スキーマそのもの。
const (
	sellerFile   = "seller.txt"
	customerFile = "customer.txt"
	adminFile    = "admin.txt"
	productFile  = "product.txt"
	orderFile    = "economics.txt"
)

var (
	sellerHeader   = []string{"no", "name", "password", "id", "email", "address", "phone", "cnic"}
	customerHeader = []string{"no", "name", "password", "id", "email", "address", "phone"}
	adminHeader    = []string{"no", "username", "password"}

	productHeader = []string{
		"product_id", "seller_id", "seller_name", "product_name", "description",
		"category", "brand", "price", "stock", "status", "rating", "created_at",
	}
	orderHeader = []string{
		"order_id", "date_time", "customer_id", "customer_name", "seller_id",
		"seller_name", "product_id", "product_name", "unit_price", "quantity", "total_price",
	}
)
