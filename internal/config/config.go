package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	DataDir string // テーブルファイルを置くディレクトリ

	AdminUser     string // 初期管理者のユーザー名
	AdminPassword string // 初期管理者のパスワード
}

// Loadは環境変数。未設定ならデフォルトで動く（ローカル専用アプリのため）。
func Load() Config {
	return Config{
		DataDir: getenv("MARKET_DATA_DIR", "data"),

		AdminUser:     getenv("MARKET_ADMIN_USER", "admin"),
		AdminPassword: getenv("MARKET_ADMIN_PASSWORD", "admin123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
