// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "Glossary API"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8000"
	DefaultStorageFilePath = "data/terms.json"
	DefaultLogLevel        = "info"
	DefaultPerPage         = 10
	DefaultMaxPerPage      = 100
)

// DefaultAllowedOrigins はフロントエンドの開発サーバーとデプロイ先
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://mindmap-vkr.vercel.app",
	"https://mindmap-vkr-git-main.vercel.app",
	"https://mindmap-vkr-git-*.vercel.app",
}

var DefaultAllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"}
