// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Storage struct {
		FilePath string `mapstructure:"file_path"` // 用語データを保存するJSONファイル
	} `mapstructure:"storage"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	App struct {
		DefaultPerPage int `mapstructure:"default_per_page"`
		MaxPerPage     int `mapstructure:"max_per_page"`
	} `mapstructure:"app"`
}

var Cfg Config

// LoadConfig は .env → config.yaml → 環境変数 (APP_ 接頭辞) の順に読み込み、Cfg に格納します。
// 設定ファイルが無い場合はデフォルト値と環境変数だけで起動します。
func LoadConfig(path string) error {
	// .env は任意 (本番では環境変数を直接渡す) のため、無くてもエラーにしない
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	setDefaults(v)

	// 例: APP_SERVER_PORT, APP_STORAGE_FILE_PATH
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("storage.file_path", "APP_STORAGE_FILE_PATH", "DATA_FILE"); err != nil {
		slog.Error("Error binding environment variables", slog.Any("error", err))
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using default settings or environment variables if available.")
		} else {
			slog.Error("Error reading config file", slog.Any("error", err))
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("Error unmarshalling config", slog.Any("error", err))
		return err
	}

	if cfg.App.MaxPerPage <= 0 {
		slog.Warn("App max per page invalid, using default", slog.Int("max_per_page", DefaultMaxPerPage))
		cfg.App.MaxPerPage = DefaultMaxPerPage
	}
	if cfg.App.DefaultPerPage <= 0 || cfg.App.DefaultPerPage > cfg.App.MaxPerPage {
		slog.Warn("App default per page invalid, using default", slog.Int("default_per_page", DefaultPerPage))
		cfg.App.DefaultPerPage = min(DefaultPerPage, cfg.App.MaxPerPage)
	}
	if cfg.Storage.FilePath == "" {
		slog.Warn("Storage file path not set, using default", slog.String("file_path", DefaultStorageFilePath))
		cfg.Storage.FilePath = DefaultStorageFilePath
	}

	Cfg = cfg

	slog.Info("Config loaded successfully",
		slog.String("port", Cfg.Server.Port),
		slog.String("storage_file", Cfg.Storage.FilePath),
		slog.String("log_level", Cfg.Log.Level),
	)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("storage.file_path", DefaultStorageFilePath)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("cors.allowed_methods", DefaultAllowedMethods)
	v.SetDefault("cors.allowed_headers", []string{"*"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 0)
	v.SetDefault("app.default_per_page", DefaultPerPage)
	v.SetDefault("app.max_per_page", DefaultMaxPerPage)
}
