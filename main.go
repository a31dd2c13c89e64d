package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/orders-admin/auth"
	"github.com/yeremiapane/orders-admin/config"
	"github.com/yeremiapane/orders-admin/router"
	"github.com/yeremiapane/orders-admin/utils"
)

func init() {
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
		utils.UseJSONFormat()
	}

	orderStore, err := config.NewOrderStore(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialise order store: %v", err)
	}
	utils.InfoLogger.Printf("Order store: %s", cfg.StoreDriver)

	uploadsDir := ""
	if _, err := os.Stat("public/uploads"); err == nil {
		uploadsDir = "public/uploads"
	}

	r := router.SetupRouter(router.Deps{
		Store: orderStore,
		Gate: auth.NewGate(auth.Credentials{
			Identifier: cfg.AdminEmail,
			Secret:     cfg.AdminPassword,
		}),
		Tokens:        auth.NewTokens([]byte(cfg.SessionSecret)),
		Images:        config.NewImageResolver(cfg),
		AllowedOrigin: cfg.AllowedOrigin,
		SecureCookie:  cfg.GinMode == "release",
		UploadsDir:    uploadsDir,
		RateLimit:     cfg.RateLimit,
	})

	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Printf("Error setting trusted proxies: %v", err)
	}

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
