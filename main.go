package main

import (
	"os"
	"os/signal"
	"syscall"

	"chefsystem.pl/configs/configsdatabase"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName: "ChefSystem",
	})

	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Zamknięcie na SIGINT/SIGTERM, żeby nie ucinać otwartych połączeń.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Otrzymano sygnał zamknięcia, zatrzymuję serwer...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Błąd przy zamykaniu serwera", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Serwer nasłuchuje na porcie %s", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Serwer zakończył się błędem", zap.Error(err))
	}

	configslog.SLog.Info("Serwer zatrzymany.")
}
