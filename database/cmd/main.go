package main

import (
	"flag"

	"chefsystem.pl/configs/configsdatabase"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Uruchom migracje schematu bazy danych")
	seedFlag := flag.Bool("seed", false, "Uruchom seedery danych podstawowych")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Uruchamiam inicjalizację bazy danych...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Inicjalizacja bazy danych zakończona.")
}
