package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/goo-o-o/uosm-banking-system/internal/cli"
	"github.com/goo-o-o/uosm-banking-system/internal/ledger"
	"github.com/goo-o-o/uosm-banking-system/internal/service"
	"github.com/goo-o-o/uosm-banking-system/internal/store"
)

func main() {
	databaseDir := getEnv("BANK_DATABASE_DIR", "./database")
	ledgerFile := getEnv("BANK_LEDGER_FILE", filepath.Join(databaseDir, "transactions.log"))

	fileStore, err := store.NewFileStore(databaseDir)
	if err != nil {
		log.Fatalf("failed to open account database: %v", err)
	}

	transactionLog := ledger.New(ledgerFile)
	accountService := service.NewAccountService(fileStore)
	transactionService := service.NewTransactionService(fileStore, transactionLog)

	session := cli.NewSession(accountService, transactionService, os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		log.Fatalf("session ended with error: %v", err)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
