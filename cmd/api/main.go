package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/expensehub/expensehub-backend-go/internal/config"
	appHTTP "github.com/expensehub/expensehub-backend-go/internal/handler/http"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/database"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/storage"
	"github.com/expensehub/expensehub-backend-go/internal/repository/postgresql"
	accountService "github.com/expensehub/expensehub-backend-go/internal/service/account"
	expenseService "github.com/expensehub/expensehub-backend-go/internal/service/expense"
	"github.com/expensehub/expensehub-backend-go/internal/service/file"
	requestService "github.com/expensehub/expensehub-backend-go/internal/service/request"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	accountSvc := accountService.NewAccountService(db, userRepo)
	requestSvc := requestService.NewRequestService(db, requestRepo)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, fileService)

	accountHandler := appHTTP.NewAccountHandler(accountSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)

	router := appHTTP.NewRouter(
		cfg.Employee.APISecret,
		accountHandler,
		requestHandler,
		expenseHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
