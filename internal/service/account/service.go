package account

import (
	"context"
	"fmt"

	"github.com/expensehub/expensehub-backend-go/internal/domain/account"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/database"
	"github.com/expensehub/expensehub-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type accountServiceImpl struct {
	db       *database.DB
	userRepo account.UserRepository
}

func NewAccountService(db *database.DB, userRepo account.UserRepository) account.AccountService {
	return &accountServiceImpl{
		db:       db,
		userRepo: userRepo,
	}
}

func (a *accountServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Signup implements account.AccountService.
func (a *accountServiceImpl) Signup(ctx context.Context, req account.SignupRequest) (account.User, error) {
	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return account.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created account.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Check username and email are not already taken
		if _, err := a.userRepo.GetByUsername(txCtx, req.Username); err == nil {
			return account.ErrUsernameTaken
		} else if err != pgx.ErrNoRows {
			return fmt.Errorf("failed to get user by username: %w", err)
		}

		if _, err := a.userRepo.GetByEmail(txCtx, req.Email); err == nil {
			return account.ErrEmailTaken
		} else if err != pgx.ErrNoRows {
			return fmt.Errorf("failed to get user by email: %w", err)
		}

		newUser := account.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hashedPassword,
		}
		created, err = a.userRepo.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return account.User{}, err
	}

	return created, nil
}

// Login implements account.AccountService. Unknown email and wrong password
// collapse into the same error so the response leaks nothing about which
// field was wrong.
func (a *accountServiceImpl) Login(ctx context.Context, req account.LoginRequest) error {
	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return account.ErrInvalidCredentials
	}

	return nil
}
