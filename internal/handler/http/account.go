package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expensehub/expensehub-backend-go/internal/domain/account"
	"github.com/expensehub/expensehub-backend-go/internal/handler/http/response"
)

type AccountHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	accountService account.AccountService
}

func NewAccountHandler(accountService account.AccountService) AccountHandler {
	return &AccountHandlerImpl{
		accountService: accountService,
	}
}

// Signup implements AccountHandler.
func (h *AccountHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	var req account.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Signup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if _, err := h.accountService.Signup(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", nil)
}

// Login implements AccountHandler. On success only an acknowledgment is
// returned; no session token is issued.
func (h *AccountHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req account.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.accountService.Login(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", nil)
}
