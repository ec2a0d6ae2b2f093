package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expensehub/expensehub-backend-go/internal/domain/request"
	"github.com/expensehub/expensehub-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{
		requestService: requestService,
	}
}

// List implements RequestHandler.
func (h *RequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request.NewRequestResponses(requests))
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense request created successfully", request.NewRequestResponse(created))
}

// Update implements RequestHandler. The patch may touch any subset of
// fields; unsupplied fields keep their stored values.
func (h *RequestHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var patch request.UpdateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		slog.Error("Update request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := patch.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.requestService.Update(r.Context(), id, patch)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request.NewRequestResponse(updated))
}
