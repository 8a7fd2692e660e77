package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_controller.go -package=mocks github.com/ibeloyar/returndesk/internal/controller/http Service,Dispatcher,Storage

type Service interface {
	CheckEligibility(ctx context.Context, orderNumber, customerID string) (*model.EligibilityDecision, error)
	ProcessReturn(input model.ReturnRequestDTO) *model.ReturnReceipt
	ProcessExchange(ctx context.Context, input model.ExchangeRequestDTO) (*model.ExchangeReceipt, error)
	CheckSizeAvailability(ctx context.Context, itemID, size string) (bool, error)
	GetSizeAlternatives(ctx context.Context, itemID, desiredSize string) ([]model.AlternativeSize, error)
	GetReturnPolicy(category string) model.ReturnPolicy
}

type Dispatcher interface {
	Invoke(ctx context.Context, req model.ToolRequest) model.ToolResponse
}

type Storage interface {
	Ping() error
}

type Controller struct {
	service    Service
	dispatcher Dispatcher
	storage    Storage
	lg         *zap.SugaredLogger
}

func New(s Service, d Dispatcher, storage Storage, lg *zap.SugaredLogger) *Controller {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Controller{
		service:    s,
		dispatcher: d,
		storage:    storage,
		lg:         lg,
	}
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if c.storage != nil {
		if err := c.storage.Ping(); err != nil {
			c.lg.Errorf("storage ping failed: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "number")
	customerID := strings.TrimSpace(r.URL.Query().Get("customer_id"))

	if customerID == "" {
		writeJSON(w, c.lg, model.APIError{Code: http.StatusBadRequest, Message: model.ErrCustomerIDRequiredMessage}, http.StatusBadRequest)
		return
	}

	decision, err := c.service.CheckEligibility(r.Context(), orderNumber, customerID)
	if err != nil {
		c.internalError(w, "check eligibility", err)
		return
	}

	writeJSON(w, c.lg, decision, http.StatusOK)
}

func (c *Controller) ProcessReturn(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ReturnRequestDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeJSON(w, c.lg, model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidRequestMessage}, http.StatusBadRequest)
		return
	}

	body.ApplyAliases()
	if body.OrderNumber == "" || body.ItemName == "" || body.Reason == "" {
		writeJSON(w, c.lg, model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidRequestMessage}, http.StatusBadRequest)
		return
	}

	writeJSON(w, c.lg, c.service.ProcessReturn(body), http.StatusOK)
}

func (c *Controller) ProcessExchange(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ExchangeRequestDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeJSON(w, c.lg, model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidRequestMessage}, http.StatusBadRequest)
		return
	}

	body.ApplyAliases()
	if body.OrderNumber == "" || body.ItemName == "" || body.CurrentOption == "" || body.DesiredOption == "" {
		writeJSON(w, c.lg, model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidRequestMessage}, http.StatusBadRequest)
		return
	}

	receipt, err := c.service.ProcessExchange(r.Context(), body)
	if err != nil {
		c.internalError(w, "process exchange", err)
		return
	}

	writeJSON(w, c.lg, receipt, http.StatusOK)
}

func (c *Controller) CheckSizeAvailability(w http.ResponseWriter, r *http.Request) {
	itemID, size := chi.URLParam(r, "item"), chi.URLParam(r, "size")

	available, err := c.service.CheckSizeAvailability(r.Context(), itemID, size)
	if err != nil {
		c.internalError(w, "check size availability", err)
		return
	}

	writeJSON(w, c.lg, model.SizeAvailability{ItemID: itemID, Size: size, Available: available}, http.StatusOK)
}

func (c *Controller) GetSizeAlternatives(w http.ResponseWriter, r *http.Request) {
	itemID, size := chi.URLParam(r, "item"), chi.URLParam(r, "size")

	alternatives, err := c.service.GetSizeAlternatives(r.Context(), itemID, size)
	if err != nil {
		c.internalError(w, "get size alternatives", err)
		return
	}

	writeJSON(w, c.lg, alternatives, http.StatusOK)
}

func (c *Controller) GetReturnPolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.service.GetReturnPolicy(chi.URLParam(r, "category")), http.StatusOK)
}

// InvokeTool answers with the envelope's own status code.
func (c *Controller) InvokeTool(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ToolRequest](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeJSON(w, c.lg, model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidRequestMessage}, http.StatusBadRequest)
		return
	}

	if caller := auth.GetTokenInfo[model.Caller](r.Context()); !caller.Allows(body.ToolName) {
		writeJSON(w, c.lg, model.APIError{Code: http.StatusForbidden, Message: model.ErrToolNotAllowedMessage}, http.StatusForbidden)
		return
	}

	resp := c.dispatcher.Invoke(r.Context(), body)

	writeJSON(w, c.lg, resp, resp.StatusCode)
}

func (c *Controller) internalError(w http.ResponseWriter, op string, err error) {
	c.lg.Errorf("%s: %v", op, err)
	writeJSON(w, c.lg, model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}, http.StatusInternalServerError)
}
