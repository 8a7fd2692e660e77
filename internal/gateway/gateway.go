package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ibeloyar/returndesk/internal/gateway Service

type Service interface {
	CheckEligibility(ctx context.Context, orderNumber, customerID string) (*model.EligibilityDecision, error)
	ProcessReturn(input model.ReturnRequestDTO) *model.ReturnReceipt
	ProcessExchange(ctx context.Context, input model.ExchangeRequestDTO) (*model.ExchangeReceipt, error)
	CheckSizeAvailability(ctx context.Context, itemID, size string) (bool, error)
	GetSizeAlternatives(ctx context.Context, itemID, desiredSize string) ([]model.AlternativeSize, error)
	GetReturnPolicy(category string) model.ReturnPolicy
}

type Recorder interface {
	ObserveInvocation(tool string, statusCode int)
}

type handlerFunc func(ctx context.Context, args arguments) (any, error)

type tool struct {
	params []param
	schema *gojsonschema.Schema
	handle handlerFunc
}

// Dispatcher routes tool invocation envelopes to the service.
type Dispatcher struct {
	service  Service
	lg       *zap.SugaredLogger
	recorder Recorder
	tools    map[string]*tool
	newID    func() string
}

type nopRecorder struct{}

func (nopRecorder) ObserveInvocation(string, int) {}

func New(s Service, lg *zap.SugaredLogger, recorder Recorder) (*Dispatcher, error) {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	d := &Dispatcher{
		service:  s,
		lg:       lg,
		recorder: recorder,
		tools:    make(map[string]*tool),
		newID:    uuid.NewString,
	}

	if err := d.registerTools(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Dispatcher) register(name string, params []param, handle handlerFunc) error {
	schema, err := generateJSONSchema(params)
	if err != nil {
		return fmt.Errorf("schema for tool %s: %w", name, err)
	}

	d.tools[name] = &tool{
		params: params,
		schema: schema,
		handle: handle,
	}

	return nil
}

// Tools returns the names of the registered tools, sorted.
func (d *Dispatcher) Tools() []string {
	names := make([]string, 0, len(d.tools))
	for name := range d.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs one tool invocation. It never returns an error: failures are
// reported through the status code and an error body.
func (d *Dispatcher) Invoke(ctx context.Context, req model.ToolRequest) (resp model.ToolResponse) {
	resp.InvocationID = d.newID()

	defer func() {
		if rec := recover(); rec != nil {
			d.lg.Errorf("tool %s panicked: %v", req.ToolName, rec)
			resp.StatusCode = http.StatusInternalServerError
			resp.Body = internalError(fmt.Errorf("%v", rec))
		}
		d.recorder.ObserveInvocation(metricToolName(d.tools, req.ToolName), resp.StatusCode)
	}()

	t, ok := d.tools[req.ToolName]
	if !ok {
		resp.StatusCode = http.StatusBadRequest
		resp.Body = model.ToolError{
			Error:     fmt.Sprintf(model.MsgUnsupportedTool, req.ToolName),
			ErrorCode: model.CodeUnsupportedTool,
		}
		return resp
	}

	params := withoutEmpty(req.Parameters)

	args, missing := extract(t.params, params)
	if len(missing) > 0 {
		resp.StatusCode = http.StatusBadRequest
		resp.Body = model.ToolError{
			Error:     fmt.Sprintf(model.MsgMissingParameters, strings.Join(missing, ", ")),
			ErrorCode: model.CodeMissingParameters,
		}
		return resp
	}

	if err := validateParameters(t.schema, params); err != nil {
		resp.StatusCode = http.StatusBadRequest
		resp.Body = model.ToolError{
			Error:     model.MsgInvalidParameters,
			ErrorCode: model.CodeMissingParameters,
			Details:   err.Error(),
		}
		return resp
	}

	body, err := t.handle(ctx, args)
	if err != nil {
		d.lg.Errorf("tool %s failed: %v", req.ToolName, err)
		resp.StatusCode = http.StatusInternalServerError
		resp.Body = internalError(err)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Body = body
	return resp
}

func internalError(err error) model.ToolError {
	return model.ToolError{
		Error:     model.MsgInternalServerError,
		ErrorCode: model.CodeInternalServerError,
		Details:   err.Error(),
	}
}

func withoutEmpty(values map[string]any) map[string]any {
	params := make(map[string]any, len(values))
	for k, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		params[k] = v
	}
	return params
}

// metricToolName keeps label cardinality bounded for unknown tool names.
func metricToolName(tools map[string]*tool, name string) string {
	if _, ok := tools[name]; ok {
		return name
	}
	return "unsupported"
}
