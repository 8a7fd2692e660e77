package gateway

import (
	"context"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/internal/service"
)

const (
	ToolCheckReturnEligibility = "check_return_eligibility"
	ToolProcessReturn          = "process_return"
	ToolProcessExchange        = "process_exchange"
	ToolCheckSizeAvailability  = "check_size_availability"
	ToolGetSizeAlternatives    = "get_size_alternatives"
	ToolCheckReturnPolicy      = "check_return_policy"
)

var (
	orderNumberParam = param{name: "order_number", aliases: []string{"order_id"}, required: true}
	itemNameParam    = param{name: "item_name", aliases: []string{"item_id"}, required: true}
	itemIDParam      = param{name: "item_id", aliases: []string{"item_name"}, required: true}
)

type SizeAlternativesResult struct {
	ItemID       string                  `json:"item_id"`
	DesiredSize  string                  `json:"desired_size"`
	Alternatives []model.AlternativeSize `json:"alternatives"`
}

func (d *Dispatcher) registerTools() error {
	tools := []struct {
		name   string
		params []param
		handle handlerFunc
	}{
		{
			name: ToolCheckReturnEligibility,
			params: []param{
				orderNumberParam,
				{name: "customer_id", required: true},
			},
			handle: d.checkReturnEligibility,
		},
		{
			name: ToolProcessReturn,
			params: []param{
				orderNumberParam,
				itemNameParam,
				{name: "reason", required: true},
				{name: "customer_id"},
				{name: "return_type", enum: []string{service.ReturnTypeRefund, service.ReturnTypeExchange}},
			},
			handle: d.processReturn,
		},
		{
			name: ToolProcessExchange,
			params: []param{
				orderNumberParam,
				itemNameParam,
				{name: "current_option", required: true},
				{name: "desired_option", required: true},
			},
			handle: d.processExchange,
		},
		{
			name: ToolCheckSizeAvailability,
			params: []param{
				itemIDParam,
				{name: "size", required: true},
			},
			handle: d.checkSizeAvailability,
		},
		{
			name: ToolGetSizeAlternatives,
			params: []param{
				itemIDParam,
				{name: "desired_size", aliases: []string{"size"}, required: true},
			},
			handle: d.getSizeAlternatives,
		},
		{
			name: ToolCheckReturnPolicy,
			params: []param{
				{name: "category"},
			},
			handle: d.checkReturnPolicy,
		},
	}

	for _, t := range tools {
		if err := d.register(t.name, t.params, t.handle); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) checkReturnEligibility(ctx context.Context, args arguments) (any, error) {
	return d.service.CheckEligibility(ctx, args.get("order_number"), args.get("customer_id"))
}

func (d *Dispatcher) processReturn(_ context.Context, args arguments) (any, error) {
	return d.service.ProcessReturn(model.ReturnRequestDTO{
		OrderNumber: args.get("order_number"),
		ItemName:    args.get("item_name"),
		Reason:      args.get("reason"),
		CustomerID:  args.get("customer_id"),
		ReturnType:  args.get("return_type"),
	}), nil
}

func (d *Dispatcher) processExchange(ctx context.Context, args arguments) (any, error) {
	return d.service.ProcessExchange(ctx, model.ExchangeRequestDTO{
		OrderNumber:   args.get("order_number"),
		ItemName:      args.get("item_name"),
		CurrentOption: args.get("current_option"),
		DesiredOption: args.get("desired_option"),
	})
}

func (d *Dispatcher) checkSizeAvailability(ctx context.Context, args arguments) (any, error) {
	itemID, size := args.get("item_id"), args.get("size")

	available, err := d.service.CheckSizeAvailability(ctx, itemID, size)
	if err != nil {
		return nil, err
	}

	return model.SizeAvailability{ItemID: itemID, Size: size, Available: available}, nil
}

func (d *Dispatcher) getSizeAlternatives(ctx context.Context, args arguments) (any, error) {
	itemID, size := args.get("item_id"), args.get("desired_size")

	alternatives, err := d.service.GetSizeAlternatives(ctx, itemID, size)
	if err != nil {
		return nil, err
	}

	return SizeAlternativesResult{ItemID: itemID, DesiredSize: size, Alternatives: alternatives}, nil
}

func (d *Dispatcher) checkReturnPolicy(_ context.Context, args arguments) (any, error) {
	return d.service.GetReturnPolicy(args.get("category")), nil
}
