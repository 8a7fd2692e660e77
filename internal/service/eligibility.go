package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/money"
)

var errOrderWithoutItems = errors.New("order has no items")

// CheckEligibility decides whether the order can be returned or exchanged by
// the customer. Denials are reported through the decision; the error is only
// set when the order could not be evaluated.
func (s *Service) CheckEligibility(ctx context.Context, orderNumber, customerID string) (*model.EligibilityDecision, error) {
	decision, err := s.checkEligibility(ctx, orderNumber, customerID)
	if err != nil {
		return nil, err
	}

	s.recorder.ObserveEligibility(decision.Eligible, decision.ErrorCode)

	return decision, nil
}

func (s *Service) checkEligibility(ctx context.Context, orderNumber, customerID string) (*model.EligibilityDecision, error) {
	order, err := s.orders.GetOrder(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return model.Deny(model.CodeOrderNotFound, model.MsgOrderNotFound), nil
		}
		return nil, fmt.Errorf("get order %s: %w", orderNumber, err)
	}

	if order.CustomerID != customerID {
		return model.Deny(model.CodeCustomerMismatch, model.MsgCustomerMismatch), nil
	}

	if len(order.Items) == 0 {
		return nil, fmt.Errorf("order %s: %w", orderNumber, errOrderWithoutItems)
	}

	// only the first item is evaluated
	item := order.Items[0]
	category := item.Category
	if category == "" {
		category = Classify(item.Name)
	}
	category = returnCategory(category)
	policy := s.policies.ReturnPolicy(category)

	days := daysSince(order.DeliveryDate, s.now())
	window := policy.WindowDays

	vipExtension := false
	if days > window {
		if !order.VIPTier.HasPriority() || days > window+s.policies.VIPGraceDays {
			decision := model.Deny(model.CodeReturnPeriodExpired, fmt.Sprintf(model.MsgReturnPeriodExpired, window, days))
			decision.DaysSinceDelivery = &days
			decision.ReturnPeriod = window
			return decision, nil
		}
		vipExtension = true
	}

	if decision := checkItemCondition(category, item); decision != nil {
		return decision, nil
	}

	processing := model.MsgStandardProcessing
	if order.VIPTier.HasPriority() {
		processing = model.MsgPriorityProcessing
	}

	shippingFee := model.MsgFreeShipping
	if days > window && policy.LateReturnFee > 0 {
		shippingFee = money.FormatWon(policy.LateReturnFee)
	}

	return &model.EligibilityDecision{
		Eligible:          true,
		OrderNumber:       order.Number,
		CustomerID:        customerID,
		ItemName:          item.Name,
		Category:          category,
		DaysSinceDelivery: &days,
		ReturnPeriod:      window,
		VIPTier:           order.VIPTier,
		VIPExtension:      vipExtension,
		EstimatedRefund:   item.Price,
		ProcessingTime:    processing,
		Conditions:        slices.Clone(policy.EligibleConditions),
		ShippingFee:       shippingFee,
	}, nil
}

func checkItemCondition(category model.Category, item model.LineItem) *model.EligibilityDecision {
	switch category {
	case model.CategoryBeauty:
		if item.Used {
			return model.Deny(model.CodeUsedProduct, model.MsgUsedProduct)
		}
		if item.SealIntact != nil && !*item.SealIntact {
			return model.Deny(model.CodeSealDamaged, model.MsgSealDamaged)
		}
	default:
		if item.TagsRemoved {
			return model.Deny(model.CodeTagsRemoved, model.MsgTagsRemoved)
		}
		if item.Worn {
			return model.Deny(model.CodeWornCondition, model.MsgWornCondition)
		}
	}

	return nil
}

// daysSince counts whole days elapsed since delivery, never negative.
func daysSince(delivery, now time.Time) int {
	days := int(math.Floor(now.Sub(delivery).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
