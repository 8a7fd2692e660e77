package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/ibeloyar/returndesk/internal/model"
)

var inStockPlan = []string{
	"오늘 오후 5시까지 기존 상품 회수",
	"동시에 새 상품 배송 출발",
	"내일 오전 중 새 상품 도착 예정",
	"회수와 배송이 동시에 진행됩니다!",
}

var inStockBenefits = []string{
	"교환 배송비: 완전 무료",
	"당일 처리: 재고 있음",
	"동시 교환: 기다림 없이 바로!",
}

var outOfStockOptions = []string{
	"전액 환불 (1-2일 내 처리)",
	"유사 상품 추천 (같은 가격대)",
	"재입고 알림 신청 (우선 주문권 제공)",
	"다른 색상/사이즈 확인",
}

// ProcessExchange registers an exchange request and plans it around the stock
// of the desired option.
func (s *Service) ProcessExchange(ctx context.Context, input model.ExchangeRequestDTO) (*model.ExchangeReceipt, error) {
	desired := ParseOption(input.DesiredOption)

	status, err := s.stock.StockStatus(ctx, input.ItemName, desired)
	if err != nil {
		return nil, fmt.Errorf("stock status for %s: %w", input.ItemName, err)
	}

	policy := s.policies.Exchange
	receipt := &model.ExchangeReceipt{
		ReceiptID:     s.receiptID("EX"),
		OrderNumber:   input.OrderNumber,
		ItemName:      input.ItemName,
		CurrentOption: input.CurrentOption,
		DesiredOption: input.DesiredOption,
		RequestedAt:   s.now(),
		StockStatus:   status,
		Conditions:    slices.Clone(policy.Conditions),
		Contacts:      slices.Clone(contacts),
	}

	switch status {
	case model.StockInStock:
		receipt.StockMessage = "재고 있음"
		receipt.Plan = slices.Clone(inStockPlan)
		receipt.Benefits = slices.Clone(inStockBenefits)
	case model.StockLowStock:
		receipt.StockMessage = fmt.Sprintf("재고 부족 (%s)", policy.RestockDelay)
		receipt.Plan = []string{
			"오늘 회수 진행",
			fmt.Sprintf("새 상품 입고 후 즉시 발송 (%s)", policy.RestockDelay),
			"회수 완료 시 임시 쿠폰 발급",
		}
		receipt.Coupon = &model.Coupon{
			DiscountPercent: policy.LowStockCoupon,
			Description:     fmt.Sprintf("%d%% 할인 쿠폰 발급 (다음 구매 시)", policy.LowStockCoupon),
		}
		receipt.Benefits = []string{"무료 배송 + 포장 업그레이드"}
	default:
		receipt.StockStatus = model.StockOutOfStock
		receipt.StockMessage = "일시 품절"
		receipt.Plan = []string{"교환 상품 일시 품절로 대안을 안내드립니다"}
		receipt.Options = slices.Clone(outOfStockOptions)
		receipt.Coupon = &model.Coupon{
			DiscountPercent: policy.OutOfStockCoupon,
			Description:     fmt.Sprintf("%d%% 할인 쿠폰 발급", policy.OutOfStockCoupon),
		}
		receipt.Benefits = []string{"다음 주문 시 무료배송 + 무료 포장"}

		if desired.Size != "" {
			alternatives, err := s.GetSizeAlternatives(ctx, input.ItemName, desired.Size)
			if err != nil {
				return nil, err
			}
			receipt.Alternatives = alternatives
		}
	}

	s.recorder.ObserveExchange(receipt.StockStatus)

	return receipt, nil
}
