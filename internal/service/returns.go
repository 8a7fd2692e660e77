package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/money"
)

const (
	ReturnTypeRefund   = "refund"
	ReturnTypeExchange = "exchange"

	reviewWindow = "4시간 이내"
)

var approvedNextSteps = []string{
	"반품 접수 확인 문자가 발송됩니다",
	"상품을 원래 포장재에 넣어 준비해 주세요",
	"택배기사님이 내일 오전 방문 예정입니다",
	"회수 완료 후 1-2일 내 환불 처리",
}

var sizeTips = []string{
	"상품 상세페이지의 '실측 사이즈'를 확인해 주세요",
	"평소 착용하시는 옷의 실측을 비교해 보세요",
	"브랜드별로 사이즈가 다를 수 있습니다",
	"궁금하시면 언제든 상담 문의해 주세요!",
}

var reviewSteps = []string{
	"담당자가 반품 사유를 검토합니다 (4시간 이내)",
	"승인 시 회수 일정 안내 문자 발송",
	"상품 회수 및 검수 진행",
	"최종 승인 후 환불 처리",
}

var contacts = []string{
	"고객센터: 1588-0000 (평일 9-18시)",
	"카카오톡: @kstyle (24시간 상담)",
	"접수번호로 진행상황 실시간 조회 가능",
}

// ProcessReturn registers a return request and decides whether it can be
// approved without manual review.
func (s *Service) ProcessReturn(input model.ReturnRequestDTO) *model.ReturnReceipt {
	now := s.now()
	category := returnCategory(Classify(input.ItemName))
	policy := s.policies.ReturnPolicy(category)

	autoApproved := containsAny(input.Reason, policy.AutoApprove) &&
		!containsAny(input.Reason, policy.NeverAutoApprove)

	fee, feeText := shippingFee(policy, input.Reason)

	returnType := input.ReturnType
	if returnType == "" {
		returnType = ReturnTypeRefund
	}

	receipt := &model.ReturnReceipt{
		ReceiptID:    s.receiptID("RT"),
		OrderNumber:  input.OrderNumber,
		ItemName:     input.ItemName,
		Reason:       input.Reason,
		ReturnType:   returnType,
		Category:     category,
		RequestedAt:  now,
		AutoApproved: autoApproved,
		ShippingFee:  feeText,
		FeeAmount:    fee,
		RefundMethod: policy.RefundMethod,
		Conditions:   slices.Clone(policy.Conditions),
		Contacts:     slices.Clone(contacts),
	}

	if autoApproved {
		receipt.Status = model.ReturnStatusApproved
		receipt.RefundTiming = "회수 후 " + model.MsgPriorityProcessing
		receipt.NextSteps = slices.Clone(approvedNextSteps)
		if strings.Contains(input.Reason, "사이즈") {
			receipt.SizeTips = slices.Clone(sizeTips)
		}
	} else {
		receipt.Status = model.ReturnStatusPendingReview
		receipt.RefundTiming = "최대 " + model.MsgStandardProcessing
		receipt.Review = &model.ReviewTimeline{
			ReviewWindow:   reviewWindow,
			ProcessingTime: model.MsgStandardProcessing,
			Steps:          slices.Clone(reviewSteps),
		}
	}

	s.recorder.ObserveReturn(category, autoApproved)

	return receipt
}

// GetReturnPolicy returns the return policy for a category name.
func (s *Service) GetReturnPolicy(category string) model.ReturnPolicy {
	return s.policies.ReturnPolicy(ParseCategory(category))
}

// shippingFee applies the first fee rule whose keyword occurs in the reason.
func shippingFee(policy model.ReturnPolicy, reason string) (int64, string) {
	for _, rule := range policy.FeeRules {
		if !strings.Contains(reason, rule.Keyword) {
			continue
		}
		if rule.Fee == 0 {
			return 0, model.MsgFreeShipping + " (판매자 부담)"
		}
		return rule.Fee, money.FormatWon(rule.Fee) + " (고객 부담)"
	}

	return 0, model.MsgFreeShipping
}

// receiptID builds ids like RT-20240115-4821.
func (s *Service) receiptID(prefix string) string {
	return fmt.Sprintf("%s-%s-%d", prefix, s.now().Format("20060102"), 1000+s.rnd.Intn(9000))
}
