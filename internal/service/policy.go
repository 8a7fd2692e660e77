package service

import (
	"slices"
	"strings"

	"github.com/ibeloyar/returndesk/internal/model"
)

const (
	DefaultWindowDays        = 7
	DefaultVIPGraceDays      = 2
	DefaultLateReturnFee     = 3000
	DefaultChangeOfMindFee   = 3000
	DefaultLowStockThreshold = 3
)

// Policies is the static rule set the resolver works with.
type Policies struct {
	VIPGraceDays int
	Returns      map[model.Category]model.ReturnPolicy
	Exchange     model.ExchangePolicy
}

func DefaultPolicies() Policies {
	return NewPolicies(DefaultWindowDays, DefaultVIPGraceDays, DefaultLateReturnFee, DefaultChangeOfMindFee, DefaultLowStockThreshold)
}

// NewPolicies builds the rule set. lateReturnFee is charged for fashion returns
// inside the VIP extension, changeOfMindFee for 변심 returns of any category.
func NewPolicies(windowDays, vipGraceDays int, lateReturnFee, changeOfMindFee int64, lowStockThreshold int) Policies {
	return Policies{
		VIPGraceDays: vipGraceDays,
		Returns: map[model.Category]model.ReturnPolicy{
			model.CategoryFashion: {
				Category:   model.CategoryFashion,
				WindowDays: windowDays,
				Conditions: []string{
					"택(tag) 제거하지 않았을 것",
					"착용 흔적이나 세탁 흔적이 없을 것",
					"원래 포장 상태 유지",
					"향수나 화장품 냄새가 배지 않았을 것",
				},
				EligibleConditions: []string{
					"택(tag)이 제거되지 않았을 것",
					"착용 흔적이나 세탁 흔적이 없을 것",
					"원래 포장 상태를 유지할 것",
				},
				AutoApprove:      []string{"사이즈", "색상", "품질", "오배송"},
				NeverAutoApprove: []string{"변심"},
				FeeRules: []model.FeeRule{
					{Keyword: "변심", Fee: changeOfMindFee},
					{Keyword: "사이즈", Fee: 0},
					{Keyword: "색상", Fee: 0},
					{Keyword: "품질", Fee: 0},
				},
				LateReturnFee: lateReturnFee,
				RefundMethod:  "원 결제수단으로 자동 환불",
			},
			model.CategoryBeauty: {
				Category:   model.CategoryBeauty,
				WindowDays: windowDays,
				Conditions: []string{
					"미개봉 상태일 것",
					"봉인 스티커가 훼손되지 않았을 것",
					"사용하지 않았을 것",
				},
				EligibleConditions: []string{
					"미개봉 상태일 것",
					"봉인 스티커가 훼손되지 않았을 것",
					"사용하지 않았을 것",
				},
				AutoApprove:      []string{"사이즈", "알레르기", "색상", "품질", "오배송"},
				NeverAutoApprove: []string{"변심"},
				FeeRules: []model.FeeRule{
					{Keyword: "변심", Fee: changeOfMindFee},
					{Keyword: "알레르기", Fee: 0},
					{Keyword: "색상", Fee: 0},
					{Keyword: "품질", Fee: 0},
				},
				// beauty returns within the extension are still free
				LateReturnFee: 0,
				RefundMethod:  "원 결제수단으로 자동 환불",
			},
		},
		Exchange: model.ExchangePolicy{
			Conditions: []string{
				"택(tag) 제거하지 않았을 것",
				"착용이나 사용 흔적이 없을 것",
				"세탁하지 않았을 것",
				"원래 포장 상태 유지",
			},
			RestockDelay:      "2-3일 소요",
			LowStockCoupon:    10,
			OutOfStockCoupon:  15,
			LowStockThreshold: lowStockThreshold,
		},
	}
}

// ReturnPolicy returns a copy of the policy for a category; categories without
// their own policy are handled as fashion.
func (p Policies) ReturnPolicy(category model.Category) model.ReturnPolicy {
	policy, ok := p.Returns[category]
	if !ok {
		policy = p.Returns[model.CategoryFashion]
	}

	policy.Conditions = slices.Clone(policy.Conditions)
	policy.EligibleConditions = slices.Clone(policy.EligibleConditions)
	policy.AutoApprove = slices.Clone(policy.AutoApprove)
	policy.NeverAutoApprove = slices.Clone(policy.NeverAutoApprove)
	policy.FeeRules = slices.Clone(policy.FeeRules)

	return policy
}

// ParseCategory accepts english names and korean labels.
func ParseCategory(s string) model.Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beauty", "뷰티", "cosmetics":
		return model.CategoryBeauty
	case "fashion", "패션", "clothing", "accessories":
		return model.CategoryFashion
	default:
		return model.CategoryOther
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
