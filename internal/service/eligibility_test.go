package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockService "github.com/ibeloyar/returndesk/internal/service/mocks"
)

var kst = time.FixedZone("KST", 9*60*60)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, kst)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(repo *memory.Repository, now time.Time) *Service {
	return New(repo, repo, NewInventoryStockProvider(repo, DefaultLowStockThreshold), DefaultPolicies(),
		WithClock(fixedClock(now)),
		WithRandomizer(NewLockedRand(1)),
	)
}

func singleItemOrder(tier model.VIPTier, delivered time.Time, item model.LineItem) model.Order {
	return model.Order{
		Number:        "KS-TEST-0001",
		CustomerID:    "customer_test",
		OrderDate:     delivered.AddDate(0, 0, -2),
		DeliveryDate:  delivered,
		PaymentStatus: model.PaymentStatusCompleted,
		VIPTier:       tier,
		Items:         []model.LineItem{item},
		TotalAmount:   item.Price,
	}
}

func TestService_CheckEligibility_OrderNotFound(t *testing.T) {
	svc := newTestService(memory.NewSeeded(), day(2024, time.January, 15))

	for _, number := range []string{"", "KS-0000-000000", "unknown"} {
		decision, err := svc.CheckEligibility(context.Background(), number, "customer_ecommerce_001")

		require.NoError(t, err)
		assert.False(t, decision.Eligible)
		assert.Equal(t, model.CodeOrderNotFound, decision.ErrorCode)
		assert.Equal(t, model.MsgOrderNotFound, decision.Reason)
	}
}

func TestService_CheckEligibility_CustomerMismatch(t *testing.T) {
	svc := newTestService(memory.NewSeeded(), day(2024, time.January, 15))

	for _, customerID := range []string{"customer_ecommerce_002", "", "CUSTOMER_ECOMMERCE_001"} {
		decision, err := svc.CheckEligibility(context.Background(), "KS-2024-001234", customerID)

		require.NoError(t, err)
		assert.False(t, decision.Eligible)
		assert.Equal(t, model.CodeCustomerMismatch, decision.ErrorCode)
	}
}

func TestService_CheckEligibility_SeededGoldOrderWithinWindow(t *testing.T) {
	svc := newTestService(memory.NewSeeded(), day(2024, time.January, 19))

	decision, err := svc.CheckEligibility(context.Background(), "KS-2024-001234", "customer_ecommerce_001")

	require.NoError(t, err)
	assert.True(t, decision.Eligible)
	assert.Empty(t, decision.ErrorCode)
	assert.Equal(t, "플라워 패턴 원피스", decision.ItemName)
	assert.Equal(t, model.CategoryFashion, decision.Category)
	assert.Equal(t, int64(59000), decision.EstimatedRefund)
	assert.Equal(t, "1-2 영업일", decision.ProcessingTime)
	assert.Equal(t, model.VIPTierGold, decision.VIPTier)
	assert.False(t, decision.VIPExtension)
	assert.Equal(t, "무료", decision.ShippingFee)
	assert.Equal(t, 7, decision.ReturnPeriod)
	require.NotNil(t, decision.DaysSinceDelivery)
	assert.Equal(t, 7, *decision.DaysSinceDelivery)
	assert.Len(t, decision.Conditions, 3)
}

func TestService_CheckEligibility_SeededOldOrderExpired(t *testing.T) {
	svc := newTestService(memory.NewSeeded(), day(2024, time.January, 20))

	decision, err := svc.CheckEligibility(context.Background(), "KS-2024-001236", "customer_ecommerce_001")

	require.NoError(t, err)
	assert.False(t, decision.Eligible)
	assert.Equal(t, model.CodeReturnPeriodExpired, decision.ErrorCode)
	assert.Equal(t, "반품 기간(7일)이 지났습니다. (경과: 34일)", decision.Reason)
	require.NotNil(t, decision.DaysSinceDelivery)
	assert.Equal(t, 34, *decision.DaysSinceDelivery)
	assert.Equal(t, 7, decision.ReturnPeriod)
}

func TestService_CheckEligibility_SilverBeautyStandardProcessing(t *testing.T) {
	svc := newTestService(memory.NewSeeded(), day(2024, time.January, 10))

	decision, err := svc.CheckEligibility(context.Background(), "KS-2024-001235", "customer_ecommerce_002")

	require.NoError(t, err)
	assert.True(t, decision.Eligible)
	assert.Equal(t, model.CategoryBeauty, decision.Category)
	assert.Equal(t, "3-5 영업일", decision.ProcessingTime)
	assert.Equal(t, int64(32000), decision.EstimatedRefund)
	assert.Contains(t, decision.Conditions, "미개봉 상태일 것")
}

func TestService_CheckEligibility_ReturnWindow(t *testing.T) {
	delivered := day(2024, time.March, 1)
	item := model.LineItem{Name: "체크 셔츠", Category: model.CategoryFashion, Price: 39000}

	tests := []struct {
		name          string
		tier          model.VIPTier
		elapsedDays   int
		wantEligible  bool
		wantExtension bool
		wantFee       string
	}{
		{name: "none tier on last day", tier: model.VIPTierNone, elapsedDays: 7, wantEligible: true, wantFee: "무료"},
		{name: "none tier one day late", tier: model.VIPTierNone, elapsedDays: 8},
		{name: "silver tier one day late", tier: model.VIPTierSilver, elapsedDays: 8},
		{name: "gold tier one day late", tier: model.VIPTierGold, elapsedDays: 8, wantEligible: true, wantExtension: true, wantFee: "3,000원"},
		{name: "gold tier on last grace day", tier: model.VIPTierGold, elapsedDays: 9, wantEligible: true, wantExtension: true, wantFee: "3,000원"},
		{name: "diamond tier on last grace day", tier: model.VIPTierDiamond, elapsedDays: 9, wantEligible: true, wantExtension: true, wantFee: "3,000원"},
		{name: "gold tier after grace", tier: model.VIPTierGold, elapsedDays: 10},
		{name: "diamond tier after grace", tier: model.VIPTierDiamond, elapsedDays: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := singleItemOrder(tt.tier, delivered, item)
			svc := newTestService(memory.New([]model.Order{order}, nil), delivered.AddDate(0, 0, tt.elapsedDays))

			decision, err := svc.CheckEligibility(context.Background(), order.Number, order.CustomerID)
			require.NoError(t, err)

			require.NotNil(t, decision.DaysSinceDelivery)
			assert.Equal(t, tt.elapsedDays, *decision.DaysSinceDelivery)
			assert.Equal(t, tt.wantEligible, decision.Eligible)

			if !tt.wantEligible {
				assert.Equal(t, model.CodeReturnPeriodExpired, decision.ErrorCode)
				assert.Equal(t, 7, decision.ReturnPeriod)
				return
			}

			assert.Equal(t, tt.wantExtension, decision.VIPExtension)
			assert.Equal(t, tt.wantFee, decision.ShippingFee)
			assert.Equal(t, item.Price, decision.EstimatedRefund)
		})
	}
}

func TestService_CheckEligibility_ItemCondition(t *testing.T) {
	delivered := day(2024, time.March, 1)

	tests := []struct {
		name     string
		item     model.LineItem
		wantCode model.ErrorCode
	}{
		{
			name:     "fashion tags removed",
			item:     model.LineItem{Name: "와이드 데님 팬츠", Category: model.CategoryFashion, Price: 49000, TagsRemoved: true},
			wantCode: model.CodeTagsRemoved,
		},
		{
			name:     "fashion tags removed and worn",
			item:     model.LineItem{Name: "와이드 데님 팬츠", Category: model.CategoryFashion, Price: 49000, TagsRemoved: true, Worn: true},
			wantCode: model.CodeTagsRemoved,
		},
		{
			name:     "fashion worn",
			item:     model.LineItem{Name: "오버사이즈 블레이저", Category: model.CategoryFashion, Price: 89000, Worn: true},
			wantCode: model.CodeWornCondition,
		},
		{
			name:     "beauty used",
			item:     model.LineItem{Name: "매트 립스틱", Category: model.CategoryBeauty, Price: 18000, Used: true, SealIntact: boolPtr(true)},
			wantCode: model.CodeUsedProduct,
		},
		{
			name:     "beauty seal damaged",
			item:     model.LineItem{Name: "매트 립스틱", Category: model.CategoryBeauty, Price: 18000, SealIntact: boolPtr(false)},
			wantCode: model.CodeSealDamaged,
		},
		{
			name:     "category inferred from name",
			item:     model.LineItem{Name: "수분 크림", Price: 27000, Used: true},
			wantCode: model.CodeUsedProduct,
		},
		{
			name:     "uncategorized item checked like fashion",
			item:     model.LineItem{Name: "머리끈 세트", Category: model.CategoryOther, Price: 5000, Worn: true},
			wantCode: model.CodeWornCondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, elapsed := range []int{0, 3, 7} {
				order := singleItemOrder(model.VIPTierNone, delivered, tt.item)
				svc := newTestService(memory.New([]model.Order{order}, nil), delivered.AddDate(0, 0, elapsed))

				decision, err := svc.CheckEligibility(context.Background(), order.Number, order.CustomerID)

				require.NoError(t, err)
				assert.False(t, decision.Eligible)
				assert.Equal(t, tt.wantCode, decision.ErrorCode)
				assert.Zero(t, decision.EstimatedRefund)
			}
		})
	}
}

func TestService_CheckEligibility_BeautyLateReturnIsFree(t *testing.T) {
	delivered := day(2024, time.March, 1)
	order := singleItemOrder(model.VIPTierDiamond, delivered, model.LineItem{
		Name: "쿠션 파운데이션", Category: model.CategoryBeauty, Price: 32000, SealIntact: boolPtr(true),
	})
	svc := newTestService(memory.New([]model.Order{order}, nil), delivered.AddDate(0, 0, 9))

	decision, err := svc.CheckEligibility(context.Background(), order.Number, order.CustomerID)

	require.NoError(t, err)
	assert.True(t, decision.Eligible)
	assert.True(t, decision.VIPExtension)
	assert.Equal(t, "무료", decision.ShippingFee)
}

func TestService_CheckEligibility_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mockService.NewMockOrderRepository(ctrl)
	svc := New(orders, nil, nil, DefaultPolicies())

	orders.EXPECT().
		GetOrder(gomock.Any(), "KS-2024-001234").
		Return(nil, errors.New("connection refused")).
		Times(1)

	decision, err := svc.CheckEligibility(context.Background(), "KS-2024-001234", "customer_ecommerce_001")

	assert.Nil(t, decision)
	assert.ErrorContains(t, err, "connection refused")
}

func TestService_CheckEligibility_OrderWithoutItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mockService.NewMockOrderRepository(ctrl)
	svc := New(orders, nil, nil, DefaultPolicies())

	orders.EXPECT().
		GetOrder(gomock.Any(), "KS-EMPTY").
		Return(&model.Order{Number: "KS-EMPTY", CustomerID: "c1"}, nil)

	decision, err := svc.CheckEligibility(context.Background(), "KS-EMPTY", "c1")

	assert.Nil(t, decision)
	assert.ErrorIs(t, err, errOrderWithoutItems)
}

func TestService_CheckEligibility_RecordsOutcome(t *testing.T) {
	rec := &recorderStub{}
	repo := memory.NewSeeded()
	svc := New(repo, repo, nil, DefaultPolicies(), WithClock(fixedClock(day(2024, time.January, 13))), WithRecorder(rec))

	_, err := svc.CheckEligibility(context.Background(), "KS-2024-001234", "customer_ecommerce_001")
	require.NoError(t, err)
	_, err = svc.CheckEligibility(context.Background(), "missing", "customer_ecommerce_001")
	require.NoError(t, err)

	assert.Equal(t, []model.ErrorCode{"", model.CodeOrderNotFound}, rec.eligibility)
}

func TestDaysSince(t *testing.T) {
	delivered := day(2024, time.January, 12)

	assert.Equal(t, 0, daysSince(delivered, delivered))
	assert.Equal(t, 0, daysSince(delivered, delivered.Add(23*time.Hour)))
	assert.Equal(t, 1, daysSince(delivered, delivered.Add(24*time.Hour)))
	assert.Equal(t, 8, daysSince(delivered, delivered.AddDate(0, 0, 8).Add(15*time.Hour)))
	assert.Equal(t, 0, daysSince(delivered, delivered.AddDate(0, 0, -3)))
}

type recorderStub struct {
	eligibility []model.ErrorCode
	returns     []bool
	exchanges   []model.StockStatus
}

func (r *recorderStub) ObserveEligibility(_ bool, code model.ErrorCode) {
	r.eligibility = append(r.eligibility, code)
}

func (r *recorderStub) ObserveReturn(_ model.Category, autoApproved bool) {
	r.returns = append(r.returns, autoApproved)
}

func (r *recorderStub) ObserveExchange(status model.StockStatus) {
	r.exchanges = append(r.exchanges, status)
}

func boolPtr(v bool) *bool {
	return &v
}

func TestService_CheckEligibility_DecisionsDoNotShareConditions(t *testing.T) {
	svc := newTestService(memory.NewSeeded(), day(2024, time.January, 19))

	first, err := svc.CheckEligibility(context.Background(), "KS-2024-001234", "customer_ecommerce_001")
	require.NoError(t, err)
	require.NotEmpty(t, first.Conditions)
	first.Conditions[0] = "changed"

	second, err := svc.CheckEligibility(context.Background(), "KS-2024-001234", "customer_ecommerce_001")
	require.NoError(t, err)
	assert.Equal(t, "택(tag)이 제거되지 않았을 것", second.Conditions[0])
}
