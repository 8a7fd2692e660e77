package memory

import (
	"time"

	"github.com/ibeloyar/returndesk/internal/model"
)

func sealed(v bool) *bool {
	return &v
}

func SeedOrders() []model.Order {
	return []model.Order{
		{
			Number:        "KS-2024-001234",
			CustomerID:    "customer_ecommerce_001",
			OrderDate:     date(2024, time.January, 10),
			DeliveryDate:  date(2024, time.January, 12),
			PaymentStatus: model.PaymentStatusCompleted,
			VIPTier:       model.VIPTierGold,
			Items: []model.LineItem{
				{Name: "플라워 패턴 원피스", Category: model.CategoryFashion, Price: 59000},
			},
			TotalAmount: 59000,
		},
		{
			Number:        "KS-2024-001235",
			CustomerID:    "customer_ecommerce_002",
			OrderDate:     date(2024, time.January, 5),
			DeliveryDate:  date(2024, time.January, 7),
			PaymentStatus: model.PaymentStatusCompleted,
			VIPTier:       model.VIPTierSilver,
			Items: []model.LineItem{
				{Name: "쿠션 파운데이션", Category: model.CategoryBeauty, Price: 32000, SealIntact: sealed(true)},
			},
			TotalAmount: 32000,
		},
		{
			Number:        "KS-2024-001236",
			CustomerID:    "customer_ecommerce_001",
			OrderDate:     date(2023, time.December, 15),
			DeliveryDate:  date(2023, time.December, 17),
			PaymentStatus: model.PaymentStatusCompleted,
			VIPTier:       model.VIPTierGold,
			Items: []model.LineItem{
				{Name: "니트 가디건", Category: model.CategoryFashion, Price: 45000},
			},
			TotalAmount: 45000,
		},
	}
}

func SeedInventory() map[string]map[string]int {
	return map[string]map[string]int{
		"KTOP001":   {"XS": 5, "S": 12, "M": 8, "L": 3, "XL": 0},
		"KJEAN002":  {"26": 2, "27": 5, "28": 10, "29": 7, "30": 4},
		"KDRESS003": {"XS": 3, "S": 8, "M": 15, "L": 6, "XL": 2},
	}
}
