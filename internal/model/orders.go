package model

import "time"

type Category string

const (
	CategoryFashion Category = "fashion"
	CategoryBeauty  Category = "beauty"
	CategoryOther   Category = "other"
)

var categoryLabels = map[Category]string{
	CategoryFashion: "패션",
	CategoryBeauty:  "뷰티",
	CategoryOther:   "기타",
}

// Label returns the customer facing name of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

type VIPTier string

const (
	VIPTierNone    VIPTier = "none"
	VIPTierSilver  VIPTier = "silver"
	VIPTierGold    VIPTier = "gold"
	VIPTierDiamond VIPTier = "diamond"
)

// HasPriority reports whether the tier gets the grace extension and fast processing.
func (t VIPTier) HasPriority() bool {
	return t == VIPTierGold || t == VIPTierDiamond
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type LineItem struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	TagsRemoved bool     `json:"tags_removed,omitempty"`
	Worn        bool     `json:"worn,omitempty"`
	Used        bool     `json:"used,omitempty"`
	// SealIntact is nil when the item has no seal.
	SealIntact *bool `json:"seal_intact,omitempty"`
}

type Order struct {
	Number        string        `json:"order_number"`
	CustomerID    string        `json:"customer_id"`
	OrderDate     time.Time     `json:"order_date"`
	DeliveryDate  time.Time     `json:"delivery_date"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	VIPTier       VIPTier       `json:"vip_level"`
	Items         []LineItem    `json:"items"`
	TotalAmount   int64         `json:"total_amount"`
}
