package model

import "time"

type ReturnStatus string

const (
	ReturnStatusApproved      ReturnStatus = "approved"
	ReturnStatusPendingReview ReturnStatus = "pending_review"
)

type ReturnRequestDTO struct {
	OrderNumber string `json:"order_number"`
	ItemName    string `json:"item_name"`
	Reason      string `json:"reason"`
	CustomerID  string `json:"customer_id,omitempty"`
	ReturnType  string `json:"return_type,omitempty"`

	// order_id and item_id are accepted as aliases, see ApplyAliases
	OrderID string `json:"order_id,omitempty"`
	ItemID  string `json:"item_id,omitempty"`
}

// ApplyAliases moves order_id and item_id into the canonical fields when
// those are empty and clears the aliases.
func (d *ReturnRequestDTO) ApplyAliases() {
	d.OrderNumber, d.ItemName = resolveAliases(d.OrderNumber, d.OrderID, d.ItemName, d.ItemID)
	d.OrderID, d.ItemID = "", ""
}

type ReviewTimeline struct {
	ReviewWindow   string   `json:"review_window"`
	ProcessingTime string   `json:"processing_time"`
	Steps          []string `json:"steps"`
}

type ReturnReceipt struct {
	ReceiptID    string       `json:"receipt_id"`
	OrderNumber  string       `json:"order_number"`
	ItemName     string       `json:"item_name"`
	Reason       string       `json:"reason"`
	ReturnType   string       `json:"return_type"`
	Category     Category     `json:"category"`
	RequestedAt  time.Time    `json:"requested_at"`
	AutoApproved bool         `json:"auto_approved"`
	Status       ReturnStatus `json:"status"`
	ShippingFee  string       `json:"shipping_fee"`
	FeeAmount    int64        `json:"shipping_fee_amount"`
	RefundTiming string       `json:"refund_timing"`
	RefundMethod string       `json:"refund_method"`

	NextSteps  []string        `json:"next_steps,omitempty"`
	SizeTips   []string        `json:"size_tips,omitempty"`
	Review     *ReviewTimeline `json:"review,omitempty"`
	Conditions []string        `json:"conditions"`
	Contacts   []string        `json:"contacts"`
}

type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

type ExchangeRequestDTO struct {
	OrderNumber   string `json:"order_number"`
	ItemName      string `json:"item_name"`
	CurrentOption string `json:"current_option"`
	DesiredOption string `json:"desired_option"`

	OrderID string `json:"order_id,omitempty"`
	ItemID  string `json:"item_id,omitempty"`
}

func (d *ExchangeRequestDTO) ApplyAliases() {
	d.OrderNumber, d.ItemName = resolveAliases(d.OrderNumber, d.OrderID, d.ItemName, d.ItemID)
	d.OrderID, d.ItemID = "", ""
}

func resolveAliases(orderNumber, orderID, itemName, itemID string) (string, string) {
	if orderNumber == "" {
		orderNumber = orderID
	}
	if itemName == "" {
		itemName = itemID
	}
	return orderNumber, itemName
}

type Coupon struct {
	DiscountPercent int    `json:"discount_percent"`
	Description     string `json:"description"`
}

type ExchangeReceipt struct {
	ReceiptID     string      `json:"receipt_id"`
	OrderNumber   string      `json:"order_number"`
	ItemName      string      `json:"item_name"`
	CurrentOption string      `json:"current_option"`
	DesiredOption string      `json:"desired_option"`
	RequestedAt   time.Time   `json:"requested_at"`
	StockStatus   StockStatus `json:"stock_status"`
	StockMessage  string      `json:"stock_message"`

	Plan         []string          `json:"plan"`
	Benefits     []string          `json:"benefits,omitempty"`
	Options      []string          `json:"options,omitempty"`
	Coupon       *Coupon           `json:"coupon,omitempty"`
	Alternatives []AlternativeSize `json:"alternatives,omitempty"`
	Conditions   []string          `json:"conditions"`
	Contacts     []string          `json:"contacts"`
}

type AlternativeSize struct {
	Size              string `json:"size"`
	Available         bool   `json:"available"`
	FitRecommendation string `json:"fit_recommendation"`
}

type SizeAvailability struct {
	ItemID    string `json:"item_id"`
	Size      string `json:"size"`
	Available bool   `json:"available"`
}

// Option is a parsed "color/size" product option.
type Option struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}
