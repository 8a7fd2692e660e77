package model

type FeeRule struct {
	Keyword string `json:"keyword"`
	Fee     int64  `json:"fee"`
}

type ReturnPolicy struct {
	Category           Category  `json:"category"`
	WindowDays         int       `json:"return_window"`
	Conditions         []string  `json:"conditions"`
	AutoApprove        []string  `json:"auto_approve"`
	NeverAutoApprove   []string  `json:"never_auto_approve"`
	FeeRules           []FeeRule `json:"shipping_fee"`
	LateReturnFee      int64     `json:"late_return_fee"`
	RefundMethod       string    `json:"refund_method"`
	EligibleConditions []string  `json:"-"`
}

type ExchangePolicy struct {
	Conditions        []string `json:"conditions"`
	RestockDelay      string   `json:"restock_delay"`
	LowStockCoupon    int      `json:"low_stock_coupon"`
	OutOfStockCoupon  int      `json:"out_of_stock_coupon"`
	LowStockThreshold int      `json:"low_stock_threshold"`
}
