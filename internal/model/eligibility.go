package model

type ErrorCode string

const (
	CodeOrderNotFound       ErrorCode = "ORDER_NOT_FOUND"
	CodeCustomerMismatch    ErrorCode = "CUSTOMER_MISMATCH"
	CodeReturnPeriodExpired ErrorCode = "RETURN_PERIOD_EXPIRED"
	CodeTagsRemoved         ErrorCode = "TAGS_REMOVED"
	CodeWornCondition       ErrorCode = "WORN_CONDITION"
	CodeUsedProduct         ErrorCode = "USED_PRODUCT"
	CodeSealDamaged         ErrorCode = "SEAL_DAMAGED"

	CodeMissingParameters   ErrorCode = "MISSING_PARAMETERS"
	CodeUnsupportedTool     ErrorCode = "UNSUPPORTED_TOOL"
	CodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
)

type EligibilityDecision struct {
	Eligible  bool      `json:"eligible"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
	Reason    string    `json:"reason,omitempty"`

	OrderNumber       string   `json:"order_number,omitempty"`
	CustomerID        string   `json:"customer_id,omitempty"`
	ItemName          string   `json:"item_name,omitempty"`
	Category          Category `json:"category,omitempty"`
	DaysSinceDelivery *int     `json:"days_since_delivery,omitempty"`
	ReturnPeriod      int      `json:"return_period,omitempty"`
	VIPTier           VIPTier  `json:"vip_level,omitempty"`
	VIPExtension      bool     `json:"vip_extension"`
	EstimatedRefund   int64    `json:"estimated_refund,omitempty"`
	ProcessingTime    string   `json:"processing_time,omitempty"`
	Conditions        []string `json:"conditions,omitempty"`
	ShippingFee       string   `json:"shipping_fee,omitempty"`
}

// Deny builds an ineligible decision.
func Deny(code ErrorCode, reason string) *EligibilityDecision {
	return &EligibilityDecision{
		Eligible:  false,
		ErrorCode: code,
		Reason:    reason,
	}
}
