package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage      = "internal server error"
	ErrOrderNumberRequiredMessage = "order number is required"
	ErrCustomerIDRequiredMessage  = "customer id is required"
	ErrInvalidRequestMessage      = "invalid request"
	ErrItemRequiredMessage        = "item and size are required"
)

// Localized messages returned to customers.
const (
	MsgOrderNotFound       = "주문을 찾을 수 없습니다."
	MsgCustomerMismatch    = "주문 정보와 고객 정보가 일치하지 않습니다."
	MsgReturnPeriodExpired = "반품 기간(%d일)이 지났습니다. (경과: %d일)"
	MsgTagsRemoved         = "택이 제거된 상품은 반품이 불가능합니다."
	MsgWornCondition       = "착용 흔적이 있는 상품은 반품이 불가능합니다."
	MsgUsedProduct         = "사용된 뷰티 제품은 반품이 불가능합니다."
	MsgSealDamaged         = "봉인이 훼손된 제품은 반품이 불가능합니다."
	MsgMissingParameters   = "필수 매개변수가 누락되었습니다: %s"
	MsgInvalidParameters   = "매개변수 형식이 올바르지 않습니다."
	MsgUnsupportedTool     = "지원하지 않는 도구: %s"
	MsgInternalServerError = "내부 서버 오류가 발생했습니다."
	MsgFreeShipping        = "무료"
	MsgPriorityProcessing  = "1-2 영업일"
	MsgStandardProcessing  = "3-5 영업일"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrItemNotFound  = errors.New("item not found")
)

const ErrToolNotAllowedMessage = "tool is not allowed for this caller"
