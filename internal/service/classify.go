package service

import (
	"strings"

	"github.com/ibeloyar/returndesk/internal/model"
)

var beautyKeywords = []string{
	"립스틱", "립글로스", "파운데이션", "쿠션", "컨실러", "아이섀도",
	"마스카라", "아이라이너", "스킨", "로션", "크림", "세럼", "토너",
	"클렌저", "향수", "마스크팩", "선크림",
}

var fashionKeywords = []string{
	"원피스", "블라우스", "셔츠", "니트", "가디건", "청바지", "진", "팬츠",
	"스커트", "자켓", "코트", "신발", "가방", "벨트", "스카프", "모자",
}

// Classify decides the category of a product by its name. Beauty keywords are
// checked before fashion keywords; a name matching neither is CategoryOther.
func Classify(name string) model.Category {
	lower := strings.ToLower(name)

	if containsAny(lower, beautyKeywords) {
		return model.CategoryBeauty
	}
	if containsAny(lower, fashionKeywords) {
		return model.CategoryFashion
	}

	return model.CategoryOther
}

// returnCategory is the category used by the return and eligibility flows.
func returnCategory(c model.Category) model.Category {
	if c == model.CategoryBeauty {
		return model.CategoryBeauty
	}
	return model.CategoryFashion
}

// ParseOption splits "color/size" options; an option without a slash is a size.
func ParseOption(option string) model.Option {
	color, size, found := strings.Cut(option, "/")
	if !found {
		return model.Option{Size: strings.TrimSpace(option)}
	}

	return model.Option{
		Color: strings.TrimSpace(color),
		Size:  strings.TrimSpace(size),
	}
}
