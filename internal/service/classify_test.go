package service

import (
	"testing"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want model.Category
	}{
		{name: "플라워 패턴 원피스", want: model.CategoryFashion},
		{name: "니트 가디건", want: model.CategoryFashion},
		{name: "슬림핏 청바지", want: model.CategoryFashion},
		{name: "가죽 벨트", want: model.CategoryFashion},
		{name: "쿠션 파운데이션", want: model.CategoryBeauty},
		{name: "매트 립스틱", want: model.CategoryBeauty},
		{name: "수분 크림", want: model.CategoryBeauty},
		{name: "선크림 SPF50", want: model.CategoryBeauty},
		{name: "크림색 니트", want: model.CategoryBeauty},
		{name: "무선 이어폰", want: model.CategoryOther},
		{name: "", want: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestReturnCategory(t *testing.T) {
	assert.Equal(t, model.CategoryBeauty, returnCategory(model.CategoryBeauty))
	assert.Equal(t, model.CategoryFashion, returnCategory(model.CategoryFashion))
	assert.Equal(t, model.CategoryFashion, returnCategory(model.CategoryOther))
	assert.Equal(t, model.CategoryFashion, returnCategory(""))
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		option string
		want   model.Option
	}{
		{option: "블랙/M", want: model.Option{Color: "블랙", Size: "M"}},
		{option: " 네이비 / 27 ", want: model.Option{Color: "네이비", Size: "27"}},
		{option: "XL", want: model.Option{Size: "XL"}},
		{option: "화이트/", want: model.Option{Color: "화이트"}},
		{option: "", want: model.Option{}},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOption(tt.option))
		})
	}
}
