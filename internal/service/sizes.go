package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ibeloyar/returndesk/internal/model"
)

const defaultFitRecommendation = "비슷한 핏입니다."

var nearestSizes = map[string][]string{
	"XS": {"S"},
	"S":  {"XS", "M"},
	"M":  {"S", "L"},
	"L":  {"M", "XL"},
	"XL": {"L"},
	"26": {"27"},
	"27": {"26", "28"},
	"28": {"27", "29"},
	"29": {"28", "30"},
	"30": {"29"},
}

type sizePair struct {
	original    string
	alternative string
}

var fitRecommendations = map[sizePair]string{
	{"S", "XS"}:  "약간 더 타이트한 핏입니다.",
	{"S", "M"}:   "약간 더 여유로운 핏입니다.",
	{"M", "S"}:   "약간 더 슬림한 핏입니다.",
	{"M", "L"}:   "약간 더 루즈한 핏입니다.",
	{"27", "26"}: "허리가 약 1인치 작습니다.",
	{"27", "28"}: "허리가 약 1인치 큽니다.",
}

// CheckSizeAvailability reports whether the size has stock. Unknown items are
// reported as unavailable.
func (s *Service) CheckSizeAvailability(ctx context.Context, itemID, size string) (bool, error) {
	qty, err := s.inventory.Quantity(ctx, itemID, size)
	if err != nil {
		if errors.Is(err, model.ErrItemNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("quantity of %s/%s: %w", itemID, size, err)
	}

	return qty > 0, nil
}

// GetSizeAlternatives returns the nearest sizes that have stock.
func (s *Service) GetSizeAlternatives(ctx context.Context, itemID, desiredSize string) ([]model.AlternativeSize, error) {
	alternatives := make([]model.AlternativeSize, 0)

	for _, size := range nearestSizes[desiredSize] {
		ok, err := s.CheckSizeAvailability(ctx, itemID, size)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		alternatives = append(alternatives, model.AlternativeSize{
			Size:              size,
			Available:         true,
			FitRecommendation: fitRecommendation(desiredSize, size),
		})
	}

	return alternatives, nil
}

func fitRecommendation(original, alternative string) string {
	if rec, ok := fitRecommendations[sizePair{original, alternative}]; ok {
		return rec
	}
	return defaultFitRecommendation
}
