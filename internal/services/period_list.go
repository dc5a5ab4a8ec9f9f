package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"delivery-finance/internal/models"
	"delivery-finance/internal/validation"
)

// ParsePeriodList decodes a JSON array of [year, month] pairs such as
// "[[2024, 7], [2024, 8]]". Anything that is not exactly that shape is
// rejected with ErrInvalidArgument; the input is never evaluated.
func ParsePeriodList(raw string) ([]models.PeriodRequest, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: period list is empty", ErrInvalidArgument)
	}

	var pairs [][]int
	if err := json.Unmarshal([]byte(trimmed), &pairs); err != nil {
		return nil, fmt.Errorf("%w: period list must be a JSON array of [year, month] pairs: %v", ErrInvalidArgument, err)
	}
	if pairs == nil {
		return nil, fmt.Errorf("%w: period list must be a JSON array, got null", ErrInvalidArgument)
	}

	v := validation.GetValidator()
	periods := make([]models.PeriodRequest, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: period %d must have exactly 2 values [year, month], got %d", ErrInvalidArgument, i, len(pair))
		}

		period := models.PeriodRequest{Year: pair[0], Month: pair[1]}
		fieldErrors, err := v.Struct(period)
		if err != nil {
			return nil, fmt.Errorf("validating period %d: %w", i, err)
		}
		if len(fieldErrors) > 0 {
			return nil, fmt.Errorf("%w: period %d: %s", ErrInvalidArgument, i, joinFieldErrors(fieldErrors))
		}

		periods = append(periods, period)
	}

	return periods, nil
}

func joinFieldErrors(fieldErrors map[string]string) string {
	parts := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		parts = append(parts, field+" "+message)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
