package openapi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kaid/stupid-form-model/pkg/model"
)

// Constraint rules generated from schema keywords. Each rule stays silent
// unless the value is present and comparable; emptiness and type mismatches
// are left to the required and numeric rules.

func minimumRule(limit float64) model.Rule {
	message := fmt.Sprintf("不能小于 %v", limit)
	return func(value any) string {
		if number, ok := boundValue(value); ok && number < limit {
			return message
		}
		return ""
	}
}

func maximumRule(limit float64) model.Rule {
	message := fmt.Sprintf("不能大于 %v", limit)
	return func(value any) string {
		if number, ok := boundValue(value); ok && number > limit {
			return message
		}
		return ""
	}
}

func minLengthRule(limit int) model.Rule {
	message := fmt.Sprintf("长度不能少于 %d 个字符", limit)
	return func(value any) string {
		if text, ok := value.(string); ok && text != "" && len([]rune(text)) < limit {
			return message
		}
		return ""
	}
}

func maxLengthRule(limit int) model.Rule {
	message := fmt.Sprintf("长度不能超过 %d 个字符", limit)
	return func(value any) string {
		if text, ok := value.(string); ok && len([]rune(text)) > limit {
			return message
		}
		return ""
	}
}

func patternRule(pattern string) (model.Rule, error) {
	expression, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	return func(value any) string {
		if text, ok := value.(string); ok && text != "" && !expression.MatchString(text) {
			return "格式不正确"
		}
		return ""
	}, nil
}

// boundValue extracts a comparable number from the shapes the tree actually
// carries: Go numerics from decoded documents and digit strings from prompt
// answers.
func boundValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		number, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return number, true
	}
	return 0, false
}
