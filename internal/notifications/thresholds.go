package notifications

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// thresholdsFile is the YAML shape of the optional override file. Every
// field is optional; absent fields keep their default value.
type thresholdsFile struct {
	RatioCritical  *float64 `yaml:"expense_ratio_critical"`
	RatioComfort   *float64 `yaml:"income_ratio_comfortable"`
	RatioHigh      *float64 `yaml:"expense_ratio_high"`
	RatioWarn      *float64 `yaml:"expense_ratio_warning"`
	ShareExpense   *float64 `yaml:"expense_category_share"`
	ShareIncome    *float64 `yaml:"income_category_share"`
	ShareNearLimit *float64 `yaml:"limit_remainder_share"`
}

// LoadThresholds reads threshold overrides from a YAML file and applies them
// over the defaults. A missing file is not an error: the defaults apply.
func LoadThresholds(path string) (Thresholds, error) {
	thresholds := DefaultThresholds()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return thresholds, nil
	}
	if err != nil {
		return thresholds, fmt.Errorf("could not read thresholds file %s: %w", path, err)
	}

	var overrides thresholdsFile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return thresholds, fmt.Errorf("could not parse thresholds file %s: %w", path, err)
	}

	apply := func(target *decimal.Decimal, value *float64, name string) error {
		if value == nil {
			return nil
		}
		if *value <= 0 {
			return fmt.Errorf("threshold %s in %s must be positive, got %v", name, path, *value)
		}
		*target = decimal.NewFromFloat(*value)
		return nil
	}

	for _, override := range []struct {
		target *decimal.Decimal
		value  *float64
		name   string
	}{
		{&thresholds.RatioCritical, overrides.RatioCritical, "expense_ratio_critical"},
		{&thresholds.RatioComfort, overrides.RatioComfort, "income_ratio_comfortable"},
		{&thresholds.RatioHigh, overrides.RatioHigh, "expense_ratio_high"},
		{&thresholds.RatioWarn, overrides.RatioWarn, "expense_ratio_warning"},
		{&thresholds.ShareExpense, overrides.ShareExpense, "expense_category_share"},
		{&thresholds.ShareIncome, overrides.ShareIncome, "income_category_share"},
		{&thresholds.ShareNearLimit, overrides.ShareNearLimit, "limit_remainder_share"},
	} {
		if err := apply(override.target, override.value, override.name); err != nil {
			return DefaultThresholds(), err
		}
	}
	return thresholds, nil
}
