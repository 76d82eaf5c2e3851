package utils

import (
	"regexp"

	"gramsetu/credit_lending/internal/pkg/consts"
)

var monthYearRegex = regexp.MustCompile(consts.MonthYearPattern)

// IsValidMonthYear checks the YYYY-MM period format, month 01-12.
func IsValidMonthYear(monthYear string) bool {
	return monthYearRegex.MatchString(monthYear)
}

// IsValidDataType checks the consumption record data type.
func IsValidDataType(dataType string) bool {
	switch dataType {
	case consts.DataTypeElectricity, consts.DataTypeMobile, consts.DataTypeUtility, consts.DataTypeSurvey:
		return true
	}
	return false
}

// IsValidBeneficiaryStatus checks a beneficiary lifecycle status value.
func IsValidBeneficiaryStatus(status string) bool {
	switch status {
	case consts.BeneficiaryActive, consts.BeneficiaryInactive, consts.BeneficiarySuspended:
		return true
	}
	return false
}
