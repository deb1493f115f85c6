// Package format renders planner numbers for people: profit with two decimals,
// experience with one, both with English digit grouping.
package format

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// NotApplicable is shown for values that are undefined, such as the ROI of free crops
const NotApplicable = "n/a"

// Profit renders a money amount, e.g. 1,896.00
func Profit(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// XP renders an experience or effort amount, e.g. 395.0
func XP(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// LandSize renders a land size for display, e.g. Medium
func LandSize(l domain.LandSize) string {
	return titler.String(l.String())
}

// ROI renders a return on investment percentage, or n/a when it is undefined
func ROI(roi *float64) string {
	if roi == nil {
		return NotApplicable
	}
	return printer.Sprintf("%.2f%%", *roi)
}

// DetailROI is ROI for a computed crop detail
func DetailROI(d domain.CropDetail) string {
	if !d.ROIDefined() {
		return NotApplicable
	}
	return ROI(&d.ReturnOnInvestment)
}
