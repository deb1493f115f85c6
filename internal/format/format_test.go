package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "profit groups digits", got: Profit(1896), want: "1,896.00"},
		{name: "profit negative", got: Profit(-12.5), want: "-12.50"},
		{name: "profit large", got: Profit(1234567.891), want: "1,234,567.89"},
		{name: "xp one decimal", got: XP(395), want: "395.0"},
		{name: "xp rounds", got: XP(1234.56), want: "1,234.6"},
		{name: "land size", got: LandSize(domain.LandSizeLarge), want: "Large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestROI(t *testing.T) {
	roi := 12.34
	assert.Equal(t, "12.34%", ROI(&roi))
	assert.Equal(t, NotApplicable, ROI(nil))

	assert.Equal(t, "50.00%", DetailROI(domain.CropDetail{ReturnOnInvestment: 50}))
	assert.Equal(t, NotApplicable, DetailROI(domain.CropDetail{ReturnOnInvestment: math.Inf(1)}))
	assert.Equal(t, NotApplicable, DetailROI(domain.CropDetail{ReturnOnInvestment: math.NaN()}))
}
