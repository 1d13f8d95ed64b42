package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
)

func TestDefaultCalculatorInputs(t *testing.T) {
	defaults := service.DefaultCalculatorInputs()

	assert.Equal(t, float64(400), defaults.Publicity)
	assert.Equal(t, float64(200), defaults.Services)
	assert.Equal(t, float64(1000), defaults.Transport)
	assert.Equal(t, float64(20), defaults.ProfitMargin)
	assert.Equal(t, float64(13), defaults.Iva)
	assert.Zero(t, defaults.PriceWithoutIva)
	assert.Zero(t, defaults.FinalPrice)
}

func TestComputeTotals(t *testing.T) {
	t.Run("derives prices from costs", func(t *testing.T) {
		calc := service.ComputeTotals(domain.CalculatorRequest{
			Publicity:    400,
			Services:     200,
			Transport:    1000,
			ProviderCost: 1000,
			ProfitMargin: 20,
			Iva:          13,
		})

		assert.Equal(t, float64(2600), calc.TotalCost)
		assert.Equal(t, float64(3120), calc.PriceWithoutIva)
		assert.Equal(t, 3525.6, calc.FinalPrice)
	})

	t.Run("total cost includes all seven cost fields", func(t *testing.T) {
		calc := service.ComputeTotals(domain.CalculatorRequest{
			Publicity:        1,
			Services:         2,
			Transport:        3,
			ProviderCost:     4,
			PackagingCost:    5,
			DesignCost:       6,
			InstallationCost: 7,
		})

		assert.Equal(t, float64(28), calc.TotalCost)
	})

	t.Run("user supplied price wins over derivation", func(t *testing.T) {
		calc := service.ComputeTotals(domain.CalculatorRequest{
			ProviderCost:    1000,
			ProfitMargin:    20,
			Iva:             13,
			PriceWithoutIva: 5000,
		})

		assert.Equal(t, float64(5000), calc.PriceWithoutIva)
		assert.Equal(t, float64(5650), calc.FinalPrice)
	})

	t.Run("user supplied final price wins", func(t *testing.T) {
		calc := service.ComputeTotals(domain.CalculatorRequest{
			ProviderCost: 1000,
			ProfitMargin: 20,
			Iva:          13,
			FinalPrice:   9999,
		})

		assert.Equal(t, float64(9999), calc.FinalPrice)
		assert.Equal(t, float64(1200), calc.PriceWithoutIva)
	})

	t.Run("zero cost derives nothing", func(t *testing.T) {
		calc := service.ComputeTotals(domain.CalculatorRequest{
			ProfitMargin: 20,
			Iva:          13,
		})

		assert.Zero(t, calc.TotalCost)
		assert.Zero(t, calc.PriceWithoutIva)
		assert.Zero(t, calc.FinalPrice)
	})

	t.Run("derived prices are rounded to cents", func(t *testing.T) {
		calc := service.ComputeTotals(domain.CalculatorRequest{
			ProviderCost: 1234.56,
			ProfitMargin: 20,
			Iva:          13,
		})

		assert.InDelta(t, 1481.47, calc.PriceWithoutIva, 0.001)
		assert.InDelta(t, 1674.06, calc.FinalPrice, 0.001)
	})
}

func TestProfitFigures(t *testing.T) {
	calc := domain.Calculator{TotalCost: 2600, FinalPrice: 3525.6}

	assert.InDelta(t, 925.6, service.Profit(calc), 0.001)
	assert.InDelta(t, 35.6, service.LiveProfitPercentage(calc), 0.001)
	assert.InDelta(t, 26.2537, service.ReportProfitPercentage(calc), 0.001)

	t.Run("zero cost yields zero live percentage", func(t *testing.T) {
		assert.Zero(t, service.LiveProfitPercentage(domain.Calculator{FinalPrice: 100}))
	})

	t.Run("zero final price yields zero report percentage", func(t *testing.T) {
		assert.Zero(t, service.ReportProfitPercentage(domain.Calculator{TotalCost: 100}))
	})
}
