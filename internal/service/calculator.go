package service

import (
	"math"

	"github.com/tallercr/workshop-api/internal/domain"
)

// Default calculator inputs offered when a job has no saved calculator yet
const (
	DefaultPublicity    = 400
	DefaultServices     = 200
	DefaultTransport    = 1000
	DefaultProfitMargin = 20
	DefaultIva          = 13
)

// DefaultCalculatorInputs returns the pre-filled inputs for a fresh
// calculator: base publicity, services and transport costs plus the usual
// margin and IVA rate.
func DefaultCalculatorInputs() domain.CalculatorRequest {
	return domain.CalculatorRequest{
		Publicity:    DefaultPublicity,
		Services:     DefaultServices,
		Transport:    DefaultTransport,
		ProfitMargin: DefaultProfitMargin,
		Iva:          DefaultIva,
	}
}

// ComputeTotals derives the cost and price figures from the inputs.
// TotalCost always sums the seven cost fields. PriceWithoutIva and
// FinalPrice are each derived only when the caller left them unset (zero):
// a user-supplied price wins over the derivation. Derived prices are
// rounded to cents.
func ComputeTotals(req domain.CalculatorRequest) domain.Calculator {
	totalCost := req.Publicity + req.Services + req.Transport +
		req.ProviderCost + req.PackagingCost + req.DesignCost + req.InstallationCost

	priceWithoutIva := req.PriceWithoutIva
	if priceWithoutIva == 0 && totalCost > 0 {
		priceWithoutIva = round2(totalCost * (1 + req.ProfitMargin/100))
	}

	finalPrice := req.FinalPrice
	if finalPrice == 0 && priceWithoutIva > 0 {
		finalPrice = round2(priceWithoutIva * (1 + req.Iva/100))
	}

	return domain.Calculator{
		Publicity:        req.Publicity,
		Services:         req.Services,
		Transport:        req.Transport,
		ProviderCost:     req.ProviderCost,
		PackagingCost:    req.PackagingCost,
		DesignCost:       req.DesignCost,
		InstallationCost: req.InstallationCost,
		ProfitMargin:     req.ProfitMargin,
		PriceWithoutIva:  priceWithoutIva,
		Iva:              req.Iva,
		FinalPrice:       finalPrice,
		TotalCost:        totalCost,
	}
}

// Profit is what remains of the final price after the full cost total
func Profit(c domain.Calculator) float64 {
	return c.FinalPrice - c.TotalCost
}

// LiveProfitPercentage is the margin shown while editing: profit relative
// to cost. Reporting uses a different denominator, see ReportProfitPercentage.
func LiveProfitPercentage(c domain.Calculator) float64 {
	if c.TotalCost <= 0 {
		return 0
	}
	return Profit(c) / c.TotalCost * 100
}

// ReportProfitPercentage is the margin used by reports and the job detail
// view: profit relative to the final price.
func ReportProfitPercentage(c domain.Calculator) float64 {
	if c.FinalPrice <= 0 {
		return 0
	}
	return Profit(c) / c.FinalPrice * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
