package product

import (
	"math"

	"camerastore/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Pricing converts catalog prices into the display currency. The same
// quote is used by the catalog, the product page and the booking form.
type Pricing struct {
	Rate     decimal.Decimal
	Currency string
}

func NewPricing(rate float64, currency string) Pricing {
	if rate <= 0 {
		rate = 1
	}
	return Pricing{Rate: decimal.NewFromFloat(rate), Currency: currency}
}

// DiscountedPrice returns round(price - price*discount/100, 2) and true
// when discount is positive; otherwise price and false.
func DiscountedPrice(price, discount float64) (float64, bool) {
	if discount <= 0 {
		return price, false
	}
	p := decimal.NewFromFloat(price)
	off := p.Mul(decimal.NewFromFloat(discount)).Div(hundred)
	f, _ := p.Sub(off).Round(2).Float64()
	return f, true
}

// Quote never panics: non-finite amounts are quoted as zero.
func (pr Pricing) Quote(price float64, discount *float64) models.PriceQuote {
	if !finite(price) {
		price = 0
	}
	if discount != nil && !finite(*discount) {
		discount = nil
	}
	q := models.PriceQuote{
		Price:           price,
		EffectivePrice:  price,
		DisplayCurrency: pr.Currency,
	}
	if discount != nil {
		if dp, ok := DiscountedPrice(price, *discount); ok {
			q.Discount = *discount
			q.DiscountedPrice = &dp
			q.EffectivePrice = dp
		}
	}
	q.DisplayPrice = decimal.NewFromFloat(q.EffectivePrice).Mul(pr.Rate).Round(0).IntPart()
	return q
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (s *DefaultProductService) Quote(price float64, discount *float64) models.PriceQuote {
	return s.Pricing.Quote(price, discount)
}
