package reservation

import "rental-booking/internal/domain/money"

const DepositPercent = 30

type Quote struct {
	Nights  int
	Total   money.Money
	Deposit money.Money
}

type PriceCalculator interface {
	Quote(pricePerNight money.Money, stay DateRange) Quote
}

type DefaultPriceCalculator struct {
	DepositPercent int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{DepositPercent: DepositPercent}
}

func (pc *DefaultPriceCalculator) Quote(pricePerNight money.Money, stay DateRange) Quote {
	nights := stay.Nights()
	total := pricePerNight.Times(nights)
	return Quote{
		Nights:  nights,
		Total:   total,
		Deposit: total.Percent(pc.DepositPercent),
	}
}
