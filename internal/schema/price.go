package schema

// Amount is a money value in minor currency units (kopecks for RUB).
type Amount struct {
	Amount  int64
	CurCode *string
}

type Tax struct {
	Amount  Amount
	TaxCode string `validate:"required"`
}

type TaxSummary struct {
	Taxes          []Tax `validate:"dive"`
	TotalTaxAmount *Amount
}

// Price always carries a TaxSummary; a price without taxes has an empty one.
type Price struct {
	TaxSummary  TaxSummary
	TotalAmount Amount
}
