package models

// ListMarketsRequest paginates the asset listing.
type ListMarketsRequest struct {
	Currency string `query:"currency" default:"USD"`
	Page     int    `query:"page" default:"1" validate:"gte=1"`
	PerPage  int    `query:"per_page" default:"100" validate:"gte=1,lte=250"`
}

// DetailRequest selects the display currency for a detail page.
type DetailRequest struct {
	Currency string `query:"currency" default:"USD"`
}

// ChartRequest selects a lookback window and display currency.
type ChartRequest struct {
	Currency string `query:"currency" default:"USD"`
	Days     int    `query:"days" default:"7" validate:"oneof=1 7 30 90 365"`
}

// SearchRequest carries an autocomplete or full-search query. Limit 0
// means unlimited (full search); the autocomplete caller passes 5.
type SearchRequest struct {
	Query string `query:"q"`
	Limit int    `query:"limit" default:"0" validate:"gte=0,lte=50"`
}

// CompareRequest aligns chart series for a comma-separated id list.
type CompareRequest struct {
	IDs      string `query:"ids" validate:"required"`
	Currency string `query:"currency" default:"USD"`
	Days     int    `query:"days" default:"7" validate:"oneof=1 7 30 90 365"`
}
