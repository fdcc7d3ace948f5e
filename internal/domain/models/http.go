package models

// LoginRequest is the auth payload for POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse carries the opaque session token for an approved email.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// FetchRequest selects the venue and date window for a pipeline run.
// When FromDate/ToDate are empty the window is the last DaysAgo days.
type FetchRequest struct {
	Venue    string `json:"venue" default:"HKEX" validate:"required,oneof=HKEX BATS OANDA SSE_DLY HSI ZSE_DLY"`
	DaysAgo  int    `json:"days_ago" default:"1" validate:"gte=1,lte=90"`
	FromDate string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate   string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`
}

// ExportRequest carries the rows to serialize as CSV.
type ExportRequest struct {
	Signals []SignalRow `json:"signals" validate:"required,min=1"`
}

// ExportResponse is the CSV payload plus a timestamped filename.
type ExportResponse struct {
	CSV      string `json:"csv"`
	Filename string `json:"filename"`
}

// ExchangeInfo pairs a human-readable market name with its venue code.
type ExchangeInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ExchangeCatalog lists the supported markets in display order, as served
// by GET /api/exchanges. The set is closed; it mirrors the venue codes.
var ExchangeCatalog = []ExchangeInfo{
	{Name: "Hong Kong", Code: string(VenueHKEX)},
	{Name: "US", Code: string(VenueBATS)},
	{Name: "Shanghai", Code: string(VenueSSE)},
	{Name: "Shenzhen", Code: string(VenueZSE)},
	{Name: "Forex", Code: string(VenueOANDA)},
	{Name: "HSI", Code: string(VenueHSI)},
}

// HistoryResponse wraps recent run history for one venue.
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}
