package models

// GeocodeResult - нормализованный результат геокодирования. Не сохраняется.
type GeocodeResult struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
	Confidence       float64 `json:"confidence"`
	Source           string  `json:"source"`
}
