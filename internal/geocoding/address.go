package geocoding

import "strings"

// addressParts - компоненты адреса. Ключи совпадают у OpenCage (components) и Nominatim (address).
type addressParts struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Town        string `json:"town"`
}

// format собирает адрес вида "дом, улица, район, город"; если компонентов нет, возвращает fallback
func (a addressParts) format(fallback string) string {
	locality := a.City
	if locality == "" {
		locality = a.Town
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{a.HouseNumber, a.Road, a.Suburb, locality} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}
