package storage

import (
	"math"
	"strconv"
	"strings"
)

// normalizePrice strips thousands separators; anything unparseable is 0
func normalizePrice(raw string) float64 {
	value := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if value == "" {
		return 0
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}

func normalizeRocket(raw string) string {
	return strings.TrimSpace(raw)
}
