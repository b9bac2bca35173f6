package panel

import "fmt"

// FormatPrice renders a price the way the catalog lists it, e.g. "R$ 2.50".
func FormatPrice(price float64) string {
	return fmt.Sprintf("R$ %.2f", price)
}

// DescriptionOrDefault returns d, or a placeholder when it is empty.
func DescriptionOrDefault(d string) string {
	if d == "" {
		return MsgNoDescription
	}
	return d
}
