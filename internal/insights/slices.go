package insights

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Slice is one category of the spending breakdown. Value is the true amount;
// DisplayValue is raised to the visual floor so small slices stay visible.
type Slice struct {
	Name         string          `json:"name"`
	Value        decimal.Decimal `json:"value"`
	DisplayValue float64         `json:"displayValue"`
	Share        float64         `json:"share"`
	DisplayShare float64         `json:"displayShare"`
}

// Slices orders category totals by amount, largest first with ties broken
// by name, and applies the visual floor: a category below floor of the total
// is displayed at floor*total.
func Slices(totals map[string]decimal.Decimal, floor float64) []Slice {
	slices := make([]Slice, 0, len(totals))
	var total float64
	for name, v := range totals {
		slices = append(slices, Slice{Name: name, Value: v})
		total += v.InexactFloat64()
	}
	sort.Slice(slices, func(i, j int) bool {
		if c := slices[i].Value.Cmp(slices[j].Value); c != 0 {
			return c > 0
		}
		return slices[i].Name < slices[j].Name
	})

	var displayTotal float64
	for i := range slices {
		v := slices[i].Value.InexactFloat64()
		slices[i].DisplayValue = v
		if total > 0 {
			slices[i].Share = v / total
			if slices[i].Share < floor {
				slices[i].DisplayValue = floor * total
			}
		}
		displayTotal += slices[i].DisplayValue
	}
	if displayTotal > 0 {
		for i := range slices {
			slices[i].DisplayShare = slices[i].DisplayValue / displayTotal
		}
	}
	return slices
}
