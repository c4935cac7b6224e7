package entity

// Price is the price of a menu item: absent, a single amount, or a range.
// Range bounds are derived, the catalog is not trusted to sort them.
type Price struct {
	values []float64
}

// NewPrice builds a Price from the raw catalog values.
func NewPrice(values ...float64) Price {
	vs := make([]float64, len(values))
	copy(vs, values)

	return Price{values: vs}
}

// IsSet reports whether the item has any price at all.
func (p Price) IsSet() bool {
	return len(p.values) > 0
}

// IsRange reports whether the price spans two distinct bounds.
func (p Price) IsRange() bool {
	return p.IsSet() && p.Min() != p.Max()
}

// Min returns the smallest value of the price, or 0 when unset.
func (p Price) Min() float64 {
	if !p.IsSet() {
		return 0
	}

	low := p.values[0]
	for _, v := range p.values[1:] {
		if v < low {
			low = v
		}
	}

	return low
}

// Max returns the largest value of the price, or 0 when unset.
func (p Price) Max() float64 {
	if !p.IsSet() {
		return 0
	}

	high := p.values[0]
	for _, v := range p.values[1:] {
		if v > high {
			high = v
		}
	}

	return high
}

// Unit returns the chargeable unit price: the minimum of a range, the
// scalar value, or 0 when the item has no price.
func (p Price) Unit() float64 {
	return p.Min()
}
