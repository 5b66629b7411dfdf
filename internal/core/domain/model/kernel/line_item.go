package kernel

// LineItem is a reference to a purchased product on an order or to a
// purchasable product on a contract. Historical documents name the product in
// one of three fields; DisplayName resolves them with first-non-empty
// precedence: Name, then ProductID, then LegacyProductID.
type LineItem struct {
	Name            string `json:"name,omitempty"`
	ProductID       string `json:"product_id,omitempty"`
	LegacyProductID string `json:"productId,omitempty"`
}

// DisplayName returns the product name used for delivery task titles and
// item matching. Empty when none of the three name fields is set.
func (li LineItem) DisplayName() string {
	if li.Name != "" {
		return li.Name
	}
	if li.ProductID != "" {
		return li.ProductID
	}
	return li.LegacyProductID
}

// NormalizedName returns the canonical comparison form of the display name.
func (li LineItem) NormalizedName() string {
	return Normalize(li.DisplayName())
}
