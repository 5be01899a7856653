package models

// PickupLocation is a site where customers collect pickup orders
type PickupLocation struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Instructions string `json:"instructions,omitempty"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// CreatePickupLocationRequest represents the request body for creating a
// pickup location
// Example: {"name": "Grant Park Market", "addressLine1": "600 Cherokee Ave SE",
//           "city": "Atlanta", "state": "GA", "postalCode": "30312"}
type CreatePickupLocationRequest struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Instructions string `json:"instructions,omitempty"`
}

// UpdatePickupLocationRequest represents the request body for updating a
// pickup location; nil fields are left unchanged
type UpdatePickupLocationRequest struct {
	Name         *string `json:"name,omitempty"`
	AddressLine1 *string `json:"addressLine1,omitempty"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	PostalCode   *string `json:"postalCode,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}
