package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	// Update persists editable fields only; aadhaar and PAN stay as
	// created.
	Update(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	// Search matches name or mobile, newest first; empty query lists all.
	Search(ctx context.Context, query string) ([]Customer, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByVehicleID(ctx context.Context, vehicleID string) (*Vehicle, error)
	GetByCustomerID(ctx context.Context, customerID string) (*Vehicle, error)
}

type GuarantorRepository interface {
	Create(ctx context.Context, g *Guarantor) error
	// GetByCustomerID returns ErrNotFound when the customer has no
	// guarantor on file; recovery notices tolerate that.
	GetByCustomerID(ctx context.Context, customerID string) (*Guarantor, error)
}
