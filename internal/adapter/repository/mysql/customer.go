package mysql

import (
	"context"

	customerDomain "bike-finance-backend/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicate(err) {
			return duplicateErr(err)
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customerDomain.Customer) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		if isDuplicate(err) {
			return duplicateErr(err)
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	if res.Error != nil {
		return nil, notFound(res.Error, customerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *CustomerRepository) Search(ctx context.Context, query string) ([]customerDomain.Customer, error) {
	q := r.db.WithContext(ctx)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("full_name LIKE ? OR mobile_number LIKE ?", like, like)
	}
	var out []customerDomain.Customer
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

type VehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) *VehicleRepository { return &VehicleRepository{db: db} }

func (r *VehicleRepository) Create(ctx context.Context, v *customerDomain.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		if isDuplicate(err) {
			return duplicateErr(err)
		}
		return err
	}
	return nil
}

func (r *VehicleRepository) GetByVehicleID(ctx context.Context, vehicleID string) (*customerDomain.Vehicle, error) {
	var out customerDomain.Vehicle
	res := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).First(&out)
	if res.Error != nil {
		return nil, notFound(res.Error, customerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *VehicleRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Vehicle, error) {
	var out customerDomain.Vehicle
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		First(&out)
	if res.Error != nil {
		return nil, notFound(res.Error, customerDomain.ErrNotFound)
	}
	return &out, nil
}

type GuarantorRepository struct{ db *gorm.DB }

func NewGuarantorRepository(db *gorm.DB) *GuarantorRepository { return &GuarantorRepository{db: db} }

func (r *GuarantorRepository) Create(ctx context.Context, g *customerDomain.Guarantor) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GuarantorRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Guarantor, error) {
	var out customerDomain.Guarantor
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	if res.Error != nil {
		return nil, notFound(res.Error, customerDomain.ErrNotFound)
	}
	return &out, nil
}
