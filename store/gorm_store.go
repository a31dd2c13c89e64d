package store

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/orders-admin/models"
	"gorm.io/gorm"
)

// GormStore keeps orders in a SQL database. Cart items reference products,
// which are joined in on Fetch the same way the content backend dereferences
// them.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates the tables the store reads from.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&models.Product{}, &models.OrderDocument{}, &models.OrderItem{})
}

func (s *GormStore) Fetch(ctx context.Context) ([]models.Order, error) {
	var docs []models.OrderDocument
	err := s.DB.WithContext(ctx).
		Preload("CartItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("CartItems.Product").
		Order("created_at asc").
		Order("id asc").
		Find(&docs).Error
	if err != nil {
		return nil, classify("fetch", "", err)
	}

	orders := make([]models.Order, 0, len(docs))
	for i := range docs {
		orders = append(orders, docs[i].ToOrder())
	}
	return orders, nil
}

func (s *GormStore) PatchStatus(ctx context.Context, id string, status models.Status) error {
	res := s.DB.WithContext(ctx).
		Model(&models.OrderDocument{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if res.Error != nil {
		return classify("patch", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFound("patch", id)
	}
	return nil
}

// Delete removes the order and its cart items. An order that is already
// gone counts as deleted.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return classify("delete", id, err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.OrderDocument{}).Error; err != nil {
			return classify("delete", id, err)
		}
		return nil
	})
	var se *Error
	if err != nil && !errors.As(err, &se) {
		return classify("delete", id, err)
	}
	return err
}

// Seed inserts orders together with one product per line item. Orders
// without an ID get a generated one. Used for demo data and tests.
func (s *GormStore) Seed(ctx context.Context, orders []models.Order) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := time.Now()
		for i, o := range orders {
			id := o.ID
			if id == "" {
				id = uuid.NewString()
			}
			doc := models.OrderDocument{
				ID:        id,
				FirstName: o.FirstName,
				LastName:  o.LastName,
				Phone:     o.Phone,
				Email:     o.Email,
				Address:   o.Address,
				City:      o.City,
				ZipCode:   o.ZipCode,
				Total:     o.Total,
				Discount:  o.Discount,
				OrderDate: o.OrderDate,
				// Keeps Fetch order equal to slice order.
				CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
				UpdatedAt: base,
			}
			if o.Status != "" {
				status := string(o.Status)
				doc.Status = &status
			}
			for pos, li := range o.CartItems {
				product := models.Product{
					ID:          uuid.NewString(),
					ProductName: li.ProductName,
				}
				if li.Image != "" {
					image := li.Image
					product.Image = &image
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				doc.CartItems = append(doc.CartItems, models.OrderItem{
					Position:  pos,
					ProductID: product.ID,
				})
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func classify(op, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(op, id)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NetworkFailure(op, id, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return NetworkFailure(op, id, err)
	}
	return RemoteRejected(op, id, err)
}
