package services

import (
	"context"
	"fmt"
	"log/slog"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/utils"

	"github.com/google/uuid"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// RegisterCustomer validates Thai formats and creates the customer record.
func (s *CustomerService) RegisterCustomer(ctx context.Context, req *models.RegisterCustomerRequest) (*models.Customer, error) {
	if ok, err := utils.ValidateThaiNationalID(req.NationalID); !ok {
		return nil, fmt.Errorf("invalid national id: %w", err)
	}
	if ok, err := utils.ValidateThaiPhone(req.Phone); !ok {
		return nil, fmt.Errorf("invalid phone: %w", err)
	}
	if ok, err := utils.ValidateEmail(req.Email); !ok {
		return nil, fmt.Errorf("invalid email: %w", err)
	}

	customer := &models.Customer{
		NationalID:   req.NationalID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		DateOfBirth:  req.DateOfBirth,
		NoClaimYears: req.NoClaimYears,
		IsActive:     true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}

	slog.Info("Customer registered", "customer_id", customer.ID, "national_id", customer.NationalID)
	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}
	return customer, nil
}

// GetCustomerByNationalID looks an active customer up by the Thai national
// id, the lookup staff use when the caller has no customer reference.
func (s *CustomerService) GetCustomerByNationalID(ctx context.Context, nationalID string) (*models.Customer, error) {
	if ok, err := utils.ValidateThaiNationalID(nationalID); !ok {
		return nil, fmt.Errorf("invalid national id: %w", err)
	}

	customer, err := s.customerRepo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}
	return customer, nil
}

// ListCustomers retrieves all active customers.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer applies partial updates to mutable fields.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	if req.Email != nil {
		if ok, err := utils.ValidateEmail(*req.Email); !ok {
			return nil, fmt.Errorf("invalid email: %w", err)
		}
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		if ok, err := utils.ValidateThaiPhone(*req.Phone); !ok {
			return nil, fmt.Errorf("invalid phone: %w", err)
		}
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.NoClaimYears != nil {
		customer.NoClaimYears = *req.NoClaimYears
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// MarkKYCVerified flags the customer as having passed KYC.
func (s *CustomerService) MarkKYCVerified(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	customer.KYCVerified = true
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// DeactivateCustomer soft-deletes the customer.
func (s *CustomerService) DeactivateCustomer(ctx context.Context, customerID uuid.UUID) error {
	if err := s.customerRepo.Deactivate(ctx, customerID); err != nil {
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}
	return nil
}
