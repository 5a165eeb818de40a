package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/utils"

	"github.com/google/uuid"
)

type VehicleService struct {
	vehicleRepo  *repository.VehicleRepository
	customerRepo *repository.CustomerRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository, customerRepo *repository.CustomerRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
	}
}

// RegisterVehicle validates the plate and chassis formats and creates the
// vehicle under its owning customer.
func (s *VehicleService) RegisterVehicle(ctx context.Context, req *models.RegisterVehicleRequest) (*models.Vehicle, error) {
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	if ok, err := utils.ValidateLicensePlate(req.LicensePlate); !ok {
		return nil, fmt.Errorf("invalid license plate: %w", err)
	}
	if ok, err := utils.ValidateChassisNumber(req.ChassisNumber); !ok {
		return nil, fmt.Errorf("invalid chassis number: %w", err)
	}

	vehicle := &models.Vehicle{
		CustomerID:    req.CustomerID,
		LicensePlate:  strings.TrimSpace(req.LicensePlate),
		ChassisNumber: strings.ToUpper(strings.TrimSpace(req.ChassisNumber)),
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		EngineSizeCC:  req.EngineSizeCC,
		Color:         req.Color,
		MarketValue:   req.MarketValue,
		Province:      req.Province,
		IsActive:      true,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}

	slog.Info("Vehicle registered", "vehicle_id", vehicle.ID, "license_plate", vehicle.LicensePlate)
	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID.
func (s *VehicleService) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle not found: %w", err)
	}
	return vehicle, nil
}

// GetVehiclesByCustomer retrieves all vehicles owned by a customer.
func (s *VehicleService) GetVehiclesByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}
	return vehicles, nil
}

// VerifyWithDLT runs the Department of Land Transport registry check. The
// real DLT integration is not wired in this environment; the check is
// simulated against the recorded plate and chassis formats.
func (s *VehicleService) VerifyWithDLT(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle not found: %w", err)
	}

	if ok, err := utils.ValidateLicensePlate(vehicle.LicensePlate); !ok {
		return nil, fmt.Errorf("DLT verification failed: %w", err)
	}
	if ok, err := utils.ValidateChassisNumber(vehicle.ChassisNumber); !ok {
		return nil, fmt.Errorf("DLT verification failed: %w", err)
	}

	now := time.Now().Unix()
	vehicle.DLTVerified = true
	vehicle.DLTVerifiedAt = &now

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to record DLT verification: %w", err)
	}

	slog.Info("Vehicle DLT verified", "vehicle_id", vehicle.ID, "license_plate", vehicle.LicensePlate)
	return vehicle, nil
}

// DeactivateVehicle soft-deletes the vehicle.
func (s *VehicleService) DeactivateVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	if err := s.vehicleRepo.Deactivate(ctx, vehicleID); err != nil {
		return fmt.Errorf("failed to deactivate vehicle: %w", err)
	}
	return nil
}
