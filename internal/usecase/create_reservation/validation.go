package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if err := validateLocation("pickupLocation", req.PickupLocation); err != nil {
		return err
	}

	if err := validateLocation("dropoffLocation", req.DropoffLocation); err != nil {
		return err
	}

	if req.CustomerInfo != nil {
		if err := validateCustomerInfo(req.CustomerInfo); err != nil {
			return err
		}
	}

	return nil
}

func validateLocation(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if len(value) > domain.MaxLocationLength {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, domain.MaxLocationLength)
	}
	return nil
}

// validateCustomerInfo проверяет контактные данные, пустые поля допускаются
func validateCustomerInfo(info *domain.CustomerInfo) error {
	if len(info.Name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if len(info.Phone) > domain.MaxCustomerPhoneLen {
		return fmt.Errorf("%w: customer phone is too long", ErrInvalidInput)
	}

	if info.Email != "" {
		if len(info.Email) > domain.MaxCustomerEmailLen {
			return fmt.Errorf("%w: customer email is too long", ErrInvalidInput)
		}
		if _, err := mail.ParseAddress(info.Email); err != nil {
			return fmt.Errorf("%w: invalid customer email: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
