package transition_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.Caller.UserID <= 0 {
		return fmt.Errorf("%w: caller userID must be positive", ErrInvalidInput)
	}

	if !req.Caller.Role.IsValid() {
		return fmt.Errorf("%w: unknown caller role %q", ErrInvalidInput, req.Caller.Role)
	}

	if !req.TargetStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.TargetStatus)
	}

	return nil
}
