// internal/services/validate.go
package services

import (
	"fmt"

	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

// ValidateRequest runs struct validation and folds failures into the
// InvalidInput error class.
func ValidateRequest(s interface{}) error {
	if err := utils.ValidateStruct(s); err != nil {
		if msgs := utils.GetValidationErrors(err); len(msgs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidInput, msgs[0].Message)
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return nil
}
