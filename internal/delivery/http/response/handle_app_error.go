package response

import (
	domainerrors "perimeter/internal/domain/errors"
	"perimeter/internal/errors"

	"github.com/labstack/echo/v4"
)

// HandleAppError renders an error through the unified envelope. AppErrors
// carry their own HTTP status and business code; anything else is a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return InternalServerError(c, "INTERNAL_ERROR", err.Error())
}
