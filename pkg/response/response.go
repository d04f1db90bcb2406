package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agroconecta/marketplace-service/pkg/errs"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type NotFoundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Message = message
	resp.Data = data

	return c.JSON(http.StatusOK, resp)
}

// WriteErrorResponse converts an error into the wire contract: not-found and
// empty-filter results keep the {success,message} shape, everything else
// carries the operation message plus a machine-readable code and the cause.
func WriteErrorResponse(c echo.Context, err error, message string) error {
	statusCode := errs.GetErrorStatusCode(err)

	if statusCode == http.StatusNotFound {
		return c.JSON(statusCode, NotFoundResponse{Success: false, Message: err.Error()})
	}

	resp := ErrorResponse{}
	resp.Error = message
	if resp.Error == "" {
		resp.Error = err.Error()
	}
	resp.Code = errs.GetErrorCode(err)
	resp.Details = err.Error()

	return c.JSON(statusCode, resp)
}
