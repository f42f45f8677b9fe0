package handler

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzhusipov/fleet-core/internal/apierror"
	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/middleware"
	"github.com/dzhusipov/fleet-core/internal/repository"
	"github.com/dzhusipov/fleet-core/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID extracts and parses the :id path parameter. Returns uuid.Nil and
// writes the response on failure.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service and repository errors onto the HTTP error
// taxonomy: 404 for missing rows, 409 for conflicts, 422 for closed-enum
// violations, 500 for everything else.
func respondError(c *gin.Context, err error) {
	var enumErr *service.InvalidEnumError
	var mileageErr *service.MileageDecreaseError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Record not found"))
	case errors.As(err, &enumErr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{enumErr.Field: "invalid value"}))
	case errors.As(err, &mileageErr):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDuplicatePlate),
		errors.Is(err, service.ErrDuplicateVIN),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrTerminalStatus):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.Is(err, service.ErrUserInactive):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}

// currentUserID returns the authenticated user's id, or nil on public routes.
func currentUserID(c *gin.Context) *uuid.UUID {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return nil
	}
	id := claims.UserID
	return &id
}

// parseReportQuery validates the common report filters: an optional ISO date
// window and an optional vehicle scope. Returns false after writing the
// response when a value does not parse.
func parseReportQuery(c *gin.Context) (from, to time.Time, vehicleID *uuid.UUID, ok bool) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	const layout = "2006-01-02"
	var err error
	if q.StartDate != "" {
		if from, err = time.Parse(layout, q.StartDate); err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"start_date": "expected YYYY-MM-DD"}))
			return
		}
	}
	if q.EndDate != "" {
		if to, err = time.Parse(layout, q.EndDate); err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"end_date": "expected YYYY-MM-DD"}))
			return
		}
	}
	// An end date before the start date is applied literally: the window
	// matches nothing and the report comes back empty.
	if q.VehicleID != "" {
		id, perr := uuid.Parse(q.VehicleID)
		if perr != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"vehicle_id": "invalid UUID"}))
			return
		}
		vehicleID = &id
	}
	ok = true
	return
}
