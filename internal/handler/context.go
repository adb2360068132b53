package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/service"
)

// AdminContextKey is where the auth middleware stores the resolved admin.
const AdminContextKey = "admin"

// CurrentAdmin returns the admin resolved by the auth middleware. It is only
// meaningful behind RequireAdmin.
func CurrentAdmin(c echo.Context) *model.Admin {
	admin, _ := c.Get(AdminContextKey).(*model.Admin)
	return admin
}

// actionContext builds the audit provenance for the current request.
func actionContext(c echo.Context) service.ActionContext {
	return service.NewActionContext(CurrentAdmin(c).ID, c.Request())
}

// pageParam reads the 1-based page query parameter, defaulting to 1.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// formID reads a numeric form field.
func formID(c echo.Context, field string) (uint, error) {
	id, err := strconv.Atoi(c.FormValue(field))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+field)
	}
	return uint(id), nil
}

// domainError translates a service error into the structured JSON payload
// the mutation endpoints return.
func domainError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		// unexpected failures propagate to echo's error handler
		return err
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pageNumbers enumerates 1..totalPages for the pagination nav.
func pageNumbers(p model.Pagination) []int {
	nums := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		nums = append(nums, i)
	}
	return nums
}
