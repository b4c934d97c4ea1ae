package api

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler holds the admin service dependency.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers handles GET /admin/users. The full list includes status but never
// password hashes.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}

// SetUserStatus handles PATCH /admin/users/:id/status?status=<value>.
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	status := domain.Status(c.Query("status"))
	if !domain.ValidStatus(status) {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("invalid status %q", status))
		return
	}

	userID := c.Param("id")
	if err := h.adminService.SetUserStatus(c.Request.Context(), userID, status); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update user status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User status updated to %s", status)})
}
