package v1

import (
	"net/http"

	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/rbac"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers user management routes. The /users/me routes
// must be registered before /users/:userId so gin does not treat "me" as
// an ID parameter.
func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase, rights *rbac.Table) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.POST("", middleware.RequireRight(rights, rbac.RightManageUsers), handler.Create)
		users.GET("", middleware.RequireRight(rights, rbac.RightGetUsers), handler.List)

		users.GET("/me", handler.GetMe)
		users.PATCH("/me", handler.UpdateMe)
		users.DELETE("/me", handler.DeleteMe)

		users.GET("/:userId", middleware.RequireRight(rights, rbac.RightGetUsers), handler.Get)
		users.PATCH("/:userId", middleware.RequireRight(rights, rbac.RightManageUsers), handler.Update)
		users.DELETE("/:userId", middleware.RequireRight(rights, rbac.RightManageUsers), handler.Delete)
	}
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,valid_name,max=50"`
	LastName  string `json:"last_name" binding:"required,valid_name,max=50"`
	Username  string `json:"username" binding:"required,alphanum,min=3,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Role      string `json:"role" binding:"required,oneof=CANDIDATE RECRUITER ADMIN"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,valid_name,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,valid_name,max=50"`
	Username  *string `json:"username" binding:"omitempty,alphanum,min=3,max=30"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
}

func (r *UpdateUserRequest) toPatch() *domain.UserUpdate {
	return &domain.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// Create godoc
// @Summary      Create a user
// @Description  Admin-only creation of accounts with any role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "User JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /users [post]
// @Security     BearerAuth
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	user := &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Role:      req.Role,
	}

	created, err := h.userUC.CreateUser(c.Request.Context(), user, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", created)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        name      query     string  false  "Name search"
// @Param        role      query     string  false  "Role filter"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Param        sortBy    query     string  false  "Sort field"
// @Param        sortType  query     string  false  "asc or desc"
// @Success      200       {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	filter := domain.UserFilter{
		Name: c.Query("name"),
		Role: c.Query("role"),
	}
	opts := listOptionsFromQuery(c)

	users, total, err := h.userUC.ListUsers(c.Request.Context(), filter, opts)
	if err != nil {
		c.Error(err)
		return
	}

	norm := opts.Normalize()
	response.Paginated(c, http.StatusOK, "User list", users, total, norm.Page, norm.Limit)
}

// GetMe godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.userUC.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

// UpdateMe godoc
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateUserRequest  true  "Patch JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.userUC.UpdateUser(c.Request.Context(), userID, req.toPatch())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User updated", user)
}

// DeleteMe godoc
// @Summary      Delete the authenticated user's account
// @Description  Recruiter accounts are anonymized and retired; candidate accounts and their applications are removed. Admin accounts cannot be deleted.
// @Tags         users
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if _, err := h.userUC.DeleteUser(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Get godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /users/{userId} [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.userUC.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

// Update godoc
// @Summary      Update a user by ID
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path      int                true  "User ID"
// @Param        body    body      UpdateUserRequest  true  "Patch JSON"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /users/{userId} [patch]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	user, err := h.userUC.UpdateUser(c.Request.Context(), userID, req.toPatch())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User updated", user)
}

// Delete godoc
// @Summary      Delete a user by ID
// @Tags         users
// @Param        userId  path  int  true  "User ID"
// @Success      204     "No Content"
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /users/{userId} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if _, err := h.userUC.DeleteUser(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
