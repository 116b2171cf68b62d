package v1

import (
	"net/http"
	"strconv"
	"time"

	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/rbac"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes. Every route is gated on the role
// rights table before the handler runs.
func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, rights *rbac.Table) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", middleware.RequireRight(rights, rbac.RightManageJobs), handler.Create)
		jobs.GET("", middleware.RequireRight(rights, rbac.RightGetJobs), handler.List)
		jobs.GET("/:jobId", middleware.RequireRight(rights, rbac.RightGetJobs), handler.GetDetails)
		jobs.PATCH("/:jobId", middleware.RequireRight(rights, rbac.RightManageJobs), handler.Update)
		jobs.DELETE("/:jobId", middleware.RequireRight(rights, rbac.RightManageJobs), handler.Delete)
	}
}

type CreateJobRequest struct {
	Title          string    `json:"title" binding:"required,max=128"`
	Description    string    `json:"description" binding:"required"`
	Location       string    `json:"location" binding:"required,max=128"`
	EmploymentType string    `json:"employment_type" binding:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	Deadline       time.Time `json:"deadline" binding:"required,future"`
}

type UpdateJobRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=1,max=128"`
	Description    *string    `json:"description" binding:"omitempty,min=1"`
	Location       *string    `json:"location" binding:"omitempty,min=1,max=128"`
	EmploymentType *string    `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	Deadline       *time.Time `json:"deadline" binding:"omitempty,future"`
	IsClosed       *bool      `json:"is_closed"`
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

func listOptionsFromQuery(c *gin.Context) domain.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return domain.ListOptions{
		Page:     page,
		Limit:    limit,
		SortBy:   c.Query("sortBy"),
		SortType: c.DefaultQuery("sortType", domain.SortDesc),
	}
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting owned by the calling recruiter
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	job := &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Deadline:       req.Deadline,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), actorID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List jobs
// @Description  List jobs with filters and pagination. Candidates only see open jobs with a future deadline.
// @Tags         jobs
// @Produce      json
// @Param        title           query     string  false  "Title filter"
// @Param        location        query     string  false  "Location filter"
// @Param        employmentType  query     string  false  "Employment type filter"
// @Param        isClosed        query     bool    false  "Closed filter (ignored for candidates)"
// @Param        page            query     int     false  "Page number"
// @Param        limit           query     int     false  "Page size"
// @Param        sortBy          query     string  false  "Sort field"
// @Param        sortType        query     string  false  "asc or desc"
// @Success      200             {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Title:          c.Query("title"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("employmentType"),
	}
	if raw, ok := c.GetQuery("isClosed"); ok {
		if closed, err := strconv.ParseBool(raw); err == nil {
			filter.IsClosed = &closed
		}
	}

	opts := listOptionsFromQuery(c)
	role := c.GetString(string(domain.KeyUserRole))

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filter, role, opts)
	if err != nil {
		c.Error(err)
		return
	}

	norm := opts.Normalize()
	response.Paginated(c, http.StatusOK, "Job list", jobs, total, norm.Page, norm.Limit)
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Partially update a job posting (owning recruiter only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int               true  "Job ID"
// @Param        job    body      UpdateJobRequest  true  "Partial job JSON"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	patch := &domain.JobUpdate{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Deadline:       req.Deadline,
		IsClosed:       req.IsClosed,
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, patch, actorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Permanently delete a job posting (owning recruiter only)
// @Tags         jobs
// @Param        jobId  path  int  true  "Job ID"
// @Success      204    "No Content"
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	if err := h.jobUC.DeleteJob(c.Request.Context(), id, actorID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
