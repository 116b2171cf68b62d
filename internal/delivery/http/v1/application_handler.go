package v1

import (
	"io"
	"net/http"

	"job-board-backend/config"
	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/rbac"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/storage"
	"job-board-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	maxResumeSize int64
}

// NewApplicationHandler registers application routes nested under jobs
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, rights *rbac.Table, cfg *config.Config) {
	handler := &ApplicationHandler{
		applicationUC: applicationUC,
		maxResumeSize: cfg.MaxResumeSize,
	}

	apps := protected.Group("/jobs/:jobId/applications")
	{
		apps.POST("", middleware.RequireRight(rights, rbac.RightApplyJob), handler.Apply)
		apps.GET("", middleware.RequireRight(rights, rbac.RightGetApplications), handler.List)
		apps.GET("/:applicationId", middleware.RequireRight(rights, rbac.RightGetApplication), handler.Get)
		apps.PATCH("/:applicationId", middleware.RequireRight(rights, rbac.RightReviewApplication), handler.Review)
	}
}

type ReviewApplicationRequest struct {
	Status     string   `json:"status" binding:"required,oneof=pending accepted rejected"`
	Evaluation *float64 `json:"evaluation" binding:"omitempty,gte=0,lte=100"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application as multipart form data: a "resume" PDF file (max 5 MiB) and an optional "cover_letter" text field
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobId         path      int     true   "Job ID"
// @Param        resume        formData  file    true   "Resume PDF"
// @Param        cover_letter  formData  string  false  "Cover letter"
// @Success      201           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Router       /jobs/{jobId}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("A resume file is required"))
		return
	}
	if fileHeader.Size > h.maxResumeSize {
		c.Error(apperror.BadRequest("Resume file exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read the uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxResumeSize+1))
	if err != nil {
		c.Error(apperror.BadRequest("Could not read the uploaded file"))
		return
	}
	if int64(len(data)) > h.maxResumeSize {
		c.Error(apperror.BadRequest("Resume file exceeds the maximum allowed size"))
		return
	}

	// All file validation happens here, before any service logic
	result := storage.ValidateResume(fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"), h.maxResumeSize)
	if !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	candidateID := c.GetInt64(string(domain.KeyUserID))
	coverLetter := c.PostForm("cover_letter")

	app, err := h.applicationUC.Apply(c.Request.Context(), jobID, candidateID, coverLetter, &domain.ResumeUpload{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// List godoc
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Param        jobId     path      int     true   "Job ID"
// @Param        status    query     string  false  "Status filter"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Param        sortBy    query     string  false  "Sort field"
// @Param        sortType  query     string  false  "asc or desc"
// @Success      200       {object}  response.Response
// @Router       /jobs/{jobId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	filter := domain.ApplicationFilter{Status: c.Query("status")}
	opts := listOptionsFromQuery(c)

	apps, total, err := h.applicationUC.ListByJob(c.Request.Context(), jobID, filter, opts)
	if err != nil {
		c.Error(err)
		return
	}

	norm := opts.Normalize()
	response.Paginated(c, http.StatusOK, "Application list", apps, total, norm.Page, norm.Limit)
}

// Get godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Param        jobId          path      int  true  "Job ID"
// @Param        applicationId  path      int  true  "Application ID"
// @Success      200            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /jobs/{jobId}/applications/{applicationId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId")
	if !ok {
		return
	}

	app, err := h.applicationUC.GetByJob(c.Request.Context(), jobID, applicationID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// Review godoc
// @Summary      Review an application
// @Description  Update application status and optionally record an evaluation score
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId          path      int                       true  "Job ID"
// @Param        applicationId  path      int                       true  "Application ID"
// @Param        body           body      ReviewApplicationRequest  true  "Review JSON"
// @Success      200            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /jobs/{jobId}/applications/{applicationId} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Review(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId")
	if !ok {
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	app, err := h.applicationUC.Review(c.Request.Context(), jobID, applicationID, &domain.ApplicationReview{
		Status:     req.Status,
		Evaluation: req.Evaluation,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application reviewed", app)
}
