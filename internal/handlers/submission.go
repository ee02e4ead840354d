package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/imaging-leads/internal/export"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/internal/review"
	"github.com/umalmyha/imaging-leads/internal/service"
)

type reviewQuery struct {
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,oneof=all pending processed engaged"`
	Type   string `query:"type"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Sort   string `query:"sort" validate:"omitempty,oneof=asc desc"`
}

func (q *reviewQuery) filter() review.Filter {
	return review.Filter{
		Search:      q.Search,
		Status:      q.Status,
		ImagingType: q.Type,
		From:        q.From,
		To:          q.To,
		Sort:        review.SortDirection(q.Sort),
	}
}

type createSubmission struct {
	ZipCode     string       `json:"zip_code" validate:"required,zipcode"`
	Phone       string       `json:"phone" validate:"required"`
	ImagingType string       `json:"imaging_type" validate:"required"`
	FullName    *string      `json:"full_name"`
	BodyPart    *string      `json:"body_part"`
	HasOrder    *bool        `json:"has_order"`
	UtmSource   *string      `json:"utm_source"`
	Status      model.Status `json:"status" validate:"omitempty,oneof=pending processed engaged"`
	Notes       *string      `json:"notes"`
}

type editSubmission struct {
	Status  model.Status `json:"status" validate:"required,oneof=pending processed engaged"`
	Notes   *string      `json:"notes"`
	Version *int         `json:"version" validate:"omitempty,gt=0"`
}

type patchSubmission struct {
	Processed *bool   `json:"processed"`
	Engaged   *bool   `json:"engaged"`
	Notes     *string `json:"notes"`
	Version   *int    `json:"version" validate:"omitempty,gt=0"`
}

type cycleSubmission struct {
	Version *int `json:"version" validate:"omitempty,gt=0"`
}

type confirmDeletion struct {
	Ticket string `query:"ticket" validate:"required,uuid"`
}

// SubmissionHTTPHandler is http handler for staff submissions endpoint
type SubmissionHTTPHandler struct {
	reviewSvc    service.ReviewService
	lifecycleSvc service.LifecycleService
}

// NewSubmissionHTTPHandler builds new SubmissionHTTPHandler
func NewSubmissionHTTPHandler(reviewSvc service.ReviewService, lifecycleSvc service.LifecycleService) *SubmissionHTTPHandler {
	return &SubmissionHTTPHandler{reviewSvc: reviewSvc, lifecycleSvc: lifecycleSvc}
}

// GetAll gets filtered submissions
// @Summary     Review submissions
// @Description Returns filtered and sorted submissions, stats over all submissions and present imaging types
// @Tags        submissions
// @Security    ApiKeyAuth
// @Produce     json
// @Param       search query    string false "Search in zip, phone, type, body part and notes"
// @Param       status query    string false "Status" Enums(all, pending, processed, engaged)
// @Param       type   query    string false "Imaging type or all"
// @Param       from   query    string false "First day, YYYY-MM-DD"
// @Param       to     query    string false "Last day, YYYY-MM-DD"
// @Param       sort   query    string false "Created at order" Enums(desc, asc)
// @Success     200    {object} reviewPage
// @Failure     400    {object} validation.PayloadError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/admin/submissions [get]
func (h *SubmissionHTTPHandler) GetAll(c echo.Context) error {
	f, err := h.bindFilter(c)
	if err != nil {
		return err
	}

	page, err := h.reviewSvc.Review(c.Request().Context(), f, time.Now())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &reviewPage{
		Submissions: newSubmissionRows(page.Rows),
		Stats:       page.Stats,
		Types:       page.Types,
	})
}

// Export exports filtered submissions
// @Summary     Export submissions
// @Description Streams filtered submissions as csv attachment
// @Tags        submissions
// @Security    ApiKeyAuth
// @Produce     text/csv
// @Param       search query    string false "Search in zip, phone, type, body part and notes"
// @Param       status query    string false "Status" Enums(all, pending, processed, engaged)
// @Param       type   query    string false "Imaging type or all"
// @Param       from   query    string false "First day, YYYY-MM-DD"
// @Param       to     query    string false "Last day, YYYY-MM-DD"
// @Param       sort   query    string false "Created at order" Enums(desc, asc)
// @Success     200    {string} file
// @Failure     400    {object} validation.PayloadError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/admin/submissions/export [get]
func (h *SubmissionHTTPHandler) Export(c echo.Context) error {
	f, err := h.bindFilter(c)
	if err != nil {
		return err
	}

	subs, err := h.reviewSvc.Filtered(c.Request().Context(), f)
	if err != nil {
		return err
	}

	loc := h.reviewSvc.Location()
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName(time.Now().In(loc))))
	res.WriteHeader(http.StatusOK)

	return export.WriteCSV(res, subs, loc)
}

// Get gets submission
// @Summary     Get single submission by id
// @Description Returns single submission with provided id
// @Tags        submissions
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id  path     int true "Submission id"
// @Success     200 {object} submission
// @Failure     400 {object} validation.PayloadError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/admin/submissions/{id} [get]
func (h *SubmissionHTTPHandler) Get(c echo.Context) error {
	id, err := submissionID(c)
	if err != nil {
		return err
	}

	subm, err := h.lifecycleSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSubmission(subm))
}

// Post creates submission
// @Summary     New submission
// @Description Creates submission on behalf of visitor with explicit status
// @Tags        submissions
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       createSubmission body  createSubmission true "Submission data"
// @Success     201           {object} submission
// @Failure     400           {object} validation.PayloadError
// @Failure     500           {object} echo.HTTPError
// @Router      /api/admin/submissions [post]
func (h *SubmissionHTTPHandler) Post(c echo.Context) error {
	var cs createSubmission
	if err := c.Bind(&cs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&cs); err != nil {
		return err
	}

	subm, err := h.lifecycleSvc.Create(c.Request().Context(), service.DirectCreate{
		ZipCode:     cs.ZipCode,
		Phone:       cs.Phone,
		ImagingType: cs.ImagingType,
		FullName:    cs.FullName,
		BodyPart:    cs.BodyPart,
		HasOrder:    cs.HasOrder,
		UtmSource:   cs.UtmSource,
		Status:      cs.Status,
		Notes:       cs.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newSubmission(subm))
}

// Put edits submission
// @Summary     Edit submission
// @Description Sets status directly, rewrites notes if provided, empty notes clear them
// @Tags        submissions
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id             path     int            true "Submission id"
// @Param       editSubmission body     editSubmission true "Status and notes"
// @Success     200            {object} submission
// @Failure     400            {object} validation.PayloadError
// @Failure     404            {object} echo.HTTPError
// @Failure     409            {object} echo.HTTPError
// @Failure     500            {object} echo.HTTPError
// @Router      /api/admin/submissions/{id} [put]
func (h *SubmissionHTTPHandler) Put(c echo.Context) error {
	id, err := submissionID(c)
	if err != nil {
		return err
	}

	var es editSubmission
	if err := c.Bind(&es); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&es); err != nil {
		return err
	}

	subm, err := h.lifecycleSvc.Edit(c.Request().Context(), id, service.EditRequest{
		Status:          es.Status,
		Notes:           es.Notes,
		ExpectedVersion: es.Version,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSubmission(subm))
}

// Patch partially updates submission
// @Summary     Patch submission
// @Description Updates only provided flags and notes, engaged submission is always processed
// @Tags        submissions
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id              path     int             true "Submission id"
// @Param       patchSubmission body     patchSubmission true "Flags and notes"
// @Success     200             {object} submission
// @Failure     400             {object} validation.PayloadError
// @Failure     404             {object} echo.HTTPError
// @Failure     409             {object} echo.HTTPError
// @Failure     500             {object} echo.HTTPError
// @Router      /api/admin/submissions/{id} [patch]
func (h *SubmissionHTTPHandler) Patch(c echo.Context) error {
	id, err := submissionID(c)
	if err != nil {
		return err
	}

	var ps patchSubmission
	if err := c.Bind(&ps); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ps); err != nil {
		return err
	}

	subm, err := h.lifecycleSvc.Patch(c.Request().Context(), id, service.PatchRequest{
		Processed:       ps.Processed,
		Engaged:         ps.Engaged,
		Notes:           ps.Notes,
		ExpectedVersion: ps.Version,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSubmission(subm))
}

// Cycle moves submission to the next status
// @Summary     Cycle submission status
// @Description Moves submission pending -> processed -> engaged -> pending
// @Tags        submissions
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id              path     int             true  "Submission id"
// @Param       cycleSubmission body     cycleSubmission false "Expected version"
// @Success     200             {object} submission
// @Failure     400             {object} validation.PayloadError
// @Failure     404             {object} echo.HTTPError
// @Failure     409             {object} echo.HTTPError
// @Failure     500             {object} echo.HTTPError
// @Router      /api/admin/submissions/{id}/cycle [post]
func (h *SubmissionHTTPHandler) Cycle(c echo.Context) error {
	id, err := submissionID(c)
	if err != nil {
		return err
	}

	var cs cycleSubmission
	if err := c.Bind(&cs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&cs); err != nil {
		return err
	}

	subm, err := h.lifecycleSvc.Cycle(c.Request().Context(), id, cs.Version)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSubmission(subm))
}

// RequestDeletion requests submission deletion
// @Summary     Request deletion
// @Description Issues short-living ticket, which must be sent to confirm deletion
// @Tags        submissions
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id  path     int true "Submission id"
// @Success     201 {object} cache.DeletionTicket
// @Failure     400 {object} validation.PayloadError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/admin/submissions/{id}/deletion [post]
func (h *SubmissionHTTPHandler) RequestDeletion(c echo.Context) error {
	id, err := submissionID(c)
	if err != nil {
		return err
	}

	t, err := h.lifecycleSvc.RequestDelete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

// DeleteByID deletes submission
// @Summary     Delete submission by id
// @Description Deletes submission, ticket issued by deletion request is required
// @Tags        submissions
// @Security    ApiKeyAuth
// @Param       id     path   int    true "Submission id"
// @Param       ticket query  string true "Deletion ticket" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     400    {object} validation.PayloadError
// @Failure     404    {object} echo.HTTPError
// @Failure     412    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/admin/submissions/{id} [delete]
func (h *SubmissionHTTPHandler) DeleteByID(c echo.Context) error {
	id, err := submissionID(c)
	if err != nil {
		return err
	}

	var cd confirmDeletion
	if err := c.Bind(&cd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&cd); err != nil {
		return err
	}

	if err := h.lifecycleSvc.ConfirmDelete(c.Request().Context(), id, cd.Ticket); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelDeletion cancels requested deletion
// @Summary     Cancel deletion
// @Description Drops deletion ticket, submission is kept untouched
// @Tags        submissions
// @Security    ApiKeyAuth
// @Param       id     path int    true "Submission id"
// @Param       ticket path string true "Deletion ticket" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     400    {object} validation.PayloadError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/admin/submissions/{id}/deletion/{ticket} [delete]
func (h *SubmissionHTTPHandler) CancelDeletion(c echo.Context) error {
	id, err := submissionID(c)
	if err != nil {
		return err
	}

	if err := h.lifecycleSvc.CancelDelete(c.Request().Context(), id, c.Param("ticket")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SubmissionHTTPHandler) bindFilter(c echo.Context) (review.Filter, error) {
	var q reviewQuery
	if err := c.Bind(&q); err != nil {
		return review.Filter{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return review.Filter{}, err
	}
	return q.filter(), nil
}
