package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/form/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type FormHandler struct {
	manageFormsUC       *usecases.ManageFormsUseCase
	getPublicFormUC     *usecases.GetPublicFormUseCase
	submitFormUC        *usecases.SubmitFormUseCase
	manageSubmissionsUC *usecases.ManageSubmissionsUseCase
	manageNewsletterUC  *usecases.ManageNewsletterUseCase
	logger              logger.Interface
}

func NewFormHandler(
	manageFormsUC *usecases.ManageFormsUseCase,
	getPublicFormUC *usecases.GetPublicFormUseCase,
	submitFormUC *usecases.SubmitFormUseCase,
	manageSubmissionsUC *usecases.ManageSubmissionsUseCase,
	manageNewsletterUC *usecases.ManageNewsletterUseCase,
) *FormHandler {
	return &FormHandler{
		manageFormsUC:       manageFormsUC,
		getPublicFormUC:     getPublicFormUC,
		submitFormUC:        submitFormUC,
		manageSubmissionsUC: manageSubmissionsUC,
		manageNewsletterUC:  manageNewsletterUC,
		logger:              logger.NewLogger(),
	}
}

type CreateFormRequest struct {
	Slug              string   `json:"slug" binding:"required" validate:"required,max=100"`
	Name              string   `json:"name" binding:"required" validate:"required,max=100"`
	Title             string   `json:"title" validate:"max=200"`
	Description       string   `json:"description" validate:"max=500"`
	SubmitLabel       string   `json:"submit_label" validate:"max=50"`
	SuccessMessage    string   `json:"success_message" validate:"max=500"`
	EmailNotification bool     `json:"email_notification"`
	NotifyEmails      []string `json:"notify_emails" validate:"dive,email"`
	DynamicRecipients bool     `json:"dynamic_recipients"`
	SendConfirmation  bool     `json:"send_confirmation"`
	SubscribeField    string   `json:"subscribe_field" validate:"max=50"`
}

type UpdateFormRequest struct {
	Slug              string   `json:"slug" binding:"required" validate:"required,max=100"`
	Name              string   `json:"name" binding:"required" validate:"required,max=100"`
	Title             string   `json:"title" validate:"max=200"`
	Description       string   `json:"description" validate:"max=500"`
	SubmitLabel       string   `json:"submit_label" validate:"max=50"`
	SuccessMessage    string   `json:"success_message" validate:"max=500"`
	EmailNotification bool     `json:"email_notification"`
	NotifyEmails      []string `json:"notify_emails" validate:"dive,email"`
	DynamicRecipients bool     `json:"dynamic_recipients"`
	SendConfirmation  bool     `json:"send_confirmation"`
	SubscribeField    string   `json:"subscribe_field" validate:"max=50"`
	IsActive          *bool    `json:"is_active"`
}

type FormFieldRequest struct {
	Type        string   `json:"type" binding:"required" validate:"required,oneof=text email phone url number textarea select checkbox"`
	Name        string   `json:"name" binding:"required" validate:"required,max=50"`
	Label       string   `json:"label" binding:"required" validate:"required,max=100"`
	Placeholder string   `json:"placeholder" validate:"max=200"`
	HelpText    string   `json:"help_text" validate:"max=500"`
	IsRequired  bool     `json:"is_required"`
	SortOrder   int      `json:"sort_order"`
	Options     []string `json:"options"`
}

type ReplaceFieldsRequest struct {
	Fields []FormFieldRequest `json:"fields" binding:"required" validate:"dive"`
}

type SubmitFormRequest struct {
	FormSlug  string            `json:"form_slug" binding:"required"`
	Values    map[string]string `json:"values" binding:"required"`
	SourceURL string            `json:"source_url"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var req CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageFormsUC.Create(c.Request.Context(), usecases.CreateFormCommand{
		Slug:              req.Slug,
		Name:              req.Name,
		Title:             req.Title,
		Description:       req.Description,
		SubmitLabel:       req.SubmitLabel,
		SuccessMessage:    req.SuccessMessage,
		EmailNotification: req.EmailNotification,
		NotifyEmails:      req.NotifyEmails,
		DynamicRecipients: req.DynamicRecipients,
		SendConfirmation:  req.SendConfirmation,
		SubscribeField:    req.SubscribeField,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Form created successfully")
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixForm, "form")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageFormsUC.Update(c.Request.Context(), usecases.UpdateFormCommand{
		SID:               sid,
		Slug:              req.Slug,
		Name:              req.Name,
		Title:             req.Title,
		Description:       req.Description,
		SubmitLabel:       req.SubmitLabel,
		SuccessMessage:    req.SuccessMessage,
		EmailNotification: req.EmailNotification,
		NotifyEmails:      req.NotifyEmails,
		DynamicRecipients: req.DynamicRecipients,
		SendConfirmation:  req.SendConfirmation,
		SubscribeField:    req.SubscribeField,
		IsActive:          req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Form updated successfully", result)
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixForm, "form")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageFormsUC.Delete(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FormHandler) GetForm(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixForm, "form")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageFormsUC.Get(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FormHandler) ListForms(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	result, err := h.manageFormsUC.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FormHandler) ReplaceFields(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixForm, "form")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplaceFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for replace form fields", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	inputs := make([]usecases.FieldInput, 0, len(req.Fields))
	for _, field := range req.Fields {
		inputs = append(inputs, usecases.FieldInput{
			Type:        field.Type,
			Name:        field.Name,
			Label:       field.Label,
			Placeholder: field.Placeholder,
			HelpText:    field.HelpText,
			IsRequired:  field.IsRequired,
			SortOrder:   field.SortOrder,
			Options:     field.Options,
		})
	}

	result, err := h.manageFormsUC.ReplaceFields(c.Request.Context(), sid, inputs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Form fields updated successfully", result)
}

// GetPublicForm serves a form definition for rendering on the public site.
func (h *FormHandler) GetPublicForm(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.getPublicFormUC.Execute(c.Request.Context(), slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SubmitForm accepts a public submission. A failed notification email does
// not fail the request; its status rides along in the response.
func (h *FormHandler) SubmitForm(c *gin.Context) {
	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for form submission", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.submitFormUC.Execute(c.Request.Context(), usecases.SubmitFormCommand{
		FormSlug:  req.FormSlug,
		Values:    req.Values,
		SourceURL: req.SourceURL,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, result.Message)
}

func (h *FormHandler) ListSubmissions(c *gin.Context) {
	formSID, err := utils.ParseSIDParam(c, "id", id.PrefixForm, "form")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, pageSize := utils.ParsePagination(c)
	items, total, err := h.manageSubmissionsUC.List(c.Request.Context(), formSID, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

func (h *FormHandler) GetSubmission(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFormSubmission, "submission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageSubmissionsUC.Get(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FormHandler) DeleteSubmission(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFormSubmission, "submission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageSubmissionsUC.Delete(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FormHandler) ListNewsletterSubscribers(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.manageNewsletterUC.List(c.Request.Context(), activeOnly, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

func (h *FormHandler) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.manageNewsletterUC.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Unsubscribed successfully", nil)
}
