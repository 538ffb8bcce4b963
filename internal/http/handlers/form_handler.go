// README: HTML form handlers for the autofill and predict actions.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxifare/internal/http/middleware"
	"taxifare/internal/modules/form"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/modules/ride"
)

const (
	FormTemplate = "form.html"

	actionAutofill = "autofill"
	actionPredict  = "predict"
)

type FormHandler struct {
	shell *form.Shell
}

func NewFormHandler(shell *form.Shell) *FormHandler {
	return &FormHandler{shell: shell}
}

type formPage struct {
	Fields        rideForm
	MinPassengers int
	MaxPassengers int
	Raw           string
	Banner        string
	// BannerKind is "success", "error" or empty.
	BannerKind string
}

func newFormPage(f rideForm) formPage {
	return formPage{Fields: f, MinPassengers: ride.MinPassengers, MaxPassengers: ride.MaxPassengers}
}

func pageFromView(v form.View) formPage {
	page := newFormPage(formFromInput(v.Input))
	if v.Result == nil {
		return page
	}
	page.Raw = v.RawJSON()
	page.Banner = v.Result.Outcome.Banner()
	page.BannerKind = "error"
	if v.Result.Outcome.Kind == pricing.KindSuccess {
		page.BannerKind = "success"
	}
	return page
}

// Show handles GET /.
func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, FormTemplate, pageFromView(form.View{Input: h.shell.Defaults()}))
}

// Submit handles POST /; the pressed button arrives as the "action" field.
func (h *FormHandler) Submit(c *gin.Context) {
	var f rideForm
	if err := c.ShouldBind(&f); err != nil {
		h.renderError(c, f, "invalid form")
		return
	}

	switch action := c.PostForm("action"); action {
	case actionAutofill:
		var in ride.RideInput
		c.HTML(http.StatusOK, FormTemplate, pageFromView(h.shell.Autofill(&in)))
	case actionPredict:
		in, err := f.toInput()
		if err != nil {
			h.renderError(c, f, err.Error())
			return
		}
		view := h.shell.Predict(c.Request.Context(), &in)
		if view.Result.Err != nil {
			log.Printf("[FORM] action=predict request_id=%s err=%v", middleware.RequestIDFrom(c), view.Result.Err)
		}
		c.HTML(http.StatusOK, FormTemplate, pageFromView(view))
	default:
		h.renderError(c, f, "unknown action "+action)
	}
}

func (h *FormHandler) renderError(c *gin.Context, f rideForm, msg string) {
	page := newFormPage(f)
	page.Banner = msg
	page.BannerKind = "error"
	c.HTML(http.StatusBadRequest, FormTemplate, page)
}
