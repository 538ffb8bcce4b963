// README: JSON API exposing the demo values and a single prediction.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxifare/internal/modules/form"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/modules/ride"
)

type PredictHandler struct {
	shell *form.Shell
}

func NewPredictHandler(shell *form.Shell) *PredictHandler {
	return &PredictHandler{shell: shell}
}

type outcomeResp struct {
	Kind    pricing.Kind `json:"kind"`
	Fare    *float64     `json:"fare,omitempty"`
	Display string       `json:"display,omitempty"`
	Message string       `json:"message,omitempty"`
	Banner  string       `json:"banner"`
}

type predictResp struct {
	Request ride.PredictionRequest `json:"request"`
	Raw     pricing.Response       `json:"raw"`
	Outcome outcomeResp            `json:"outcome"`
}

func newOutcomeResp(o pricing.Outcome) outcomeResp {
	out := outcomeResp{Kind: o.Kind, Message: o.Message, Banner: o.Banner()}
	if o.Kind == pricing.KindSuccess {
		fare := o.Fare.Dollars()
		out.Fare = &fare
		out.Display = o.Fare.String()
	}
	return out
}

// Demo handles GET /api/demo.
func (h *PredictHandler) Demo(c *gin.Context) {
	writeJSON(c, http.StatusOK, formFromInput(ride.Demo()).toJSON())
}

// Predict handles GET /api/predict. Transport faults answer 502; every
// classified outcome answers 200.
func (h *PredictHandler) Predict(c *gin.Context) {
	var f rideForm
	if err := c.ShouldBindQuery(&f); err != nil {
		writeError(c, http.StatusBadRequest, "invalid query")
		return
	}
	in, err := f.toInput()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	view := h.shell.Predict(c.Request.Context(), &in)
	status := http.StatusOK
	if view.Result.Err != nil {
		status = http.StatusBadGateway
	}
	writeJSON(c, status, predictResp{
		Request: view.Result.Request,
		Raw:     view.Result.Raw,
		Outcome: newOutcomeResp(view.Result.Outcome),
	})
}
