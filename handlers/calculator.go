package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cogscalculator/services"
	"cogscalculator/templates"
)

// HandleCalculatorPage renders the empty calculator on the direct method.
func HandleCalculatorPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.NewCalculatorData(services.NewSession())
		return templates.CalculatorPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleCalculate computes the total for the submitted method and inputs.
func HandleCalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := GetSession(e.Request)
		total := s.Calculate()

		app.Logger().Debug("cogs calculated",
			"method", string(s.Method),
			"total", total,
		)

		SetToast(e, "success", "COGS calculated")
		return renderCalculator(e, s)
	}
}

// HandleReset clears every input and the total, keeping the selected method.
func HandleReset(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := GetSession(e.Request)
		s.Reset()
		return renderCalculator(e, s)
	}
}

// renderCalculator swaps only the calculator card for HTMX requests and
// renders the whole page otherwise.
func renderCalculator(e *core.RequestEvent, s *services.Session) error {
	data := templates.NewCalculatorData(s)
	if isHTMX(e) {
		return templates.CalculatorContent(data).Render(e.Request.Context(), e.Response)
	}
	return templates.CalculatorPage(data).Render(e.Request.Context(), e.Response)
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}
