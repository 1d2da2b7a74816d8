package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"cogscalculator/commands"
	"cogscalculator/config"
	"cogscalculator/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()

	app.RootCmd.AddCommand(commands.NewReportCommand(cfg))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		session := handlers.SessionMiddleware()

		// ── Calculator ───────────────────────────────────────────
		se.Router.GET("/", handlers.HandleCalculatorPage(app))
		se.Router.POST("/calculate", handlers.HandleCalculate(app)).BindFunc(session)
		se.Router.POST("/reset", handlers.HandleReset(app)).BindFunc(session)

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/export/pdf", handlers.HandleExportPDF(app, cfg)).BindFunc(session)
		se.Router.GET("/export/excel", handlers.HandleExportExcel(app, cfg)).BindFunc(session)
		se.Router.GET("/export/clipboard", handlers.HandleCopyText(app)).BindFunc(session)

		// ── Email ────────────────────────────────────────────────
		se.Router.GET("/email", handlers.HandleEmailForm(app)).BindFunc(session)
		se.Router.POST("/email", handlers.HandleEmailSend(app, cfg)).BindFunc(session)

		app.Logger().Info("cogs calculator routes registered",
			"emailDelivery", cfg.EmailDelivery,
			"reportFilename", cfg.ReportFilename,
		)

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
