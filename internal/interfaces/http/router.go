package http

import (
	"github.com/gofiber/fiber/v2"

	appclearing "github.com/jhoicas/Compensa-api/internal/application/clearing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger     *appclearing.LedgerUseCase
	Overview   *appclearing.OverviewUseCase
	Inclusion  *appclearing.InclusionUseCase
	Submission *appclearing.SubmissionUseCase
	Visits     *appclearing.VisitUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Doble tick sobre facturas (protegido)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Ledger)
	invoices.Post("/:id/submit", invoiceHandler.Submit)
	invoices.Post("/:id/reject", invoiceHandler.Reject)

	// Superficie de compensación (protegido)
	clearingHandler := NewClearingHandler(deps.Overview, deps.Inclusion, deps.Submission, deps.Visits)
	cl := api.Group("/clearing")
	cl.Get("/overview", clearingHandler.Overview)
	cl.Get("/invoices", clearingHandler.Invoices)
	cl.Post("/invoices/:id/include", clearingHandler.Include)
	cl.Post("/invoices/:id/exclude", clearingHandler.Exclude)
	cl.Post("/include-all", clearingHandler.IncludeAll)
	cl.Post("/exclude-all", clearingHandler.ExcludeAll)
	cl.Post("/submit", clearingHandler.Submit)
	cl.Delete("/submission", clearingHandler.Withdraw)
	cl.Get("/new-count", clearingHandler.NewCount)

	// Visitas por superficie (protegido)
	api.Post("/visits/:surface", clearingHandler.MarkVisited)
}
