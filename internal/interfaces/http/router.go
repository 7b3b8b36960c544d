package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/auth"
	"github.com/smart-asset/smart-asset-api/internal/application/billing"
	"github.com/smart-asset/smart-asset-api/internal/application/request"
	"github.com/smart-asset/smart-asset-api/internal/application/usecase"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TokenUC    *auth.TokenUseCase
	UserUC     *usecase.UserUseCase
	AssetUC    *usecase.AssetUseCase
	NoticeUC   *usecase.NoticeUseCase
	RequestUC  *request.UseCase
	PaymentUC  *billing.PaymentUseCase
	HandoverUC *billing.HandoverPDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. La protección es por ruta y
// explícita: cada ruta decide su cadena de middlewares, de modo que
// cerrar una ruta abierta es un cambio de una línea.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.TokenUC)
	userHandler := NewUserHandler(deps.UserUC)
	assetHandler := NewAssetHandler(deps.AssetUC)
	noticeHandler := NewNoticeHandler(deps.NoticeUC)
	requestHandler := NewRequestHandler(deps.RequestUC, deps.HandoverUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)

	authenticated := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	app.Post("/jwt", authHandler.IssueToken)

	// Identidad
	users := app.Group("/users")
	users.Get("/role/:email", userHandler.GetRole)
	users.Get("/user/:email", userHandler.GetByEmail)
	users.Post("/hr", userHandler.UpsertHR)
	users.Post("/employee", userHandler.RegisterEmployee)
	users.Patch("/update", userHandler.UpdateProfile)
	users.Get("/company", userHandler.ListCompanies)
	users.Get("/employees-request/:email", userHandler.ListUnverifiedEmployees)
	users.Get("/all-employees/:email", authenticated, RequireRole(entity.RoleHR, deps.UserUC), userHandler.ListAllEmployees)
	users.Put("/verified_employee/:id", userHandler.ToggleVerified)
	app.Delete("/employee/remove/:id", userHandler.RemoveEmployee)

	// Inventario
	app.Post("/assets", assetHandler.Create)
	app.Get("/assets", assetHandler.List)
	app.Get("/assets-search", assetHandler.Search)
	app.Get("/assets/:id", assetHandler.GetByID)
	app.Patch("/assets/:id", assetHandler.Update)
	app.Delete("/assets/:id", assetHandler.Delete)

	// Ciclo de vida de solicitudes
	app.Post("/request", authenticated, RequireRole(entity.RoleEmployee, deps.UserUC), requestHandler.Submit)
	app.Get("/request", requestHandler.ListByRequestor)
	app.Get("/request-search", requestHandler.SearchByRequestor)
	app.Get("/request-stat", requestHandler.Stats)
	app.Get("/request/requested", requestHandler.ListPending)
	app.Get("/request/search", requestHandler.SearchByAsset)
	app.Get("/request/print/:id", requestHandler.PrintHandover)
	app.Patch("/request/approved/:id", requestHandler.Approve)
	app.Patch("/request/rejected/:id", requestHandler.Reject)
	app.Put("/request/return/:id", requestHandler.Return)
	app.Delete("/request/cancel/:id", requestHandler.Cancel)
	app.Delete("/request/:id", requestHandler.Delete)

	// Aviso por empresa
	app.Patch("/notice", noticeHandler.Upsert)
	app.Get("/notice", noticeHandler.Get)

	// Pagos
	app.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)
}
