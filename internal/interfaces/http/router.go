package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/auth"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	OfficeUC     *usecase.OfficeUseCase
	LawyerUC     *usecase.LawyerUseCase
	ClientUC     *usecase.ClientUseCase
	CaseUC       *usecase.CaseUseCase
	SpecialtyUC  *usecase.SpecialtyUseCase
	ProfileUC    *usecase.CatalogUseCase
	PermissionUC *usecase.CatalogUseCase
	UserUC       *usecase.UserUseCase
	ParameterUC  *usecase.ParameterUseCase
	AuditUC      *usecase.AuditUseCase
	SeedUC       *usecase.SeedUseCase
	SeedsEnabled bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, /me protegido
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/auth/me", authHandler.Me)

	offices := protected.Group("/escritorios")
	officeHandler := NewOfficeHandler(deps.OfficeUC)
	offices.Get("/", officeHandler.List)
	offices.Post("/", officeHandler.Create)
	offices.Get("/:id", officeHandler.GetByID)
	offices.Put("/:id", officeHandler.Update)
	offices.Delete("/:id", officeHandler.Delete)

	lawyers := protected.Group("/advogados")
	lawyerHandler := NewLawyerHandler(deps.LawyerUC)
	lawyers.Get("/", lawyerHandler.List)
	lawyers.Post("/", lawyerHandler.Create)
	lawyers.Get("/:id", lawyerHandler.GetByID)
	lawyers.Get("/:id/escritorios", lawyerHandler.Offices)
	lawyers.Put("/:id", lawyerHandler.Update)
	lawyers.Delete("/:id", lawyerHandler.Delete)

	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// /sum antes de /:id
	cases := protected.Group("/causas-processos")
	caseHandler := NewCaseHandler(deps.CaseUC)
	cases.Get("/", caseHandler.List)
	cases.Post("/", caseHandler.Create)
	cases.Get("/sum", caseHandler.Sum)
	cases.Get("/:id", caseHandler.GetByID)
	cases.Get("/:id/pdf", caseHandler.PDF)
	cases.Put("/:id", caseHandler.Update)
	cases.Delete("/:id", caseHandler.Delete)

	catalog(protected, "/especialidades", NewCatalogHandler(deps.SpecialtyUC))
	catalog(protected, "/perfis", NewCatalogHandler(deps.ProfileUC))
	catalog(protected, "/permissoes", NewCatalogHandler(deps.PermissionUC))

	users := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	params := protected.Group("/parametros")
	paramHandler := NewParameterHandler(deps.ParameterUC)
	params.Get("/", paramHandler.List)
	params.Post("/", paramHandler.Upsert)
	params.Put("/:id", paramHandler.Update)
	params.Delete("/:id", paramHandler.Delete)

	protected.Get("/auditoria", NewAuditHandler(deps.AuditUC).List)

	// Seeds: solo con SEEDS_ENABLED y perfil ADMIN
	protected.Post("/seeds",
		RequireFeature("seeds", deps.SeedsEnabled),
		RequireRole(entity.RoleAdmin),
		NewSeedHandler(deps.SeedUC).Run,
	)
}

func catalog(r fiber.Router, prefix string, h *CatalogHandler) {
	g := r.Group(prefix)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
