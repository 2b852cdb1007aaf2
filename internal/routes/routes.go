package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	"github.com/sention-aktivitus/klientportal-api/internal/config"
	"github.com/sention-aktivitus/klientportal-api/internal/handlers"
	infraRepo "github.com/sention-aktivitus/klientportal-api/internal/infra/repository"
	"github.com/sention-aktivitus/klientportal-api/internal/middleware"
	"github.com/sention-aktivitus/klientportal-api/internal/storage"
	ucNote "github.com/sention-aktivitus/klientportal-api/internal/usecase/note"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	blobs storage.BlobStore,
	queue storage.DeletionQueue,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	noteRepo := infraRepo.NewNoteGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — NOTES
	// ======================================================
	createNoteUC := ucNote.NewCreateNote(
		noteRepo,
		auditDispatcher,
	)

	deleteNoteUC := ucNote.NewDeleteNote(
		noteRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, auditDispatcher)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher, queue)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg.Timezone)
	calendarHandler := handlers.NewCalendarHandler(db, cfg.Timezone)

	noteHandler := handlers.NewNoteHandler(db, noteRepo, createNoteUC, deleteNoteUC, cfg.Timezone)
	linkHandler := handlers.NewLinkHandler(db, auditDispatcher)
	documentHandler := handlers.NewDocumentHandler(db, blobs, queue, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/dashboard", dashboardHandler.Get)
			secured.GET("/me/calendar", calendarHandler.Get)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)
			secured.PATCH("/me/clients/:id/appointments/:kind", clientHandler.UpdateAppointment)

			// ------------------------------
			// NOTES / LINKS / DOCUMENTS
			// ------------------------------
			secured.GET("/me/clients/:id/notes", noteHandler.List)
			secured.POST("/me/clients/:id/notes", noteHandler.Create)
			secured.DELETE("/me/clients/:id/notes/:noteId", noteHandler.Delete)

			secured.GET("/me/clients/:id/links", linkHandler.List)
			secured.POST("/me/clients/:id/links", linkHandler.Create)
			secured.DELETE("/me/clients/:id/links/:linkId", linkHandler.Delete)

			secured.GET("/me/clients/:id/documents", documentHandler.List)
			secured.POST("/me/clients/:id/documents", documentHandler.Upload)
			secured.GET("/me/clients/:id/documents/:docId/url", documentHandler.DownloadURL)
			secured.DELETE("/me/clients/:id/documents/:docId", documentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
