package routes

import (
	"restaurant-foh-api-server/config"
	"restaurant-foh-api-server/internal/api/handlers"
	"restaurant-foh-api-server/internal/api/middleware"
	"restaurant-foh-api-server/internal/auth"
	"restaurant-foh-api-server/internal/engine"
	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/s3"
	"restaurant-foh-api-server/internal/session"
	"restaurant-foh-api-server/internal/socket"
	"restaurant-foh-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Stores bundles the repositories the handlers read and write.
type Stores struct {
	Menu     store.MenuStore
	Tables   store.TableStore
	Feedback store.FeedbackStore
	Managers store.ManagerStore
}

// SetupRouter wires every handler into the route tree.
func SetupRouter(
	cfg config.Config,
	stores Stores,
	orderEngine *engine.Engine,
	credentials *auth.CredentialService,
	managerLock session.ManagerLock,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	authHandler := &handlers.AuthHandler{Credentials: credentials, Lock: managerLock, Managers: stores.Managers, Cfg: cfg}
	menuHandler := &handlers.MenuHandler{Menu: stores.Menu}
	orderHandler := &handlers.OrderHandler{Engine: orderEngine, Hub: wsHub}
	tableHandler := &handlers.TableHandler{Tables: stores.Tables}
	staffHandler := &handlers.StaffHandler{Credentials: credentials}
	feedbackHandler := &handlers.FeedbackHandler{Feedback: stores.Feedback}
	statsHandler := &handlers.StatsHandler{Engine: orderEngine}
	uploadHandler := &handlers.UploadHandler{S3Uploader: s3Uploader}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		// Dashboard push feed.
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === ROUTES WITHOUT AUTHENTICATION ===

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			// Stale-lock recovery proves the manager secret instead
			// of a session.
			authGroup.POST("/manager/release", authHandler.ReleaseManagerLock)
		}

		// Customer surface: browsing, ordering and feedback need no
		// login.
		public := apiV1.Group("/")
		{
			public.GET("/menu", menuHandler.GetMenu)
			public.POST("/orders", orderHandler.PlaceOrder)
			public.POST("/feedback", feedbackHandler.CreateFeedback)
		}

		// === PROTECTED ROUTES ===

		authed := apiV1.Group("/auth")
		authed.Use(middleware.Authenticate())
		{
			authed.POST("/logout", authHandler.Logout)
			authed.GET("/session", authHandler.Session)
		}

		staffRoutes := apiV1.Group("/")
		staffRoutes.Use(middleware.Authenticate())
		{
			// Kitchen view; waiters may work it too.
			kitchen := staffRoutes.Group("/")
			kitchen.Use(middleware.Authorize(models.RoleKitchen, models.RoleWaiter))
			{
				kitchen.GET("/kitchen/orders", orderHandler.KitchenQueue)
				kitchen.POST("/orders/:id/ready", orderHandler.MarkReady)
			}

			// Availability is the one menu mutation the kitchen may
			// invoke; all other menu edits are manager-only.
			availability := staffRoutes.Group("/")
			availability.Use(middleware.Authorize(models.RoleKitchen, models.RoleManager))
			{
				availability.PATCH("/menu/:id/availability", menuHandler.SetAvailability)
			}

			waiter := staffRoutes.Group("/")
			waiter.Use(middleware.Authorize(models.RoleWaiter))
			{
				waiter.GET("/waiter/tables", orderHandler.WaiterTables)
				waiter.POST("/orders/:id/complete", orderHandler.MarkCompleted)
			}

			// Table registry is readable by floor staff.
			tablesRead := staffRoutes.Group("/")
			tablesRead.Use(middleware.Authorize(models.RoleWaiter, models.RoleManager))
			{
				tablesRead.GET("/tables", tableHandler.GetAllTables)
			}
		}

		manager := apiV1.Group("/manager")
		manager.Use(middleware.Authenticate())
		manager.Use(middleware.Authorize(models.RoleManager))
		{
			manager.GET("/overview", statsHandler.Overview)
			manager.GET("/orders", statsHandler.AllOrders)
			manager.GET("/feedback", feedbackHandler.GetAllFeedback)

			menu := manager.Group("/menu")
			{
				menu.POST("/", menuHandler.CreateMenuItem)
				menu.PUT("/:id", menuHandler.UpdateMenuItem)
				menu.DELETE("/:id", menuHandler.DeleteMenuItem)
				menu.POST("/image", uploadHandler.UploadMenuImage)
			}

			tables := manager.Group("/tables")
			{
				tables.POST("/", tableHandler.CreateTable)
				tables.GET("/", tableHandler.GetAllTables)
				tables.DELETE("/:id", tableHandler.DeleteTable)
			}

			staff := manager.Group("/staff")
			{
				staff.POST("/", staffHandler.CreateStaff)
				staff.GET("/", staffHandler.GetStaff)
				staff.DELETE("/:id", staffHandler.DeleteStaff)
			}
		}
	}

	return router
}
