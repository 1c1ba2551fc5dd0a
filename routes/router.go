package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/handlers"
	"github.com/linskybing/reservation-go/middleware"
	"github.com/linskybing/reservation-go/repositories"
	"github.com/linskybing/reservation-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		requests := auth.Group("/requests")
		{
			requests.POST("", handlers_instance.Request.Submit)
			requests.GET("/my", handlers_instance.Request.GetMyRequests)
			requests.GET("", middleware.RequireStaff(), handlers_instance.Request.List)
			requests.GET("/stats", middleware.RequireStaff(), handlers_instance.Request.Stats)
			requests.GET("/queue/admin", middleware.RequireAdmin(), handlers_instance.Request.AdminQueue)
			requests.GET("/queue/supervisor", middleware.RequireSupervisor(), handlers_instance.Request.SupervisorQueue)
			requests.GET("/:id", handlers_instance.Request.GetByID)
			requests.PUT("/:id/approve", handlers_instance.Request.Approve)
			requests.PUT("/:id/reject", handlers_instance.Request.Reject)
			requests.PUT("/:id/return", middleware.RequireStaff(), handlers_instance.Request.ReturnEquipment)
		}

		rooms := auth.Group("/rooms")
		{
			rooms.GET("", handlers_instance.Room.List)
			rooms.GET("/:id", handlers_instance.Room.GetByID)
			rooms.GET("/:id/availability", handlers_instance.Room.CheckAvailability)
			rooms.POST("", middleware.RequireStaff(), handlers_instance.Room.Create)
			rooms.PUT("/:id", middleware.RequireStaff(), handlers_instance.Room.Update)
			rooms.DELETE("/:id", middleware.RequireStaff(), handlers_instance.Room.Delete)
		}

		equipment := auth.Group("/equipment")
		{
			equipment.GET("", handlers_instance.Equipment.List)
			equipment.GET("/:id", handlers_instance.Equipment.GetByID)
			equipment.POST("", middleware.RequireStaff(), handlers_instance.Equipment.Create)
			equipment.PUT("/:id", middleware.RequireStaff(), handlers_instance.Equipment.Update)
			equipment.DELETE("/:id", middleware.RequireStaff(), handlers_instance.Equipment.Delete)
		}

		departments := auth.Group("/departments")
		{
			departments.GET("", handlers_instance.Department.List)
			departments.GET("/:id", handlers_instance.Department.GetByID)
			departments.POST("", middleware.RequireStaff(), handlers_instance.Department.Create)
			departments.PUT("/:id", middleware.RequireStaff(), handlers_instance.Department.Update)
			departments.DELETE("/:id", middleware.RequireStaff(), handlers_instance.Department.Delete)
		}

		classes := auth.Group("/classes")
		{
			classes.GET("", handlers_instance.Class.List)
			classes.GET("/:id", handlers_instance.Class.GetByID)
			classes.POST("", middleware.RequireStaff(), handlers_instance.Class.Create)
			classes.PUT("/:id", middleware.RequireStaff(), handlers_instance.Class.Update)
			classes.DELETE("/:id", middleware.RequireStaff(), handlers_instance.Class.Delete)
		}

		users := auth.Group("/users")
		{
			users.GET("", middleware.RequireStaff(), handlers_instance.User.GetUsers)
			users.GET("/:id", middleware.SelfOrStaff(), handlers_instance.User.GetUserByID)
			users.PUT("/:id", middleware.SelfOrStaff(), handlers_instance.User.UpdateUser)
			users.DELETE("/:id", middleware.RequireAdmin(), handlers_instance.User.DeleteUser)
		}

		documents := auth.Group("/documents")
		{
			documents.POST("", handlers_instance.Document.Upload)
			documents.GET("/:key", handlers_instance.Document.Download)
		}

		auth.GET("/notifications", handlers_instance.Notification.ListMine)

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.RequireStaff(), handlers_instance.Audit.GetAuditLogs)
		}
	}
}
