package routes

import (
	"paytrack/controllers"
	"paytrack/middlewares"
	"paytrack/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.GET("/metrics", middlewares.MetricsHandler())

	api := r.Group("/api")
	{
		api.POST("/setup", controllers.Setup)

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middlewares.Auth(), controllers.Me)
		}

		// ================= ADMIN =================
		admin := api.Group("/admin", middlewares.Auth(), middlewares.RequireRole(models.RoleAdmin))
		{
			admin.GET("/dashboard", controllers.AdminDashboard)

			admin.GET("/clients", controllers.AdminListClients)
			admin.POST("/clients", controllers.AdminCreateClient)
			admin.GET("/clients/:id", controllers.AdminGetClient)
			admin.DELETE("/clients/:id", controllers.AdminDeleteClient)
			admin.PUT("/clients/:id/assign", controllers.AdminAssignClient)
			admin.GET("/clients/:id/statement", controllers.AdminClientStatementPDF)

			admin.GET("/subadmins", controllers.AdminListSubAdmins)
			admin.POST("/subadmins", controllers.AdminCreateSubAdmin)
			admin.DELETE("/subadmins/:id", controllers.AdminDeleteSubAdmin)
			admin.PUT("/subadmins/:id/terminate", controllers.AdminTerminateSubAdmin)

			admin.PUT("/payments/:id/approve", controllers.PaymentApprove)
			admin.PUT("/payments/:id/reject", controllers.PaymentReject)

			admin.GET("/reports/clients", controllers.AdminClientReport)

			admin.POST("/ocr", controllers.DetectAmount)
		}

		// ================= SUBADMIN =================
		subadmin := api.Group("/subadmin", middlewares.Auth(), middlewares.RequireRole(models.RoleSubAdmin))
		{
			subadmin.GET("/dashboard", controllers.SubAdminDashboard)

			subadmin.GET("/clients", controllers.SubAdminClients)
			subadmin.GET("/clients/:id", controllers.SubAdminGetClient)

			subadmin.GET("/payment-requests", controllers.SubAdminPaymentRequests)
			subadmin.POST("/payment-requests", controllers.SubAdminCreatePaymentRequest)

			subadmin.PUT("/payments/:id/approve", controllers.PaymentApprove)
			subadmin.PUT("/payments/:id/reject", controllers.PaymentReject)

			subadmin.POST("/ocr", controllers.DetectAmount)
		}

		// ================= CLIENT =================
		client := api.Group("/client", middlewares.Auth(), middlewares.RequireRole(models.RoleClient))
		{
			client.GET("/payments", controllers.ClientPayments)
			client.POST("/payments", controllers.ClientSubmitPayment)
		}
	}
}
