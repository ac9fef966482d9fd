package main

import (
	"github.com/gin-gonic/gin"

	"petty-shelter.backend/internal/interfaces/http/handlers"
	"petty-shelter.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	petHandler      *handlers.PetHandler
	userHandler     *handlers.UserHandler
	donationHandler *handlers.DonationHandler
	sessionAuth     gin.HandlerFunc
	webhookSecret   string
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Pet catalogue (public read, staff write)
	pets := r.Group("/pets")
	{
		pets.GET("", d.petHandler.List)
		pets.GET("/search", d.petHandler.Search)
		pets.GET("/:id", d.petHandler.Get)

		pets.POST("", d.sessionAuth, middleware.RequireStaff(), d.petHandler.Create)
		pets.PATCH("/:id", d.sessionAuth, middleware.RequireStaff(), d.petHandler.Update)
		pets.DELETE("/:id", d.sessionAuth, middleware.RequireStaff(), d.petHandler.Delete)

		// Adoption applications
		pets.POST("/adoption-application", d.sessionAuth, d.petHandler.CreateAdoptionApplication)
		pets.GET("/adoption-applications", d.sessionAuth, d.petHandler.ListAdoptionApplications)
		pets.PATCH("/adoption-applications/:id", d.sessionAuth, middleware.RequireStaff(), d.petHandler.ReviewAdoptionApplication)

		// Emergency care requests. Edits are open to any session here; the
		// staff check lives in the usecase so non-staff get a 401.
		pets.POST("/emergency-care", d.sessionAuth, d.petHandler.CreateEmergencyCare)
		pets.GET("/emergency-care", d.sessionAuth, d.petHandler.ListEmergencyCare)
		pets.PATCH("/emergency-care/:id", d.sessionAuth, d.petHandler.UpdateEmergencyCare)
	}

	// Accounts, sessions and visits
	users := r.Group("/users")
	{
		users.POST("", d.userHandler.Signup)
		users.POST("/signin", d.userHandler.Signin)
		users.POST("/signout", d.userHandler.Signout)
		users.POST("/reset-password", d.userHandler.RequestPasswordReset)
		users.POST("/reset-password/:token", d.userHandler.ResetPassword)

		users.GET("/get", d.sessionAuth, d.userHandler.GetCurrent)
		users.POST("/confirm-email", d.sessionAuth, d.userHandler.ConfirmEmail)
		users.POST("/invite", d.sessionAuth, middleware.RequireStaff(), d.userHandler.Invite)

		users.POST("/schedule-visit", d.sessionAuth, d.userHandler.ScheduleVisit)
		users.GET("/list-visits", d.sessionAuth, d.userHandler.ListVisits)
		users.GET("/get-visit/:visitId", d.sessionAuth, d.userHandler.GetVisit)
		users.PATCH("/update-visit-status", d.sessionAuth, middleware.RequireStaff(), d.userHandler.UpdateVisitStatus)

		users.GET("", d.sessionAuth, middleware.RequireStaff(), d.userHandler.List)
		users.GET("/:id", d.sessionAuth, d.userHandler.Get)
		users.PATCH("/:id", d.sessionAuth, d.userHandler.Update)
		users.DELETE("/:id", d.sessionAuth, d.userHandler.Delete)
	}

	// Donations
	donations := r.Group("/donations")
	{
		donations.GET("", d.sessionAuth, middleware.RequireStaff(), d.donationHandler.List)

		payment := donations.Group("/payment")
		{
			payment.POST("/initialize", middleware.IdempotencyMiddleware(), d.donationHandler.Initialize)
			payment.GET("/verify/:reference", d.donationHandler.Verify)
			payment.POST("/webhook", middleware.VerifyWebhookSignature(d.webhookSecret), d.donationHandler.Webhook)
		}
	}
}
