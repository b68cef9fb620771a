package routes

import (
	"resort/controllers"
	middlewares "resort/middleware"
	"resort/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, payments *services.PaymentService) {

	availabilityController := controllers.NewAvailabilityController(db)
	pricingController := controllers.NewPricingController(db)
	bookingController := controllers.NewBookingController(db, redisCli)
	paymentController := controllers.NewPaymentController(db, payments)
	partnerController := controllers.NewPartnerController(db)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.GET("/unitTypes", controllers.GetAllUnitTypes)
	v1.POST("/unitTypes", middlewares.AuthMiddleware(1, 2), controllers.CreateUnitType)
	v1.GET("/unitTypes/:id", controllers.GetUnitTypeDetail)
	v1.PUT("/unitTypeUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateUnitType)
	v1.PUT("/unitTypeVisibility", middlewares.AuthMiddleware(1, 2), controllers.ChangeUnitTypeVisibility)

	v1.GET("/units", controllers.GetAllUnits)
	v1.POST("/units", middlewares.AuthMiddleware(1, 2), controllers.CreateUnit)
	v1.GET("/units/:id", controllers.GetUnitDetail)
	v1.PUT("/unitStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeUnitStatus)

	v1.GET("/availability", availabilityController.SearchAvailability)
	v1.GET("/checkUnit", availabilityController.CheckUnit)

	v1.POST("/quote", pricingController.Quote)

	v1.POST("/reservations", bookingController.CreateReservation)
	v1.GET("/reservations", middlewares.AuthMiddleware(1, 2, 3), bookingController.GetReservations)
	v1.GET("/reservations/:id", bookingController.GetReservationDetail)
	v1.PUT("/reservations/:id/checkin", middlewares.AuthMiddleware(2, 3), bookingController.CheckIn)
	v1.PUT("/reservations/:id/checkout", middlewares.AuthMiddleware(2, 3), bookingController.CheckOut)
	v1.PUT("/reservations/:id/cancel", bookingController.CancelReservation)

	v1.GET("/blocks", middlewares.AuthMiddleware(1, 2), bookingController.GetBlocks)
	v1.POST("/blocks", middlewares.AuthMiddleware(1, 2), bookingController.CreateBlock)
	v1.DELETE("/blocks/:id", middlewares.AuthMiddleware(1, 2), bookingController.DeleteBlock)

	v1.GET("/rateRules", middlewares.AuthMiddleware(1, 2), controllers.GetRateRules)
	v1.POST("/rateRules", middlewares.AuthMiddleware(1, 2), controllers.CreateRateRule)
	v1.GET("/rateRules/:id", middlewares.AuthMiddleware(1, 2), controllers.GetRateRuleDetail)
	v1.PUT("/rateRuleUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRateRule)
	v1.PUT("/rateRuleStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeRateRuleStatus)
	v1.DELETE("/rateRules/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteRateRule)

	v1.GET("/coupons", middlewares.AuthMiddleware(1, 2), controllers.GetCoupons)
	v1.POST("/coupons", middlewares.AuthMiddleware(1, 2), controllers.CreateCoupon)
	v1.GET("/coupons/:id", middlewares.AuthMiddleware(1, 2), controllers.GetCouponDetail)
	v1.PUT("/couponUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateCoupon)
	v1.PUT("/couponStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeCouponStatus)

	v1.POST("/payments/initiate", paymentController.InitiatePayment)
	v1.POST("/payments/verify", paymentController.VerifyPayment)
	v1.POST("/payments/webhook", paymentController.Webhook)
	v1.POST("/payments/refund", middlewares.AuthMiddleware(1, 2), paymentController.RefundPayment)
	v1.GET("/payments", middlewares.AuthMiddleware(1, 2), paymentController.GetPayments)
	v1.GET("/payments/:id", middlewares.AuthMiddleware(1, 2), paymentController.GetPaymentDetail)

	v1.GET("/tickets", controllers.GetTickets)
	v1.POST("/tickets", controllers.CreateTicket)
	v1.GET("/tickets/:id", controllers.GetTicketDetail)
	v1.PUT("/tickets/:id/cancel", controllers.CancelTicket)

	v1.GET("/partners", middlewares.AuthMiddleware(1, 2), partnerController.GetPartners)
	v1.POST("/partners", middlewares.AuthMiddleware(1, 2), partnerController.CreatePartner)
	v1.GET("/partners/:id", middlewares.AuthMiddleware(1, 2), partnerController.GetPartnerDetail)
	v1.PUT("/partnerUpdate", middlewares.AuthMiddleware(1, 2), partnerController.UpdatePartner)
	v1.PUT("/partnerStatus", middlewares.AuthMiddleware(1, 2), partnerController.ChangePartnerStatus)
	v1.POST("/partnerPayout", middlewares.AuthMiddleware(1, 2), partnerController.Payout)
	v1.GET("/partners/:id/ledger", middlewares.AuthMiddleware(1, 2), partnerController.GetLedger)

	//doanh thu
	v1.GET("/income", middlewares.AuthMiddleware(1, 2), controllers.GetIncomeRecords)
}
