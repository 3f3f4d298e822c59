package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/api/handlers"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Payment  *handlers.PaymentHandler
	Platform *handlers.PlatformHandler
	Post     *handlers.PostHandler
	Brand    *handlers.BrandHandler
	Campaign *handlers.CampaignHandler
	Calendar *handlers.CalendarHandler
	Catalog  *handlers.CatalogHandler
	Booking  *handlers.BookingHandler
	Content  *handlers.ContentHandler
	Media    *handlers.MediaHandler
}

// SetupRoutes mounts the public auth routes and the /api group behind auth.
func SetupRoutes(app *fiber.App, auth fiber.Handler, h *Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/auth/signin", h.Auth.SignIn)
	app.Post("/auth/signout", h.Auth.SignOut)
	app.Get("/auth/:platform/callback", h.Platform.CallbackHandler)

	api := app.Group("/api")
	api.Use(auth)

	api.Get("/user/info", h.User.GetUserInfo)
	api.Put("/user/info", h.User.UpdateUserInfo)
	api.Get("/dashboard", h.User.Dashboard)
	api.Post("/demo/seed", h.User.SeedDemoData)

	api.Get("/subscription/products", h.Payment.Products)
	api.Get("/subscription/status", h.Payment.Status)
	api.Post("/subscription/purchase", h.Payment.Purchase)
	api.Post("/subscription/restore", h.Payment.Restore)
	api.Post("/subscription/plan", h.Payment.OverridePlan)

	api.Get("/accounts", h.Platform.ListSocialAccounts)
	api.Post("/accounts", h.Platform.ConnectSocialAccount)
	api.Get("/accounts/:platform/auth", h.Platform.AuthURL)
	api.Post("/accounts/:id/disconnect", h.Platform.DisconnectSocialAccount)

	api.Post("/posts", h.Post.CreatePost)
	api.Get("/posts", h.Post.ListPosts)
	api.Get("/posts/due", h.Post.DuePosts)
	api.Post("/posts/process", h.Post.ProcessNow)
	api.Get("/posts/open", h.Post.OpenReminder)
	api.Get("/posts/:id", h.Post.GetPost)
	api.Put("/posts/:id", h.Post.UpdatePost)
	api.Delete("/posts/:id", h.Post.RemovePost)
	api.Post("/posts/:id/status", h.Post.UpdateStatus)
	api.Post("/posts/:id/publish", h.Post.PublishNow)
	api.Get("/posts/:id/history", h.Post.History)
	api.Get("/posts/:id/share", h.Post.ShareURL)

	api.Get("/scheduler", h.Post.SchedulerStatus)
	api.Post("/scheduler/start", h.Post.StartScheduler)
	api.Post("/scheduler/stop", h.Post.StopScheduler)

	api.Get("/brands", h.Brand.ListBrands)
	api.Post("/brands", h.Brand.CreateBrand)
	api.Put("/brands/:id", h.Brand.UpdateBrand)
	api.Delete("/brands/:id", h.Brand.RemoveBrand)

	api.Post("/campaigns/outline", h.Campaign.GenerateOutline)
	api.Get("/campaigns", h.Campaign.ListCampaigns)
	api.Post("/campaigns", h.Campaign.SaveCampaign)
	api.Delete("/campaigns/:id", h.Campaign.RemoveCampaign)

	api.Get("/calendar", h.Calendar.ListItems)
	api.Post("/calendar", h.Calendar.AddItem)
	api.Post("/calendar/generated", h.Calendar.SaveGenerated)
	api.Post("/calendar/bulk/update", h.Calendar.BulkUpdate)
	api.Post("/calendar/bulk/delete", h.Calendar.BulkDelete)
	api.Get("/calendar/export", h.Calendar.Export)
	api.Get("/calendar/best-times", h.Calendar.BestTimes)
	api.Get("/calendar/analytics", h.Calendar.Analytics)
	api.Put("/calendar/:id", h.Calendar.UpdateItem)
	api.Delete("/calendar/:id", h.Calendar.RemoveItem)

	api.Get("/templates", h.Catalog.ListTemplates)
	api.Get("/affiliate-tools", h.Catalog.ListAffiliateTools)
	api.Get("/affiliate-tools/:id/open", h.Catalog.OpenAffiliateTool)

	api.Get("/bookings/services", h.Booking.ServiceTypes)
	api.Get("/bookings", h.Booking.ListBookings)
	api.Post("/bookings", h.Booking.SubmitBooking)

	api.Post("/content/generate", h.Content.Generate)
	api.Post("/content/ideas", h.Content.Ideas)
	api.Get("/content/hashtags", h.Content.Hashtags)

	api.Get("/media", h.Media.ListMedia)
	api.Post("/media", h.Media.Upload)
	api.Delete("/media/:id", h.Media.RemoveMedia)
}
