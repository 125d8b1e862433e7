// Package routes wires every HTTP endpoint to its controller.
package routes

import (
	"github.com/shashiranjanraj/voltkart/app/controllers"
	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/middleware"
	"github.com/shashiranjanraj/voltkart/pkg/rbac"
	"github.com/shashiranjanraj/voltkart/pkg/router"
)

// RegisterAPI mounts the full API surface:
//
//	/api           auth + shared endpoints
//	/api/client    storefront reads, gated by the storefront service token
//	/api/my        the authenticated customer's own data
//	/api/admin     admin panel, JWT + admin role
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController()
	catalogController := controllers.NewCatalogController()
	productController := controllers.NewProductController()
	orderController := controllers.NewOrderController()
	reviewController := controllers.NewReviewController()
	cartController := controllers.NewCartController()
	reportController := controllers.NewReportController()
	feedController := controllers.NewFeedController()
	clientController := controllers.NewClientController()

	api := r.Group("/api")

	// Authentication
	api.Post("/login", "auth.login", ctx.Wrap(authController.Login), rbac.Guest)
	api.Post("/signup", "auth.signup", ctx.Wrap(authController.Signup), rbac.Guest)
	api.Post("/refresh", "auth.refresh", ctx.Wrap(authController.Refresh))
	api.Post("/logout", "auth.logout", ctx.Wrap(authController.Logout))
	api.Get("/me", "auth.me", ctx.Wrap(authController.Me), middleware.Auth)

	// Storefront service plumbing
	api.Get("/client/token", "client.token", ctx.Wrap(clientController.Token))
	api.Post("/client/contact", "client.contact", ctx.Wrap(clientController.Contact))

	// Storefront reads, gated by the scoped service token
	client := api.Group("/client", middleware.ServiceToken(controllers.StorefrontScope))
	client.Get("/categories", "client.categories", ctx.Wrap(catalogController.Categories))
	client.Get("/brands", "client.brands", ctx.Wrap(catalogController.Brands))
	client.Get("/products", "client.products", ctx.Wrap(productController.Storefront))
	client.Get("/products/{slug}", "client.products.show", ctx.Wrap(productController.ShowBySlug))
	client.Get("/products/{id}/reviews", "client.products.reviews", ctx.Wrap(reviewController.ForProduct))

	// Authenticated customer endpoints
	my := api.Group("/my", middleware.Auth)
	my.Post("/orders", "my.orders.store", ctx.Wrap(orderController.Store))
	my.Get("/orders", "my.orders", ctx.Wrap(orderController.Mine))
	my.Get("/orders/{orderId}", "my.orders.show", ctx.Wrap(orderController.Show))
	my.Post("/reviews", "my.reviews.store", ctx.Wrap(reviewController.Store))

	my.Get("/cart", "my.cart", ctx.Wrap(cartController.Show))
	my.Post("/cart", "my.cart.add", ctx.Wrap(cartController.Add))
	my.Put("/cart/{productId}", "my.cart.update", ctx.Wrap(cartController.UpdateQuantity))
	my.Delete("/cart/{productId}", "my.cart.remove", ctx.Wrap(cartController.Remove))
	my.Delete("/cart", "my.cart.clear", ctx.Wrap(cartController.Clear))

	my.Get("/wishlist", "my.wishlist", ctx.Wrap(cartController.Wishlist))
	my.Post("/wishlist", "my.wishlist.add", ctx.Wrap(cartController.AddToWishlist))
	my.Delete("/wishlist/{productId}", "my.wishlist.remove", ctx.Wrap(cartController.RemoveFromWishlist))

	// Admin panel
	admin := api.Group("/admin", middleware.Auth, rbac.HasRole(models.RoleAdmin))

	admin.Get("/users", "admin.users", ctx.Wrap(userController.Index))
	admin.Post("/users", "admin.users.store", ctx.Wrap(userController.Store))
	admin.Get("/users/{id}", "admin.users.show", ctx.Wrap(userController.Show))
	admin.Put("/users/{id}", "admin.users.update", ctx.Wrap(userController.Update))
	admin.Delete("/users/{id}", "admin.users.destroy", ctx.Wrap(userController.Destroy))

	admin.Get("/categories", "admin.categories", ctx.Wrap(catalogController.Categories))
	admin.Post("/categories", "admin.categories.store", ctx.Wrap(catalogController.StoreCategory))
	admin.Put("/categories/{id}", "admin.categories.update", ctx.Wrap(catalogController.UpdateCategory))
	admin.Delete("/categories/{id}", "admin.categories.destroy", ctx.Wrap(catalogController.DestroyCategory))
	admin.Get("/categories/{id}/subcategories", "admin.subcategories", ctx.Wrap(catalogController.Subcategories))

	admin.Post("/subcategories", "admin.subcategories.store", ctx.Wrap(catalogController.StoreSubcategory))
	admin.Put("/subcategories/{id}", "admin.subcategories.update", ctx.Wrap(catalogController.UpdateSubcategory))
	admin.Delete("/subcategories/{id}", "admin.subcategories.destroy", ctx.Wrap(catalogController.DestroySubcategory))

	admin.Get("/brands", "admin.brands", ctx.Wrap(catalogController.Brands))
	admin.Post("/brands", "admin.brands.store", ctx.Wrap(catalogController.StoreBrand))
	admin.Put("/brands/{id}", "admin.brands.update", ctx.Wrap(catalogController.UpdateBrand))
	admin.Delete("/brands/{id}", "admin.brands.destroy", ctx.Wrap(catalogController.DestroyBrand))

	admin.Get("/products", "admin.products", ctx.Wrap(productController.Index))
	admin.Post("/products", "admin.products.store", ctx.Wrap(productController.Store))
	admin.Get("/products/low-stock", "admin.products.lowstock", ctx.Wrap(productController.LowStock))
	admin.Get("/products/{id}", "admin.products.show", ctx.Wrap(productController.Show))
	admin.Put("/products/{id}", "admin.products.update", ctx.Wrap(productController.Update))
	admin.Delete("/products/{id}", "admin.products.destroy", ctx.Wrap(productController.Destroy))
	admin.Post("/products/{id}/images", "admin.products.images", ctx.Wrap(productController.UploadImage))

	admin.Get("/orders", "admin.orders", ctx.Wrap(orderController.Index))
	admin.Get("/orders/statuses", "admin.orders.statuses", ctx.Wrap(orderController.Statuses))
	admin.Get("/orders/{orderId}", "admin.orders.show", ctx.Wrap(orderController.Show))
	admin.Put("/orders/{orderId}/status", "admin.orders.status", ctx.Wrap(orderController.UpdateStatus))
	admin.Get("/orders/{orderId}/label", "admin.orders.label", ctx.Wrap(reportController.Label))

	admin.Get("/reviews", "admin.reviews", ctx.Wrap(reviewController.Index))
	admin.Put("/reviews/{id}/status", "admin.reviews.status", ctx.Wrap(reviewController.UpdateStatus))

	admin.Get("/dashboard", "admin.dashboard", ctx.Wrap(reportController.Overview))
	admin.Get("/dashboard/orders", "admin.dashboard.orders", ctx.Wrap(reportController.Orders))
	admin.Get("/dashboard/accounting", "admin.dashboard.accounting", ctx.Wrap(reportController.Accounting))
	admin.Get("/exports/accounting.csv", "admin.exports.accounting", ctx.Wrap(reportController.AccountingCSV))
	admin.Get("/exports/orders.csv", "admin.exports.orders", ctx.Wrap(reportController.OrdersCSV))

	admin.Get("/feed", "admin.feed", ctx.Wrap(feedController.Stream))
}
