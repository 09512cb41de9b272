package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Mrigankar1134/DBProject/internal/utils"
)

func (app *Application) Routes() http.Handler {
	mux := chi.NewRouter()

	// --- Global middlewares ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	mux.Use(app.RequestID)
	mux.Use(app.Logger)
	mux.Use(app.RateLimit)

	// --- Health check ---
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"status": "live",
			"env":    app.Config.Env,
		}
		utils.WriteJSON(w, http.StatusOK, resp)
	})

	// -------------------- Dashboard Aggregates --------------------
	mux.Route("/api", func(r chi.Router) {
		r.Get("/monthly-sales", app.Handlers.Dashboard.MonthlySales)
		r.Get("/product-sales", app.Handlers.Dashboard.ProductSales)
		r.Get("/customer-gender", app.Handlers.Dashboard.CustomerGender)
		r.Get("/payment-methods", app.Handlers.Dashboard.PaymentMethods)

		// Combined payload for the scalar cards and all four charts
		r.Get("/insights", app.Handlers.Dashboard.Insights)

		// -------------------- Customer Routes --------------------
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", app.Handlers.Customer.ListCustomers) //query {search}
			r.Post("/", app.Handlers.Customer.AddCustomer)
			r.Put("/{id}", app.Handlers.Customer.UpdateCustomer)
			r.Delete("/{id}", app.Handlers.Customer.DeleteCustomer)
		})

		// -------------------- Branch Routes --------------------
		r.Route("/branches", func(r chi.Router) {
			r.Get("/", app.Handlers.Branch.ListBranches)
			r.Post("/", app.Handlers.Branch.AddBranch)
			r.Put("/{id}", app.Handlers.Branch.UpdateBranch)
			r.Delete("/{id}", app.Handlers.Branch.DeleteBranch)
		})

		// -------------------- Product Routes --------------------
		r.Route("/products", func(r chi.Router) {
			r.Get("/", app.Handlers.Product.ListProducts)
			r.Post("/", app.Handlers.Product.AddProduct)
			r.Put("/{id}", app.Handlers.Product.UpdateProduct)
			r.Delete("/{id}", app.Handlers.Product.DeleteProduct)
		})

		// -------------------- Sale Routes --------------------
		r.Route("/sales", func(r chi.Router) {
			r.Get("/", app.Handlers.Sale.ListSales)
			r.Post("/", app.Handlers.Sale.AddSale)
			r.Put("/{id}", app.Handlers.Sale.UpdateSale)
			r.Delete("/{id}", app.Handlers.Sale.DeleteSale)
		})

		// -------------------- Financial Routes --------------------
		r.Route("/financials", func(r chi.Router) {
			r.Get("/", app.Handlers.Financial.ListFinancials)
			r.Post("/", app.Handlers.Financial.AddFinancial)
			r.Put("/{id}", app.Handlers.Financial.UpdateFinancial)
			r.Delete("/{id}", app.Handlers.Financial.DeleteFinancial)
		})
	})

	// --- Static file serving for the SPA bundle ---
	fs := http.FileServer(http.Dir(app.Config.StaticDir))
	mux.Handle("/*", fs)

	return mux
}
