package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	products := api.Group("/products")
	products.GET("", s.listProducts)
	products.POST("", s.createProduct)
	products.GET("/slug/:slug", s.getProductBySlug)
	products.GET("/:id", s.getProduct)
	products.PUT("/:id", s.updateProduct)
	products.DELETE("/:id", s.deleteProduct)
	products.POST("/:id/restore", s.restoreProduct)
	products.GET("/:id/compare", s.getComparison)
	products.POST("/:id/compare/refresh", s.refreshComparison)

	categories := api.Group("/categories")
	categories.GET("", s.listCategories)
	categories.POST("", s.createCategory)
	categories.PUT("/:id", s.updateCategory)
	categories.DELETE("/:id", s.deleteCategory)
	categories.POST("/:id/restore", s.restoreCategory)

	currencies := api.Group("/currencies")
	currencies.GET("", s.listCurrencies)
	currencies.GET("/convert", s.convertCurrency)

	alerts := api.Group("/alerts")
	alerts.POST("", s.createAlert)
	alerts.DELETE("/:id", s.deleteAlert)
	alerts.POST("/check", s.checkAlerts)
}
