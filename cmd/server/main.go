package main

import (
	"log"
	"os"
	"time"

	"go-invoice-pos/internal/database"
	"go-invoice-pos/internal/engine"
	"go-invoice-pos/internal/handlers"
	"go-invoice-pos/internal/middleware"
	"go-invoice-pos/internal/sheet"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	database.Connect()

	// Seed the shared clerk credential from .env
	username := os.Getenv("CLERK_USERNAME")
	password := os.Getenv("CLERK_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("❌ Error: CLERK_USERNAME and CLERK_PASSWORD must be set in .env")
	}
	if err := database.SeedClerk(database.DB, username, password); err != nil {
		log.Fatal("Failed to seed clerk credential:", err)
	}

	// Load the catalog. If the table is empty and a workbook is configured,
	// import it first; the session snapshot comes from the database either way.
	products, err := database.LoadCatalog(database.DB)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	if len(products) == 0 {
		path := os.Getenv("CATALOG_XLSX")
		if path == "" {
			log.Fatal("❌ Error: catalog is empty and CATALOG_XLSX is not set")
		}
		products, err = sheet.LoadFile(path)
		if err != nil {
			log.Fatal("Failed to import catalog workbook:", err)
		}
		if err := database.ReplaceCatalog(database.DB, products); err != nil {
			log.Fatal("Failed to save imported catalog:", err)
		}
		log.Printf("✅ Imported %d products from %s", len(products), path)
	}

	handlers.Init(engine.NewSession(products))
	log.Printf("✅ Session ready with %d products", len(products))

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"}, // Allow React
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/logout", handlers.Logout)

		api.GET("/products", handlers.GetProducts)
		api.GET("/products/groups", handlers.GetGroups)
		api.POST("/catalog/import", handlers.ImportCatalog)

		api.GET("/invoice", handlers.GetInvoice)
		api.DELETE("/invoice", handlers.ClearInvoice)
		api.POST("/invoice/lines", handlers.AddLine)
		api.DELETE("/invoice/lines/:id", handlers.RemoveLine)
		api.PUT("/invoice/lines/:id/quantity", handlers.UpdateQuantity)
		api.PUT("/invoice/lines/:id/price", handlers.UpdatePrice)
		api.PUT("/invoice/lines/:id/discount", handlers.UpdateLineDiscount)
		api.DELETE("/invoice/lines/:id/discount", handlers.ClearLineDiscount)
		api.PUT("/invoice/discount", handlers.SetInvoiceDiscount)
		api.DELETE("/invoice/discount", handlers.ClearInvoiceDiscount)
		api.PUT("/invoice/customer", handlers.SetCustomer)
		api.PUT("/invoice/notes", handlers.SetNotes)
		api.GET("/invoice/record", handlers.GetInvoiceRecord)
		api.GET("/invoice/export", handlers.ExportInvoice)
	}

	// --- DEPLOYMENT: Serve React Frontend ---
	r.Static("/assets", "./web/assets")
	r.NoRoute(func(c *gin.Context) {
		c.File("./web/index.html")
	})

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	log.Println("🚀 Server starting on " + baseURL)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
