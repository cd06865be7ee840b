// @title           CityLockers Sales OS API
// @version         1.0
// @description     CityLockers Backend API - revenue projections, scenarios and proposals for hospitality partnerships.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    https://citylockers.ae

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	_ "citylockers/docs"
	"citylockers/handlers"
	"citylockers/services"
	"citylockers/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"https://sales.citylockers.ae",
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
		"Accept-Language", "Accept-Charset", "DNT", "Connection",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

var cronRunning int32

func main() {
	db := storage.InitDB()
	_ = storage.InitGormDB()

	handlers.SetChatService(services.NewChatService())

	// Daily maintenance at 03:30 Gulf time, guarded against overlapping runs
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	_, err := c.AddFunc("30 3 * * *", func() {
		if !atomic.CompareAndSwapInt32(&cronRunning, 0, 1) {
			log.Println("Previous maintenance run still active. Skipping this run.")
			return
		}
		defer atomic.StoreInt32(&cronRunning, 0)

		log.Println("Starting daily state maintenance")
		if err := storage.CleanupStaleStates(db); err != nil {
			log.Printf("State cleanup failed: %v", err)
			return
		}
		log.Println("Daily state maintenance completed")
	})
	if err != nil {
		log.Fatalf("Failed to schedule maintenance cron job: %v", err)
	}
	c.Start()

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	// ==================== 1. CALCULATOR ====================
	r.POST("/api/calculate", handlers.CalculateHandler)

	// ==================== 2. LIVE STATE ====================
	r.GET("/api/state", handlers.GetStateHandler)
	r.PUT("/api/state", handlers.ReplaceStateHandler)
	r.POST("/api/state/update", handlers.UpdateStateFieldHandler)

	// ==================== 3. SCENARIOS ====================
	r.POST("/api/scenarios", handlers.SaveScenarioHandler)
	r.GET("/api/scenarios", handlers.ListScenariosHandler)
	r.POST("/api/scenarios/:index/load", handlers.LoadScenarioHandler)
	r.DELETE("/api/scenarios/:index", handlers.DeleteScenarioHandler)
	r.DELETE("/api/scenario_delete_by_uid/:uid", handlers.DeleteScenarioByUIDHandler)

	// ==================== 4. REFERENCE DATA ====================
	r.GET("/api/reference", handlers.ReferenceHandler)

	// ==================== 5. CHAT ASSISTANT ====================
	r.POST("/api/chat", handlers.ChatHandler)

	// ==================== 6. EXPORTS ====================
	r.GET("/api/proposal_pdf", handlers.GenerateProposalPDF)
	r.GET("/api/deal_qr", handlers.DealQRCodeHandler)
	r.GET("/api/export_csv_scenarios", handlers.ExportScenariosCSV)
	r.GET("/api/export_excel_summary", handlers.ExportSummaryExcel)

	// ==================== 7. API DOCS ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Validate port is numeric
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
