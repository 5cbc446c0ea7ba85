package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "kaenpro_os/docs" // This will be auto-generated
	"kaenpro_os/internal/adapter/http/handlers"
	"kaenpro_os/internal/adapter/http/middleware"
	repository2 "kaenpro_os/internal/adapter/persistence/repository"
	"kaenpro_os/internal/infrastructure/ai"
	"kaenpro_os/internal/infrastructure/database"
	"kaenpro_os/internal/infrastructure/ident"
	"kaenpro_os/internal/infrastructure/payments"
	"kaenpro_os/internal/infrastructure/render"
	"kaenpro_os/internal/usecase"
	"kaenpro_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	ordersRepo := repository2.NewOrdersDynamoRepository(ddb)

	ids := ident.NewRandomIDGenerator()
	clock := ident.NewSystemClock()

	var suggestionProvider interfaces.ISuggestionProvider
	gemini, err := ai.NewGeminiSuggestionProvider(context.Background(), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini provider not configured: %v", err)
	} else {
		suggestionProvider = gemini
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	suggestionUseCase := usecase.NewSuggestionUseCase(suggestionProvider)
	draftManager := usecase.NewDraftManager(ordersRepo, suggestionUseCase, ids, clock)
	ordersUseCase := usecase.NewOrdersUseCase(ordersRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(render.NewPNGInvoiceRenderer(), render.NewPDFInvoiceRenderer())
	paymentUseCase := usecase.NewOrderPaymentUseCase(ordersRepo, paymentGateway, clock)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	draftHandler := handlers.NewDraftHandler(draftManager, catalogUseCase)
	orderHandler := handlers.NewOrderHandler(ordersUseCase, invoiceUseCase, paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.Use(middleware.Session())
	addPingRoutes(v1)
	addOSRoutes(v1, catalogHandler, draftHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
