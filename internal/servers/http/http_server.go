package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"stickerDesk/configs"
	"stickerDesk/internal/handlers"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx               context.Context
	configs           *configs.Config
	router            *gin.Engine
	restHandler       *handlers.RestHandler
	socketDeskHandler *handlers.SocketDeskHandler
}

func NewHttpServer(
	ctx context.Context,
	configs *configs.Config,
	restHandler *handlers.RestHandler,
	socketDeskHandler *handlers.SocketDeskHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:               ctx,
			configs:           configs,
			restHandler:       restHandler,
			socketDeskHandler: socketDeskHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/auth/register", hs.restHandler.Register)
	hs.router.POST("/auth/login", hs.restHandler.Login)
	hs.router.POST("/auth/refresh", hs.restHandler.Refresh)

	authenticated := hs.router.Group("/", hs.restHandler.MustAuthenticateMiddleware())
	authenticated.GET("/profile", hs.restHandler.GetProfile)
	authenticated.PUT("/profile/photo", hs.restHandler.UploadProfilePhoto)
	authenticated.POST("/desks", hs.restHandler.CreateDesk)
	authenticated.GET("/desks", hs.restHandler.GetDesks)
	authenticated.GET("/desks/:deskId", hs.restHandler.GetDesk)
	authenticated.PATCH("/desks/:deskId", hs.restHandler.UpdateDesk)
	authenticated.DELETE("/desks/:deskId", hs.restHandler.DeleteDesk)
	authenticated.POST("/desks/:deskId/share", hs.restHandler.ShareDesk)
	authenticated.DELETE("/desks/:deskId/share", hs.restHandler.UnshareDesk)

	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/desk/:deskId", hs.socketDeskHandler.HandleSocketDeskRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.configs.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close all live desk connections
	hs.socketDeskHandler.Hub().CloseAll()

	log.Println("Server exiting")
}
