package app

import (
	"context"
	"stickerDesk/configs"
	"stickerDesk/internal/handlers"
	"stickerDesk/internal/hub"
	"stickerDesk/internal/repositories"
	"stickerDesk/internal/servers/database"
	"stickerDesk/internal/servers/http"
	"stickerDesk/internal/services"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	deskRepo := repositories.NewDeskRepository(db)
	shareRepo := repositories.NewDeskShareRepository(db)
	deskService := services.NewDeskService(deskRepo, shareRepo, authRepo)
	stickerRepo := repositories.NewStickerRepository(db)
	stickerService := services.NewStickerService(stickerRepo)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	restHandler := handlers.NewRestHandler(
		authService,
		deskService,
		fileManagerService,
	)

	deskHub := hub.NewDeskHub(app.configs.WriteTimeout())
	socketDeskHandler := handlers.NewSocketDeskHandler(
		app.redis,
		app.ctx,
		deskHub,
		deskService,
		stickerService,
	)
	socketDeskHandler.StartSocket()

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketDeskHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
