package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"restaurant-pos/internal/api"
	"restaurant-pos/internal/cache"
	"restaurant-pos/internal/config"
	"restaurant-pos/internal/events"
	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/service"
	"restaurant-pos/migrations"
)

func connectDBEnv(host, port, user, pass, dbname string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, dbname, host, port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", dbname, host, port, err)
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func main() {
	db, err := connectDBEnv(
		getenv("DB_HOST", "127.0.0.1"),
		getenv("DB_PORT", "3306"),
		getenv("DB_USER", "root"),
		os.Getenv("DB_PASS"),
		getenv("DB_NAME", "restaurant-db"),
	)
	if err != nil {
		panic(err)
	}
	// Pool sized to absorb bursty concurrent table activity.
	db.SetMaxOpenConns(100)

	if err := migrations.AutoMigrateUsers(3, db); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}
	if err := migrations.AutoMigrateTables(3, db); err != nil {
		log.Fatalf("Failed to migrate restaurant_tables table: %v", err)
	}
	if err := migrations.AutoMigrateMenus(3, db); err != nil {
		log.Fatalf("Failed to migrate menus table: %v", err)
	}
	if err := migrations.AutoMigrateOrders(3, db); err != nil {
		log.Fatalf("Failed to migrate orders table: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_ADDR", "localhost:6379"),
	})

	secret := []byte(getenv("JWT_SECRET", "secret"))

	kafkaWriter := config.NewKafkaWriter("order-events")
	kafkaReader := config.NewKafkaReader("order-events", "restaurant-pos-group")

	broadcaster := events.NewBroadcaster()
	consumer := events.NewConsumer(kafkaReader, broadcaster)
	go consumer.Run(context.Background())

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, secret)
	menuService := service.NewMenuService(menuRepo)
	tableService := service.NewTableService(tableRepo)
	orderService := service.NewOrderService(orderRepo, kafkaWriter)

	authHandler := api.NewAuthHandler(authService, secret)
	menuHandler := api.NewMenuHandler(menuService)
	tableHandler := api.NewTableHandler(tableService, orderService)
	orderHandler := api.NewOrderHandler(orderService)
	redisHandler := api.NewRedisHandler(cache.NewStore(rdb))
	eventsHandler := api.NewEventsHandler(broadcaster, kafkaWriter)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.Request().RemoteAddr, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       60 * 60 * 24, // 1 day of preflight caching
	}))
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	apiGroup := e.Group("/api")
	apiGroup.Use(api.AccessGate(secret))

	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/current_user", authHandler.CurrentUser)

	apiGroup.GET("/table", tableHandler.GetTables)
	apiGroup.GET("/table/:id/order", tableHandler.GetTableOrders)
	apiGroup.DELETE("/table/order", tableHandler.DeleteTableOrders)

	apiGroup.POST("/order", orderHandler.CreateOrder)
	apiGroup.POST("/orders", orderHandler.CreateOrders)
	apiGroup.DELETE("/order", orderHandler.CancelOrder)
	apiGroup.DELETE("/order/complete", orderHandler.CompleteOrder)
	apiGroup.GET("/order/:id", orderHandler.GetOrder)

	apiGroup.GET("/menu", menuHandler.GetMenus)
	apiGroup.GET("/menu/:id", menuHandler.GetMenu)

	apiGroup.GET("/user", authHandler.GetUsers)
	apiGroup.GET("/user/:id", authHandler.GetUser)

	apiGroup.GET("/redis/:key", redisHandler.Get)
	apiGroup.GET("/redis/has/:key", redisHandler.Has)
	apiGroup.POST("/redis", redisHandler.Set)
	apiGroup.POST("/redis/expire", redisHandler.SetEx)

	apiGroup.GET("/events", eventsHandler.Stream)
	apiGroup.POST("/publish", eventsHandler.Publish)

	apiGroup.RouteNotFound("/*", func(c echo.Context) error {
		return c.String(404, fmt.Sprintf("This API: '%s' does not exist.", c.Request().URL.Path))
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "restaurant-pos",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + getenv("PORT", "8080")))
}
