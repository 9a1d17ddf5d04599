package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/adapters/imagehost"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/adapters/menustore"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/adapters/ordercache"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/adapters/repository"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/application"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/reminder"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	var logger *zap.Logger
	var err error
	if os.Getenv("CANTEEN_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatal("failed to ping DB", zap.Error(err))
	}

	repo := repository.NewPostgresRepository(db)
	if err := repo.InitSchema(ctx); err != nil {
		logger.Fatal("failed to init DB schema", zap.Error(err))
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			logger.Fatal("bad REDIS_DB", zap.Error(err))
		}
	}
	menu := menustore.NewStore(
		os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_USERNAME"), os.Getenv("REDIS_PASSWORD"), redisDB)
	if err := menu.Ping(ctx); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	if err := seedMenu(ctx, menu, logger); err != nil {
		logger.Warn("menu seeding failed", zap.Error(err))
	}

	cachePath := os.Getenv("ORDER_CACHE_PATH")
	if cachePath == "" {
		cachePath = "canteen-orders.db"
	}
	cache, err := ordercache.Open(cachePath)
	if err != nil {
		logger.Fatal("failed to open order cache", zap.Error(err))
	}
	defer cache.Close()

	images := imagehost.New(os.Getenv("CLOUDINARY_CLOUD"), os.Getenv("CLOUDINARY_PRESET"))

	authSvc := application.NewAuthService(repo, repo, images, logger)
	orderSvc := application.NewOrderService(repo, cache, logger)
	menuSvc := application.NewMenuService(menu, logger)
	app := application.NewApp(authSvc, orderSvc, menuSvc, logger)

	// With credentials configured, open a session up front and drain any
	// orders left pending by an earlier run.
	if email, password := os.Getenv("CANTEEN_EMAIL"), os.Getenv("CANTEEN_PASSWORD"); email != "" {
		sess, err := app.LogIn(ctx, email, password)
		if err != nil {
			logger.Warn("startup login failed", zap.Error(err))
		} else {
			if synced, voided, err := app.RetryPendingOrders(); err != nil {
				logger.Warn("pending order retry failed", zap.Error(err))
			} else if synced > 0 || voided > 0 {
				logger.Info("drained pending orders", zap.Int("synced", synced), zap.Int("voided", voided))
			}
			if special := sess.DailySpecial(); special != nil {
				logger.Info("today's special", zap.String("item", special.Name), zap.Float64("price", special.Price))
			}
		}
	}

	sched := reminder.NewScheduler(&reminder.LogNotifier{Logger: logger}, logger)
	sched.SetEnabled(os.Getenv("REMINDERS_ENABLED") != "false")
	if err := sched.Start(); err != nil {
		logger.Fatal("failed to start reminder scheduler", zap.Error(err))
	}
	defer sched.Stop()

	logger.Info("canteen client coordinator ready")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
}

// seedMenu fills an empty menu store with a starter menu so a fresh install
// has something to show.
func seedMenu(ctx context.Context, menu *menustore.Store, logger *zap.Logger) error {
	items, err := menu.ListItems(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	starter := []domain.MenuItem{
		{Name: "Masala Dosa", Price: 60.00, IsVeg: true, Description: "Crisp dosa with potato filling"},
		{Name: "Veg Thali", Price: 120.00, IsVeg: true, Description: "Rice, dal, two curries and roti"},
		{Name: "Chicken Biryani", Price: 150.00, IsVeg: false, Description: "Hyderabadi style with raita"},
		{Name: "Paneer Roll", Price: 80.00, IsVeg: true, Description: "Grilled paneer wrap"},
		{Name: "Egg Fried Rice", Price: 90.00, IsVeg: false, Description: "Wok tossed with vegetables"},
	}
	for i := range starter {
		if _, err := menu.AddItem(ctx, &starter[i]); err != nil {
			return err
		}
	}
	logger.Info("seeded starter menu", zap.Int("items", len(starter)))
	return nil
}
