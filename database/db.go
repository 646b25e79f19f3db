package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"catering-ops/logger"
	logModel "catering-ops/models/log"
	orderModel "catering-ops/models/order"
	parttimerModel "catering-ops/models/parttimer"
	taskModel "catering-ops/models/task"
	userModel "catering-ops/models/user"
	vendorModel "catering-ops/models/vendor"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: standalone roster and account tables
	stage1Models := []interface{}{
		&userModel.User{},
		&vendorModel.Vendor{},
		&parttimerModel.PartTimer{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: orders, then tasks referencing orders
	stage2Models := []interface{}{
		&orderModel.Order{},
		&taskModel.VendorTask{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: logging
	if err := DB.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_event_date_status ON orders(event_date, status)").Error; err != nil {
		return fmt.Errorf("failed to create order event_date/status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_vendor_tasks_order_id ON vendor_tasks(order_id)").Error; err != nil {
		return fmt.Errorf("failed to create task order_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_vendor_tasks_assignee_id ON vendor_tasks(assignee_id)").Error; err != nil {
		return fmt.Errorf("failed to create task assignee_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_vendor_tasks_status ON vendor_tasks(status)").Error; err != nil {
		return fmt.Errorf("failed to create task status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_vendors_email ON vendors(email)").Error; err != nil {
		return fmt.Errorf("failed to create vendor email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_part_timers_email ON part_timers(email)").Error; err != nil {
		return fmt.Errorf("failed to create part timer email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
