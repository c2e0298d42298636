package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"frontdesk-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SeedDatabase fills an empty database with the default admin, the starter
// room catalog and the hotel's default charges.
func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@hotel.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Hotel settings ----------------
	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:           "Front Desk Hotel",
			ExtraBedCharge: 500,
			CGSTRate:       2.5,
			SGSTRate:       2.5,
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		} else {
			log.Println("Hotel settings seeded")
		}
	}

	// ---------------- Categories ----------------
	var catCount int64
	DB.Model(&models.RoomCategory{}).Count(&catCount)
	if catCount == 0 {
		categories := []models.RoomCategory{
			{Name: "Standard", Description: "Standard Room", BasePrice: 2000},
			{Name: "Deluxe", Description: "Deluxe Room", BasePrice: 3000},
			{Name: "Suite", Description: "Suite Room", BasePrice: 5000},
		}
		if err := DB.Create(&categories).Error; err != nil {
			log.Printf("warning: failed to seed categories: %v", err)
			return
		}
		log.Println("Room categories seeded")

		// ---------------- Rooms ----------------
		var roomCount int64
		DB.Model(&models.Room{}).Count(&roomCount)
		if roomCount == 0 {
			rooms := []models.Room{}
			numbers := map[string][]string{
				"Standard": {"101", "102", "103"},
				"Deluxe":   {"201", "202"},
				"Suite":    {"301"},
			}
			for _, cat := range categories {
				for _, n := range numbers[cat.Name] {
					catID := cat.ID
					rooms = append(rooms, models.Room{
						RoomCategoryID: &catID,
						RoomNumber:     n,
						Status:         models.RoomStatusAvailable,
						Floor:          n[:1],
						Price:          cat.BasePrice,
						MaxOccupancy:   3,
					})
				}
			}
			if err := DB.Create(&rooms).Error; err != nil {
				log.Printf("warning: failed to seed rooms: %v", err)
			} else {
				log.Println("Rooms seeded")
			}
		}
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "frontdesk_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}

func ConnectDatabase() error {
	dsn, _, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.RoomCategory{},
		&models.Room{},
		&models.Booking{},
		&models.BookingRoomRate{},
		&models.RoomGuestDetail{},
		&models.Amendment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
