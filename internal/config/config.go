package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress              = ":8080"
	DefaultDatabaseURI             = ""
	DefaultRedisAddress            = ""
	DefaultInventoryServiceAddress = ""
	DefaultSecretKey               = ""
	DefaultReturnWindowDays        = 7
	DefaultVIPGraceDays            = 2
	DefaultLateReturnFee           = 3000
	DefaultChangeOfMindFee         = 3000
	DefaultLowStockThreshold       = 3
	DefaultTimezone                = "Asia/Seoul"
	DefaultRandomStock             = false
	DefaultInventorySyncInterval   = 5 * time.Minute
	DefaultShutdownTimeout         = 5 * time.Second
)

type Config struct {
	RunAddress              string        `env:"RUN_ADDRESS"`
	DatabaseURI             string        `env:"DATABASE_URI"`
	RedisAddress            string        `env:"REDIS_ADDRESS"`
	InventoryServiceAddress string        `env:"INVENTORY_SERVICE_ADDRESS"`
	SecretKey               string        `env:"SECRET_KEY"`
	ReturnWindowDays        int           `env:"RETURN_WINDOW_DAYS"`
	VIPGraceDays            int           `env:"VIP_GRACE_DAYS"`
	LateReturnFee           int64         `env:"LATE_RETURN_FEE"`
	ChangeOfMindFee         int64         `env:"CHANGE_OF_MIND_FEE"`
	LowStockThreshold       int           `env:"LOW_STOCK_THRESHOLD"`
	Timezone                string        `env:"TIMEZONE"`
	RandomStock             bool          `env:"RANDOM_STOCK"`
	InventorySyncInterval   time.Duration `env:"INVENTORY_SYNC_INTERVAL"`
	ShutdownTimeout         time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Read parses flags first; environment variables override them.
func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string, in-memory orders when empty")
	flag.StringVar(&config.RedisAddress, "r", DefaultRedisAddress, "Redis address host:port for inventory")
	flag.StringVar(&config.InventoryServiceAddress, "i", DefaultInventoryServiceAddress, "Inventory service address protocol://hostname:port")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for gateway bearer tokens, auth disabled when empty")

	flag.IntVar(&config.ReturnWindowDays, "w", DefaultReturnWindowDays, "Return window in days")
	flag.IntVar(&config.VIPGraceDays, "g", DefaultVIPGraceDays, "Extra days for gold and diamond members")
	flag.Int64Var(&config.LateReturnFee, "f", DefaultLateReturnFee, "Fashion return fee in won past the base window")
	flag.Int64Var(&config.ChangeOfMindFee, "c", DefaultChangeOfMindFee, "Return shipping fee in won for change of mind")
	flag.IntVar(&config.LowStockThreshold, "l", DefaultLowStockThreshold, "Quantity at or below which stock is low")
	flag.StringVar(&config.Timezone, "z", DefaultTimezone, "Timezone for calendar day arithmetic")

	flag.BoolVar(&config.RandomStock, "m", DefaultRandomStock, "Simulated exchange stock status (demo mode)")
	flag.DurationVar(&config.InventorySyncInterval, "u", DefaultInventorySyncInterval, "Inventory sync interval (e.g. 1m, 30s)")
	flag.DurationVar(&config.ShutdownTimeout, "t", DefaultShutdownTimeout, "Graceful shutdown timeout")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
