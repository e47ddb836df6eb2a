package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Shop identity printed on every ticket.
	ShopName    string
	ShopAddress string
	ShopCity    string
	ShopPhone   string
	ShopSIRET   string

	// Receipt printer (CUPS destination). Empty disables physical dispatch.
	PrinterName string

	// Drawer opening float used by the theoretical balance.
	OpeningFloat string

	// When true, redeeming an expired or already-used voucher is a
	// validation error instead of being silently treated as "no voucher".
	StrictVoucherRedeem bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "caisse-backend")
	viper.SetDefault("SHOP_NAME", "VINTAGE ROYAN")
	viper.SetDefault("SHOP_ADDRESS", "3bis rue Notre-Dame")
	viper.SetDefault("SHOP_CITY", "17200 Royan")
	viper.SetDefault("SHOP_PHONE", "Tel: 0546778080")
	viper.SetDefault("SHOP_SIRET", "SIRET : 832 259 837 00031")
	viper.SetDefault("PRINTER_NAME", "SEWOO_LKT_Series")
	viper.SetDefault("OPENING_FLOAT", "0")
	viper.SetDefault("STRICT_VOUCHER_REDEEM", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.ShopName = viper.GetString("SHOP_NAME")
	cfg.ShopAddress = viper.GetString("SHOP_ADDRESS")
	cfg.ShopCity = viper.GetString("SHOP_CITY")
	cfg.ShopPhone = viper.GetString("SHOP_PHONE")
	cfg.ShopSIRET = viper.GetString("SHOP_SIRET")
	cfg.PrinterName = viper.GetString("PRINTER_NAME")
	cfg.OpeningFloat = viper.GetString("OPENING_FLOAT")
	cfg.StrictVoucherRedeem = viper.GetBool("STRICT_VOUCHER_REDEEM")

	return cfg, nil
}
