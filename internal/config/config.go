package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Server   ServerConfig
	Security SecurityConfig
	Advisory AdvisoryConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	BodyLimit        string
	MetricsEnabled   bool
	CORSAllowOrigins []string
}

type SecurityConfig struct {
	RateLimitPerSecond float64
	RateLimitBurst     int
	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For entries are believed.
	// Empty means the peer address is always the client address.
	TrustedProxies []string
}

// AdvisoryConfig controls rendering and the fixed retirement projection inputs
type AdvisoryConfig struct {
	// Locale is the BCP 47 tag used for digit grouping, e.g. en-IN (1,00,000) or en-US (100,000)
	Locale string
	// TipSeed fixes savings tip sampling when non-zero
	TipSeed int64

	CurrentAge           int
	RetirementAge        int
	YearsInRetirement    int
	ReplacementRatio     float64
	InflationRate        float64
	PreRetirementReturn  float64
	PostRetirementReturn float64
}

// Load reads configuration from the environment after loading an optional .env file
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARNING: failed to load .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			BodyLimit:       getEnv("SERVER_BODY_LIMIT", "1M"),
			MetricsEnabled:  getBoolEnv("METRICS_ENABLED", true),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			TrustedProxies:     getListEnv("TRUSTED_PROXIES"),
		},
		Advisory: AdvisoryConfig{
			Locale:               getEnv("ADVICE_LOCALE", "en-IN"),
			TipSeed:              int64(getIntEnv("ADVICE_TIP_SEED", 0)),
			CurrentAge:           getIntEnv("RETIREMENT_CURRENT_AGE", 30),
			RetirementAge:        getIntEnv("RETIREMENT_AGE", 60),
			YearsInRetirement:    getIntEnv("RETIREMENT_YEARS", 20),
			ReplacementRatio:     getFloatEnv("RETIREMENT_REPLACEMENT_RATIO", 0.8),
			InflationRate:        getFloatEnv("RETIREMENT_INFLATION_RATE", 0.06),
			PreRetirementReturn:  getFloatEnv("RETIREMENT_PRE_RETURN", 0.10),
			PostRetirementReturn: getFloatEnv("RETIREMENT_POST_RETURN", 0.07),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports configuration values the service cannot run with
func (c *Config) Validate() error {
	if _, err := c.Advisory.LocaleTag(); err != nil {
		return err
	}
	if c.Advisory.RetirementAge <= c.Advisory.CurrentAge {
		return fmt.Errorf("RETIREMENT_AGE (%d) must be greater than RETIREMENT_CURRENT_AGE (%d)",
			c.Advisory.RetirementAge, c.Advisory.CurrentAge)
	}
	if c.Advisory.YearsInRetirement <= 0 {
		return fmt.Errorf("RETIREMENT_YEARS must be positive, got %d", c.Advisory.YearsInRetirement)
	}
	if c.Advisory.CurrentAge < 0 {
		return fmt.Errorf("RETIREMENT_CURRENT_AGE must not be negative, got %d", c.Advisory.CurrentAge)
	}

	rates := []struct {
		name     string
		value    float64
		min, max float64
		openMin  bool
	}{
		{"RETIREMENT_REPLACEMENT_RATIO", c.Advisory.ReplacementRatio, 0, 2, true},
		{"RETIREMENT_INFLATION_RATE", c.Advisory.InflationRate, 0, 1, false},
		{"RETIREMENT_PRE_RETURN", c.Advisory.PreRetirementReturn, 0, 1, false},
		// the annuity formula divides by the post-retirement return
		{"RETIREMENT_POST_RETURN", c.Advisory.PostRetirementReturn, 0, 1, true},
	}
	for _, r := range rates {
		tooLow := r.value < r.min || (r.openMin && r.value == r.min)
		if math.IsNaN(r.value) || tooLow || r.value > r.max {
			bound := "["
			if r.openMin {
				bound = "("
			}
			return fmt.Errorf("%s must be in %s%g, %g], got %g", r.name, bound, r.min, r.max, r.value)
		}
	}

	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive")
	}
	if _, err := c.Security.TrustedProxyNets(); err != nil {
		return err
	}
	return nil
}

// TrustedProxyNets parses TrustedProxies; a bare IP becomes a single-address network
func (c *SecurityConfig) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, proxy := range c.TrustedProxies {
		if _, ipNet, err := net.ParseCIDR(proxy); err == nil {
			nets = append(nets, ipNet)
			continue
		}
		ip := net.ParseIP(proxy)
		if ip == nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: expected an IP or CIDR", proxy)
		}
		bits := 128
		if ip.To4() != nil {
			ip = ip.To4()
			bits = 32
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets, nil
}

// LocaleTag parses the configured locale
func (c *AdvisoryConfig) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid ADVICE_LOCALE %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Address returns the host:port the server listens on
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getListEnv splits a comma-separated variable, dropping blank entries
func getListEnv(key string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(key), ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
