package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Modos de emisión de credenciales.
const (
	TokenModeJWT = "jwt" // token firmado HS256
	TokenModeDev = "dev" // token plano "dev-<usuario>@<escritorio>", solo para desarrollo
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	DB    DBConfig
	Auth  AuthConfig
	HTTP  HTTPConfig
	Seeds SeedsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL     string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	StartupAttempts int // intentos de conexión al arrancar (1 por segundo)
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AuthConfig configuración de credenciales de sesión.
type AuthConfig struct {
	TokenMode       string // jwt | dev
	DevTokenEnabled bool   // acepta el centinela "dev-token"
	JWTSecret       string
	ExpMinutes      int
	Issuer          string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SeedsConfig habilita la carga de datos de demostración vía HTTP.
type SeedsConfig struct {
	Enabled bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getString(v, "APP_ENV", "development")
	defaultMode := TokenModeJWT
	if env == "development" {
		defaultMode = TokenModeDev
	}

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "juridico-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL:     getString(v, "DATABASE_URL", ""),
			Host:            getString(v, "DB_HOST", "localhost"),
			Port:            getInt(v, "DB_PORT", 5432),
			User:            getString(v, "DB_USER", "postgres"),
			Password:        getString(v, "DB_PASSWORD", ""),
			DBName:          getString(v, "DB_NAME", "juridico"),
			SSLMode:         getString(v, "DB_SSLMODE", "disable"),
			MaxConns:        getInt(v, "DB_MAX_CONNS", 25),
			StartupAttempts: getInt(v, "DB_STARTUP_ATTEMPTS", 30),
		},
		Auth: AuthConfig{
			TokenMode:       strings.ToLower(getString(v, "AUTH_TOKEN_MODE", defaultMode)),
			DevTokenEnabled: getBool(v, "AUTH_DEV_TOKEN_ENABLED", env == "development"),
			JWTSecret:       getString(v, "JWT_SECRET", ""),
			ExpMinutes:      getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:          getString(v, "JWT_ISSUER", "juridico-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8000),
			CORSOrigins: splitList(getString(v, "CORS_ORIGINS", "")),
		},
		Seeds: SeedsConfig{
			Enabled: getBool(v, "SEEDS_ENABLED", env == "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica combinaciones inválidas de configuración.
func (c *Config) Validate() error {
	switch c.Auth.TokenMode {
	case TokenModeJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("config: JWT_SECRET es obligatorio con AUTH_TOKEN_MODE=jwt")
		}
	case TokenModeDev:
	default:
		return fmt.Errorf("config: AUTH_TOKEN_MODE inválido %q (jwt|dev)", c.Auth.TokenMode)
	}
	if c.DB.StartupAttempts < 1 {
		c.DB.StartupAttempts = 1
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	return v.GetBool(key)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
