package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	API        APIConfig
	Session    SessionConfig
	Cloudinary CloudinaryConfig
	Telegram   TelegramConfig
	Log        LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsProduction indica si la app corre en producción (cookies Secure, logs JSON).
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig backend REST de FoodHub.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int // 0 = sin timeout
}

// Timeout devuelve el timeout de red como duración.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig cookie que refleja el token del backend.
type SessionConfig struct {
	CookieName  string
	MaxAgeHours int
}

// MaxAge devuelve la vida por defecto de la cookie.
func (c SessionConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeHours) * time.Hour
}

// CloudinaryConfig host de imágenes (unsigned upload preset).
type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	Folder       string
}

// TelegramConfig notificación opcional a cocina. Vacío = deshabilitado.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_URL, CLOUDINARY_CLOUD_NAME, etc.
func Load() (*Config, error) {
	// .env se vuelca al entorno del proceso; no pisa variables ya definidas
	_ = godotenv.Load()

	v := viper.New()

	// Opcional: config.env en el directorio actual o ./config
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "foodhub-web"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_URL", "http://localhost:8000"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			CookieName:  getString(v, "SESSION_COOKIE_NAME", "auth_token"),
			MaxAgeHours: getInt(v, "SESSION_MAX_AGE_HOURS", 24*7),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:    getString(v, "CLOUDINARY_CLOUD_NAME", ""),
			UploadPreset: getString(v, "CLOUDINARY_UPLOAD_PRESET", "menu_uploads"),
			Folder:       getString(v, "CLOUDINARY_FOLDER", "menu"),
		},
		Telegram: TelegramConfig{
			BotToken: getString(v, "TELEGRAM_BOT_TOKEN", ""),
			ChatID:   int64(getInt(v, "TELEGRAM_CHAT_ID", 0)),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: API_URL inválida: %q", c.API.BaseURL)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("config: SESSION_COOKIE_NAME vacío")
	}
	if c.Session.MaxAgeHours <= 0 {
		c.Session.MaxAgeHours = 24 * 7
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
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
