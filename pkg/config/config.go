package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Dashboard DashboardConfig
	Chart     ChartConfig
	RateLimit RateLimitConfig
	Docs      DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
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

// DashboardConfig parámetros del pipeline de datos.
type DashboardConfig struct {
	Seed uint64 // semilla del dataset sintético
	TopN int    // porciones del gráfico de clientes
}

// ChartConfig tamaño de los SVG generados.
type ChartConfig struct {
	Width  int
	Height int
}

// RateLimitConfig límite de peticiones por IP (token bucket).
type RateLimitConfig struct {
	RPS   float64 // 0 = desactivado
	Burst int
}

// Enabled indica si el limitador debe montarse.
func (c RateLimitConfig) Enabled() bool { return c.RPS > 0 }

// DocsConfig documentación Swagger.
type DocsConfig struct {
	SwaggerFile string // vacío = no se monta /docs
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATASET_SEED, etc.
// Devuelve error si algún valor no se puede convertir o no pasa Validate.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l := loader{v: v}
	cfg := &Config{
		App: AppConfig{
			Env:      l.getString("APP_ENV", "development"),
			Name:     l.getString("APP_NAME", "finance-dashboard"),
			LogLevel: l.getString("LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: l.getString("HTTP_HOST", "0.0.0.0"),
			Port: l.getInt("HTTP_PORT", 8080),
		},
		Dashboard: DashboardConfig{
			Seed: l.getUint64("DATASET_SEED", 42),
			TopN: l.getInt("DASHBOARD_TOP_N", 5),
		},
		Chart: ChartConfig{
			Width:  l.getInt("CHART_WIDTH", 800),
			Height: l.getInt("CHART_HEIGHT", 400),
		},
		RateLimit: RateLimitConfig{
			RPS:   l.getFloat("RATE_LIMIT_RPS", 20),
			Burst: l.getInt("RATE_LIMIT_BURST", 40),
		},
		Docs: DocsConfig{
			SwaggerFile: l.getString("SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if len(l.errs) > 0 {
		return nil, fmt.Errorf("configuración inválida:\n- %s", strings.Join(l.errs, "\n- "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa rangos y combina todos los problemas en un solo error.
func (c *Config) Validate() error {
	var errs []string

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Sprintf("HTTP_PORT %d fuera de rango (1-65535)", c.HTTP.Port))
	}
	if c.Dashboard.TopN < 1 || c.Dashboard.TopN > 10 {
		errs = append(errs, fmt.Sprintf("DASHBOARD_TOP_N %d fuera de rango (1-10)", c.Dashboard.TopN))
	}
	if c.Chart.Width < 200 || c.Chart.Height < 150 {
		errs = append(errs, fmt.Sprintf("tamaño de gráfico %dx%d demasiado pequeño (mínimo 200x150)", c.Chart.Width, c.Chart.Height))
	}
	if c.RateLimit.RPS < 0 {
		errs = append(errs, "RATE_LIMIT_RPS no puede ser negativo")
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		errs = append(errs, "RATE_LIMIT_BURST debe ser al menos 1 si el límite está activo")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuración inválida:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// loader lee claves con valor por defecto y acumula errores de conversión.
type loader struct {
	v    *viper.Viper
	errs []string
}

func (l *loader) getString(key, def string) string {
	if l.v.IsSet(key) {
		return l.v.GetString(key)
	}
	return def
}

func (l *loader) getInt(key string, def int) int {
	if !l.v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(l.v.GetString(key)))
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s=%q no es un entero", key, l.v.GetString(key)))
		return def
	}
	return n
}

func (l *loader) getUint64(key string, def uint64) uint64 {
	if !l.v.IsSet(key) {
		return def
	}
	n, err := strconv.ParseUint(strings.TrimSpace(l.v.GetString(key)), 10, 64)
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s=%q no es un entero sin signo", key, l.v.GetString(key)))
		return def
	}
	return n
}

func (l *loader) getFloat(key string, def float64) float64 {
	if !l.v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(l.v.GetString(key)), 64)
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s=%q no es un número", key, l.v.GetString(key)))
		return def
	}
	return f
}
