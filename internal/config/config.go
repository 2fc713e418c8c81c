package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"journey-route-service/internal/domain"
)

// Get returns an environment variable or a fallback value.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RoutingConfig selects the routing service and the per-mode profiles.
type RoutingConfig struct {
	BaseURL  string            `yaml:"baseURL" validate:"omitempty,url"`
	Profiles map[string]string `yaml:"profiles" validate:"omitempty,dive,keys,oneof=train car foot,endkeys,required"`
}

// CurveConfig tunes the synthetic fallback geometry.
type CurveConfig struct {
	Curvature float64 `yaml:"curvature" validate:"gte=0"`
	Samples   int     `yaml:"samples" validate:"omitempty,gte=2"`
}

// CacheConfig selects the route geometry cache backend.
type CacheConfig struct {
	Backend string `yaml:"backend" validate:"omitempty,oneof=none sqlite postgres redis"`
	Path    string `yaml:"path"`
	URL     string `yaml:"url"`
	Addr    string `yaml:"addr"`
}

// SiteConfig is the root of site.yml.
type SiteConfig struct {
	Content string        `yaml:"content"`
	Output  string        `yaml:"output"`
	Routing RoutingConfig `yaml:"routing"`
	Curve   CurveConfig   `yaml:"curve"`
	Cache   CacheConfig   `yaml:"cache"`
}

// Default returns the configuration used when no site.yml exists.
func Default() SiteConfig {
	return SiteConfig{
		Content: "content/entries",
		Output:  "data/routes",
		Routing: RoutingConfig{
			BaseURL: "https://router.project-osrm.org",
		},
		Cache: CacheConfig{
			Backend: "sqlite",
			Path:    "data/routes.db",
		},
	}
}

// LoadSite reads and validates site.yml. A missing file is not an error:
// the defaults apply and env vars can still override at the composition
// roots.
func LoadSite(path string) (SiteConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return SiteConfig{}, fmt.Errorf("load site config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("load site config %q: %w", path, err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("validate site config %q: %w", path, err)
	}

	return cfg, nil
}

// Profiles converts the configured mode->profile map to domain keys,
// falling back to the provider defaults for any mode left unset.
func (c RoutingConfig) ModeProfiles(defaults map[domain.TransportMode]string) (map[domain.TransportMode]string, error) {
	out := make(map[domain.TransportMode]string, len(defaults))
	for m, p := range defaults {
		out[m] = p
	}

	for k, p := range c.Profiles {
		mode, err := domain.ParseMode(k)
		if err != nil {
			return nil, fmt.Errorf("routing profiles: %w", err)
		}
		if !mode.Routable() {
			return nil, fmt.Errorf("routing profiles: mode %q is not routable", k)
		}
		out[mode] = p
	}

	return out, nil
}
