package deps

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/logger"
	"github.com/MrSnakeDoc/museum/internal/router"
	"github.com/MrSnakeDoc/museum/internal/search"
	"github.com/MrSnakeDoc/museum/internal/sitemap"
	"github.com/MrSnakeDoc/museum/internal/viewer"
)

// Store is the persisted-state surface the handlers depend on. The redis
// store satisfies it; tests substitute an in-memory fake.
type Store interface {
	GetTheme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	IncrementViews(ctx context.Context, ct domain.ContentType, id string) (int64, error)
	GetCachedFeatured(ctx context.Context, feature string) (content.FeaturedImage, bool, error)
	CacheFeatured(ctx context.Context, feature string, img content.FeaturedImage, ttl time.Duration) error
}

type Deps struct {
	Logger             logger.Logger
	StartTime          time.Time
	Version            string
	Commit             string
	BuildDate          string
	GoVersion          string
	TimeNow            func() time.Time        // for testing, defaults to time.Now
	AllowedHosts       []string                // Host headers allowed to access the server
	AllowedCIDRS       []string                // IPs allowed to access ops endpoints
	TrustProxy         bool                    // true if running behind a trusted reverse proxy
	RedisClient        *redis.Client           // Redis client connection
	Store              Store                   // preferences, view counters, featured cache
	Registry           *content.Registry       // in-memory content registry
	Index              *search.Index           // flattened search index
	Search             *search.Engine          // search surface state machine
	Router             *router.Router          // navigation engine
	Viewer             *viewer.Viewer          // lightbox/grid assembly
	Sitemap            []sitemap.Node          // validated sitemap tree (nil if disabled)
	Featured           *content.FeaturedLoader // featured image lookup by feature name
	FeaturedTTL        time.Duration           // TTL for cached featured images
	AssetsDir          string                  // static assets root (empty disables serving)
	SearchBurst        int                     // rate limit burst for /api/search
	SearchRefillPerMin int                     // rate limit refill for /api/search
	ReloadTrigger      chan struct{}           // Channel to trigger manual content reload
}
