package container

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/dissertai-lambda/internal/auth"
	"github.com/saulo-duarte/dissertai-lambda/internal/coach"
	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"github.com/saulo-duarte/dissertai-lambda/internal/conversation"
	"github.com/saulo-duarte/dissertai-lambda/internal/gemini"
	"github.com/saulo-duarte/dissertai-lambda/internal/repertoire"
	"github.com/saulo-duarte/dissertai-lambda/internal/router"
	"github.com/saulo-duarte/dissertai-lambda/internal/style"
)

type Container struct {
	RepertoireContainer   *repertoire.RepertoireContainer
	CoachContainer        *coach.CoachContainer
	StyleContainer        *style.StyleContainer
	ConversationContainer *conversation.ConversationContainer
}

func New() *Container {
	ctx := context.Background()

	config.Init()
	auth.Init()
	config.InitCrypto()

	generator, err := gemini.NewGeminiProvider(ctx, os.Getenv("GEMINI_API_KEY"), config.GetEnv("GEMINI_MODEL", gemini.DefaultModel))
	if err != nil {
		log.Fatalf("failed to create Gemini client: %v", err)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&conversation.Conversation{}); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	return &Container{
		RepertoireContainer:   repertoire.NewRepertoireContainer(generator),
		CoachContainer:        coach.NewCoachContainer(generator),
		StyleContainer:        style.NewStyleContainer(generator, newStyleCache(ctx)),
		ConversationContainer: conversation.NewConversationContainer(config.DB),
	}
}

// newStyleCache uses redis when REDIS_URL is set so every Lambda instance
// shares rewrites, and an in-process cache otherwise.
func newStyleCache(ctx context.Context) style.Cache {
	ttl := config.GetDuration("STYLE_CACHE_TTL", style.DefaultCacheTTL)

	url := os.Getenv("REDIS_URL")
	if url == "" {
		return style.NewMemoryCache(ttl)
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		config.Logger.WithError(err).Warn("failed to parse REDIS_URL, using it as address")
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		config.Logger.WithError(err).Warn("redis unavailable, using in-memory style cache")
		_ = rdb.Close()
		return style.NewMemoryCache(ttl)
	}
	return style.NewRedisCache(rdb, ttl)
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		RepertoireHandler:   c.RepertoireContainer.Handler,
		CoachHandler:        c.CoachContainer.Handler,
		StyleHandler:        c.StyleContainer.Handler,
		ConversationHandler: c.ConversationContainer.Handler,
	})
}
