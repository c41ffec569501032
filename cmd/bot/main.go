package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/initiative-bot-discord/internal/config"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/middleware"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/ledgers"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/trackers"
	"github.com/KirkDiggler/initiative-bot-discord/internal/services"
	"github.com/KirkDiggler/initiative-bot-discord/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Discord.Token) > 12 {
		log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	}
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	providerConfig := &services.ProviderConfig{
		UUIDGenerator:  &uuid.ShortGenerator{},
		ConfirmTimeout: cfg.Bot.ConfirmTimeout,
	}
	var rateLimitStore middleware.RateLimitStore

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Fatalf("Failed to parse Redis URL: %v", parseErr)
		}
		redisClient = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		pingErr := redisClient.Ping(ctx).Err()
		cancel()
		if pingErr != nil {
			log.Fatalf("Failed to connect to Redis: %v", pingErr)
		}
		log.Println("Successfully connected to Redis")

		providerConfig.TrackerRepository = trackers.NewRedis(redisClient)
		providerConfig.LedgerRepository = ledgers.NewRedis(redisClient)
		rateLimitStore = middleware.NewRedisRateLimitStore(redisClient)

	case config.StorageFile:
		trackerRepo, repoErr := trackers.NewFileRepository(cfg.Storage.DataDir)
		if repoErr != nil {
			log.Fatalf("Failed to open tracker storage: %v", repoErr)
		}
		ledgerRepo, repoErr := ledgers.NewFileRepository(cfg.Storage.DataDir)
		if repoErr != nil {
			log.Fatalf("Failed to open experience storage: %v", repoErr)
		}

		providerConfig.TrackerRepository = trackerRepo
		providerConfig.LedgerRepository = ledgerRepo
		log.Printf("Using JSON files in %s for persistence", cfg.Storage.DataDir)

	default:
		log.Println("Using in-memory repositories, state is lost on restart")
	}

	serviceProvider := services.NewProvider(providerConfig)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	loaded, err := serviceProvider.InitiativeService.LoadAll(loadCtx)
	cancelLoad()
	if err != nil {
		log.Printf("Failed to load saved trackers: %v", err)
	} else {
		log.Printf("Loaded %d saved trackers", loaded)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions

	bot := discord.NewBot(&discord.BotConfig{
		Messenger:          dg,
		ServiceProvider:    serviceProvider,
		RateLimitPerMinute: cfg.Bot.RateLimitPerMinute,
		RateLimitStore:     rateLimitStore,
	})
	bot.Attach(dg)

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	appID := cfg.Discord.AppID
	if appID == "" && dg.State != nil && dg.State.User != nil {
		appID = dg.State.User.ID
	}
	if err := discord.RegisterCommands(dg, appID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
