package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/trackers"
)

func main() {
	ctx := context.Background()

	var repo trackers.Repository

	// Prefer Redis when configured, otherwise read the JSON files
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}

		client := redis.NewClient(opts)
		defer client.Close()

		if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
			log.Fatalf("Failed to connect to Redis: %v", pingErr)
		}
		repo = trackers.NewRedis(client)
	} else {
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "bot_data"
		}

		fileRepo, err := trackers.NewFileRepository(dir)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", dir, err)
		}
		repo = fileRepo
	}

	channelIDs, err := repo.ListChannelIDs(ctx)
	if err != nil {
		log.Fatalf("Failed to list trackers: %v", err)
	}
	sort.Strings(channelIDs)

	fmt.Printf("Found %d trackers:\n", len(channelIDs))
	for _, channelID := range channelIDs {
		tracker, getErr := repo.Get(ctx, channelID)
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", channelID, getErr)
			continue
		}

		state := "idle"
		if tracker.IsActive {
			state = fmt.Sprintf("round %d", tracker.Round)
		}
		fmt.Printf("  %s: %d combatants, %s\n", channelID, len(tracker.Combatants), state)
	}
}
