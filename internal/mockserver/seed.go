package mockserver

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/domain"
)

var (
	seedVersions    = []string{"1.2.3", "1.2.4", "1.3.0-beta", "1.3.0", "1.2.5-rc1"}
	seedServerTypes = []string{"Production", "Development", "Testing", "Staging", "QA"}
	seedRegions     = []string{"US", "EU", "AP", "JP", "AU"}
	seedCapacities  = []int{10, 20, 30, 50, 100}
)

// basePort is the game port of the first generated server.
const basePort = 2456

// maxPingAge bounds how stale a generated heartbeat may be.
const maxPingAge = 5 * time.Minute

// GenerateServers builds count servers named srv-001, srv-002, ... with
// random region, type, status, capacity and version drawn from rng.
func GenerateServers(count int, rng *rand.Rand, now time.Time) []domain.Server {
	servers := make([]domain.Server, 0, count)
	for i := 0; i < count; i++ {
		n := i + 1
		region := seedRegions[rng.Intn(len(seedRegions))]
		serverType := seedServerTypes[rng.Intn(len(seedServerTypes))]
		maxPlayers := seedCapacities[rng.Intn(len(seedCapacities))]

		srv := domain.Server{
			ID:         fmt.Sprintf("srv-%03d", n),
			Name:       fmt.Sprintf("%s %s Server %d", region, serverType, n),
			Address:    fmt.Sprintf("%s-%d.gameserver.com:%d", strings.ToLower(region), n, basePort+i),
			Status:     domain.StatusOffline,
			MaxPlayers: maxPlayers,
			Version:    seedVersions[rng.Intn(len(seedVersions))],
		}
		if rng.Intn(2) == 0 {
			srv.Status = domain.StatusOnline
			srv.Players = rng.Intn(maxPlayers)
			ping := now.Add(-time.Duration(rng.Int63n(int64(maxPingAge/time.Millisecond))+1) * time.Millisecond).UnixMilli()
			srv.LastPing = &ping
		}
		servers = append(servers, srv)
	}
	return servers
}

// catalogMods is the mod set installed on every generated server.
func catalogMods() []domain.Mod {
	return []domain.Mod{
		{
			ID:           "mod-001",
			Name:         "CLLC",
			Title:        "Creature Level and Loot Control",
			Description:  "Puts YOU in control of creature level and loot!",
			Version:      "1.0.0",
			Author:       "Author1",
			Enabled:      true,
			Configurable: true,
			Dependencies: []string{},
			LastUpdated:  "2024-02-20",
		},
		{
			ID:           "mod-002",
			Name:         "EpicLoot",
			Title:        "Epic Loot",
			Description:  "Adds loot drops, magic items, and enchanting.",
			Version:      "2.0.0",
			Author:       "Author2",
			Enabled:      true,
			Configurable: true,
			Dependencies: []string{},
			LastUpdated:  "2024-02-20",
		},
	}
}

func catalogConfigs() []domain.ModConfig {
	return []domain.ModConfig{
		{
			ID:    "cfg-001",
			ModID: "mod-001",
			Name:  "CLLC",
			Content: `[General]
enabled=true
debugMode=false

[Creatures]
levelMin=1
levelMax=10
bossLevelMultiplier=2`,
			LastModified: time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:    "cfg-002",
			ModID: "mod-002",
			Name:  "Epic Loot",
			Content: `[General]
enabled=true
debugMode=false

[Loot]
dropChance=0.25
magicItemChance=0.6
rareItemChance=0.3
legendaryItemChance=0.1`,
			LastModified: time.Date(2024, 2, 19, 16, 0, 0, 0, time.UTC),
		},
	}
}

func seedLogs() []domain.ConsoleLog {
	return []domain.ConsoleLog{
		{
			ID:        "log-001",
			Timestamp: time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
			Level:     domain.LevelInfo,
			Message:   "Server started successfully",
			Source:    domain.SourceSystem,
		},
		{
			ID:        "log-002",
			Timestamp: time.Date(2024, 2, 20, 10, 0, 1, 0, time.UTC),
			Level:     domain.LevelInfo,
			Message:   "Loading world data...",
			Source:    domain.SourceSystem,
		},
	}
}
