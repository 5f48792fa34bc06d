package catalog

import (
	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
)

// Static configuration tables. These mirror the live game data and are
// loaded into the Store alongside the parsed fish table.

var locationTable = []fishing.Location{
	{Name: "Fisherman Island", Price: 0, UnlockLevel: 1, Rank: 1},
	{Name: "Ocean", Price: 500, UnlockLevel: 2, Rank: 2},
	{Name: "Kohana Island", Price: 5000, UnlockLevel: 3, Rank: 3},
	{Name: "Kohana Volcano", Price: 50000, UnlockLevel: 4, Rank: 4},
	{Name: "Coral Reefs", Price: 200000, UnlockLevel: 5, Rank: 5},
	{Name: "Esoteric Depths", Price: 1000000, UnlockLevel: 6, Rank: 6},
	{Name: "Tropical Grove", Price: 5000000, UnlockLevel: 7, Rank: 7},
	{Name: "Crater Island", Price: 8000000, UnlockLevel: 8, Rank: 8},
	{Name: "Lost Isle", Price: 10000000, UnlockLevel: 9, Rank: 9},
	{Name: "Ancient Jungle", Price: 25000000, UnlockLevel: 10, Rank: 10},
}

var rodTable = []fishing.Rod{
	{Name: "Starter Rod", Rarity: fishing.RarityCommon, LuckBonus: 0, SpeedBonus: 0, Capacity: 10, Price: 0, MaxEnchantLevel: 5},
	{Name: "Luck Rod", Rarity: fishing.RarityCommon, LuckBonus: 50, SpeedBonus: 0, Capacity: 15, Price: 150, MaxEnchantLevel: 7},
	{Name: "Carbon Rod", Rarity: fishing.RarityCommon, LuckBonus: 30, SpeedBonus: 4, Capacity: 20, Price: 500, MaxEnchantLevel: 10},
	{Name: "Toy Rod", Rarity: fishing.RarityCommon, LuckBonus: 30, SpeedBonus: 3, Capacity: 18, Price: 0, MaxEnchantLevel: 5},
	{Name: "Lava Rod", Rarity: fishing.RarityUncommon, LuckBonus: 30, SpeedBonus: 2, Capacity: 100, Price: 0, MaxEnchantLevel: 12},
	{Name: "Lucky Rod", Rarity: fishing.RarityRare, LuckBonus: 130, SpeedBonus: 7, Capacity: 5000, Price: 15000, MaxEnchantLevel: 15},
	{Name: "Steampunk Rod", Rarity: fishing.RarityEpic, LuckBonus: 175, SpeedBonus: 19, Capacity: 25000, Price: 125000, MaxEnchantLevel: 20},
	{Name: "Hazmat Rod", Rarity: fishing.RarityLegendary, LuckBonus: 380, SpeedBonus: 32, Capacity: 300000, Price: 1300000, MaxEnchantLevel: 30},
	{Name: "Angler Rod", Rarity: fishing.RarityMythic, LuckBonus: 530, SpeedBonus: 71, Capacity: 500000, Price: 8000000, MaxEnchantLevel: 40},
	{Name: "Bamboo Rod", Rarity: fishing.RarityMythic, LuckBonus: 760, SpeedBonus: 98, Capacity: 500000, Price: 12000000, MaxEnchantLevel: 50},
	{Name: "Ghostfinn Rod", Rarity: fishing.RarityMythic, LuckBonus: 610, SpeedBonus: 118, Capacity: 600000, Price: 0, MaxEnchantLevel: 60},
	{Name: "Element Rod", Rarity: fishing.RaritySecret, LuckBonus: 1111, SpeedBonus: 130, Capacity: 900000, Price: 0, MaxEnchantLevel: 100},
}

var baitTable = []fishing.Bait{
	{Name: "Starter Bait", LuckBonus: 0, Price: 100},
	{Name: "Topwater Bait", LuckBonus: 0, Price: 100},
	{Name: "Luck Bait", LuckBonus: 10, Price: 1000},
	{Name: "Midnight Bait", LuckBonus: 20, Price: 3500},
	{Name: "Beach Ball Bait", LuckBonus: 5, Price: 0},
	{Name: "Nature Bait", LuckBonus: 45, Price: 83000},
	{Name: "Gold Bait", LuckBonus: 25, Price: 0},
	{Name: "Hyper Bait", LuckBonus: 40, Price: 0},
	{Name: "Chroma Bait", LuckBonus: 100, Price: 290000},
	{Name: "Royal Bait", LuckBonus: 130, Price: 425000},
	{Name: "Dark Matter Bait", LuckBonus: 160, Price: 630000},
	{Name: "Corrupt Bait", LuckBonus: 200, Price: 1150000},
	{Name: "Aether Bait", LuckBonus: 240, Price: 3700000},
	{Name: "Floral Bait", LuckBonus: 320, Price: 4000000},
	{Name: "Singularity Bait", LuckBonus: 380, Price: 8200000},
}

// magnitudeRange is a [min, max] pair in kg.
type magnitudeRange struct {
	Min float64
	Max float64
}

// secretMagnitudes overrides the default [1, 10] magnitude range for
// Secret-tier catches. Keyed by the item's clean name (parenthetical
// qualifiers stripped); entries without a matching fish row are kept as
// configuration for pools added later.
var secretMagnitudes = map[string]magnitudeRange{
	"Crystal Crab":       {110520, 130960},
	"Orca":               {115470, 126780},
	"Monster Shark":      {130410, 165610},
	"Eerie Shark":        {1010, 1830},
	"Great Whale":        {90700, 116040},
	"Robot Kraken":       {259820, 389730},
	"King Crab":          {130520, 160960},
	"Kraken":             {103530, 112800},
	"Queen Crab":         {130520, 160960},
	"Blob Shark":         {532.2, 590.5},
	"Ghost Shark":        {1090, 1210},
	"Worm Fish":          {106950, 112040},
	"Lochnes Monster":    {260000, 295000},
	"Thin Armor Shark":   {14150, 21230},
	"Scare":              {142330, 165100},
	"Frostborn Shark":    {7520, 8440},
	"Panther Eel":        {90670, 113400},
	"Giant Squid":        {103530, 112800},
	"King Jelly":         {160000, 190000},
	"Mosasaurus Shark":   {80750, 95880},
	"Elshark Grand Maja": {450000, 520000},
	"Bone Whale":         {230880, 275680},
	"Ancient Whale":      {310890, 355730},
}

var milestoneQuestTable = []fishing.MilestoneQuest{
	{
		ID:        "Lava Rod Quest",
		Title:     "Kohana Quest: Catch 3 Rare Fish",
		Type:      fishing.QuestTypeCatchRarity,
		Rarity:    fishing.RarityRare,
		Goal:      3,
		RewardRod: "Lava Rod",
	},
	{
		ID:        "Ghostfinn Rod Quest",
		Title:     "Deep Sea Quest: Catch 3 Mythic Fish",
		Type:      fishing.QuestTypeCatchRarity,
		Rarity:    fishing.RarityMythic,
		Goal:      3,
		RewardRod: "Ghostfinn Rod",
	},
	{
		ID:        "Element Rod Quest",
		Title:     "Final Trial: Catch 1 Secret Fish",
		Type:      fishing.QuestTypeCatchRarity,
		Rarity:    fishing.RaritySecret,
		Goal:      1,
		RewardRod: "Element Rod",
		PrereqRod: "Ghostfinn Rod",
	},
}

var dailyQuestTemplateTable = []fishing.DailyQuestTemplate{
	{
		ID:          "daily_catch_common",
		Title:       "Daily: Catch 5 Common Fish",
		Type:        fishing.QuestTypeCatchRarity,
		Rarity:      fishing.RarityCommon,
		Goal:        5,
		RewardCoins: 500,
	},
	{
		ID:          "daily_sell_10",
		Title:       "Daily: Sell 10 Fish",
		Type:        fishing.QuestTypeSellCount,
		Goal:        10,
		RewardCoins: 1000,
	},
}
