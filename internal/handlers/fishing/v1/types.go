package v1

import (
	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
)

// ErrorResponse is the JSON body for every non-2xx reply.
type ErrorResponse struct {
	Error string                 `json:"error"`
	Code  string                 `json:"code"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// CatchResponse reports one resolved catch.
type CatchResponse struct {
	Status    string  `json:"status"`
	Item      string  `json:"item,omitempty"`
	Rarity    string  `json:"rarity"`
	Magnitude float64 `json:"magnitude"`
	Reward    float64 `json:"reward"`
	Balance   float64 `json:"balance"`
}

// DailyQuestView is the wire shape of one live daily quest.
type DailyQuestView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Goal        int32   `json:"goal"`
	Progress    int32   `json:"progress"`
	RewardCoins float64 `json:"reward_coins"`
	Claimed     bool    `json:"claimed"`
}

// PlayerResponse is the profile view of a player record.
type PlayerResponse struct {
	ID                string           `json:"id"`
	Balance           float64          `json:"balance"`
	Location          string           `json:"location"`
	UnlockedLocations []string         `json:"unlocked_locations"`
	EquippedRod       string           `json:"equipped_rod"`
	EquippedBait      string           `json:"equipped_bait"`
	OwnedRods         []string         `json:"owned_rods"`
	OwnedBaits        []string         `json:"owned_baits"`
	Enchantments      map[string]int32 `json:"enchantments"`
	Inventory         map[string]int32 `json:"inventory"`
	QuestProgress     map[string]int32 `json:"quest_progress"`
	DailyQuests       []DailyQuestView `json:"daily_quests"`
	Luck              int32            `json:"luck"`
	ClaimableCount    int32            `json:"claimable_count"`
}

// LuckResponse carries the computed luck modifier.
type LuckResponse struct {
	Luck int32 `json:"luck"`
}

// ClaimableResponse carries the claimable quest count.
type ClaimableResponse struct {
	Count int32 `json:"count"`
}

// ClaimResponse reports what a quest claim granted.
type ClaimResponse struct {
	RewardRod   string  `json:"reward_rod,omitempty"`
	RewardCoins float64 `json:"reward_coins,omitempty"`
	Balance     float64 `json:"balance"`
}

// TravelRequest names the location to unlock or move to.
type TravelRequest struct {
	Location string `json:"location"`
}

// TravelResponse reports a successful unlock.
type TravelResponse struct {
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Balance  float64 `json:"balance"`
}

// LocationResponse reports the player's active location.
type LocationResponse struct {
	Location string `json:"location"`
}

// SellRequest names the inventory item and count to sell.
type SellRequest struct {
	Item  string `json:"item"`
	Count int32  `json:"count"`
}

// SellResponse reports the proceeds of a sale.
type SellResponse struct {
	Earned    float64 `json:"earned"`
	Balance   float64 `json:"balance"`
	Remaining int32   `json:"remaining"`
}

// GearRequest names a rod or bait for buy/equip actions.
type GearRequest struct {
	Name string `json:"name"`
}

// GearResponse reports a completed buy/equip action.
type GearResponse struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance,omitempty"`
}

// EnchantResponse reports an enchantment purchase.
type EnchantResponse struct {
	Rod     string  `json:"rod"`
	Level   int32   `json:"level"`
	Cost    float64 `json:"cost"`
	Balance float64 `json:"balance"`
}

// EventRequest is the admin body for the global luck event.
type EventRequest struct {
	Multiplier float64 `json:"multiplier"`
	Active     bool    `json:"active"`
}

// EventResponse confirms the applied event state.
type EventResponse struct {
	Multiplier float64 `json:"multiplier"`
	Active     bool    `json:"active"`
}

func toPlayerResponse(record *fishing.PlayerRecord, luck, claimable int32) *PlayerResponse {
	dailies := make([]DailyQuestView, 0, len(record.DailyQuests))
	for _, quest := range record.DailyQuests {
		dailies = append(dailies, DailyQuestView{
			ID:          quest.ID,
			Title:       quest.Title,
			Goal:        quest.Goal,
			Progress:    quest.Progress,
			RewardCoins: quest.RewardCoins,
			Claimed:     quest.Claimed,
		})
	}

	return &PlayerResponse{
		ID:                record.ID,
		Balance:           record.Balance,
		Location:          record.Location,
		UnlockedLocations: record.UnlockedLocations,
		EquippedRod:       record.EquippedRod,
		EquippedBait:      record.EquippedBait,
		OwnedRods:         record.OwnedRods,
		OwnedBaits:        record.OwnedBaits,
		Enchantments:      record.Enchantments,
		Inventory:         record.Inventory,
		QuestProgress:     record.QuestProgress,
		DailyQuests:       dailies,
		Luck:              luck,
		ClaimableCount:    claimable,
	}
}
