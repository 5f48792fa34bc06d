package fishing

import (
	"context"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
)

// OutcomeStatus is the terminal state of one catch resolution.
type OutcomeStatus string

// Catch outcome statuses
const (
	OutcomeSuccess OutcomeStatus = "SUCCESS"
	OutcomeFailure OutcomeStatus = "FAILURE"
)

// Outcome carries the result of a single resolved catch. Item is nil for
// failures with no drawn item (empty pool).
type Outcome struct {
	Status    OutcomeStatus
	Item      *fishing.Item
	Rarity    fishing.Rarity
	Magnitude float64
	Reward    float64
}

// Service defines the interface for the reward resolution engine
type Service interface {
	// ResolveCatch performs one catch action for the player
	ResolveCatch(ctx context.Context, input *ResolveCatchInput) (*ResolveCatchOutput, error)

	// GetOrCreatePlayer returns the player record, creating it with
	// defaults on first reference and applying daily quest rollover
	GetOrCreatePlayer(ctx context.Context, input *GetOrCreatePlayerInput) (*GetOrCreatePlayerOutput, error)

	// EffectiveLuck computes the player's current luck modifier
	EffectiveLuck(ctx context.Context, input *EffectiveLuckInput) (*EffectiveLuckOutput, error)

	// ClaimableQuestCount counts quests at goal but not yet claimed
	ClaimableQuestCount(ctx context.Context, input *ClaimableQuestCountInput) (*ClaimableQuestCountOutput, error)

	// ClaimQuest claims a completed milestone or daily quest
	ClaimQuest(ctx context.Context, input *ClaimQuestInput) (*ClaimQuestOutput, error)

	// Travel unlocks the next location in the sequence
	Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error)

	// SetLocation moves the player to an already-unlocked location
	SetLocation(ctx context.Context, input *SetLocationInput) (*SetLocationOutput, error)

	// RecordSale sells items out of the player's inventory
	RecordSale(ctx context.Context, input *RecordSaleInput) (*RecordSaleOutput, error)

	// BuyRod purchases a rod from the shop
	BuyRod(ctx context.Context, input *BuyRodInput) (*BuyRodOutput, error)

	// BuyBait purchases a bait from the shop
	BuyBait(ctx context.Context, input *BuyBaitInput) (*BuyBaitOutput, error)

	// EquipRod equips an owned rod
	EquipRod(ctx context.Context, input *EquipRodInput) (*EquipRodOutput, error)

	// EquipBait equips an owned bait
	EquipBait(ctx context.Context, input *EquipBaitInput) (*EquipBaitOutput, error)

	// EnchantRod raises the enchantment level of the equipped rod
	EnchantRod(ctx context.Context, input *EnchantRodInput) (*EnchantRodOutput, error)

	// SetGlobalEvent updates the process-wide luck event
	SetGlobalEvent(ctx context.Context, input *SetGlobalEventInput) (*SetGlobalEventOutput, error)
}

// ResolveCatchInput contains parameters for resolving a catch
type ResolveCatchInput struct {
	PlayerID string
}

// ResolveCatchOutput contains the terminal outcome of the catch
type ResolveCatchOutput struct {
	Outcome *Outcome

	// Balance after the catch resolved.
	Balance float64
}

// GetOrCreatePlayerInput contains parameters for fetching a player
type GetOrCreatePlayerInput struct {
	PlayerID string
}

// GetOrCreatePlayerOutput contains the player record
type GetOrCreatePlayerOutput struct {
	Record *fishing.PlayerRecord
}

// EffectiveLuckInput contains parameters for the luck query
type EffectiveLuckInput struct {
	PlayerID string
}

// EffectiveLuckOutput contains the computed luck modifier
type EffectiveLuckOutput struct {
	Luck int32
}

// ClaimableQuestCountInput contains parameters for the completion query
type ClaimableQuestCountInput struct {
	PlayerID string
}

// ClaimableQuestCountOutput contains the claimable count
type ClaimableQuestCountOutput struct {
	Count int32
}

// ClaimQuestInput contains parameters for claiming a quest
type ClaimQuestInput struct {
	PlayerID string
	QuestID  string
}

// ClaimQuestOutput describes what the claim granted
type ClaimQuestOutput struct {
	RewardRod   string
	RewardCoins float64
	Balance     float64
}

// TravelInput contains parameters for unlocking a location
type TravelInput struct {
	PlayerID string
	Location string
}

// TravelOutput contains the unlock result
type TravelOutput struct {
	Location fishing.Location
	Balance  float64
}

// SetLocationInput contains parameters for moving to an unlocked location
type SetLocationInput struct {
	PlayerID string
	Location string
}

// SetLocationOutput contains the move result
type SetLocationOutput struct {
	Location string
}

// RecordSaleInput contains parameters for selling inventory items
type RecordSaleInput struct {
	PlayerID string
	ItemName string
	Count    int32
}

// RecordSaleOutput contains the sale result
type RecordSaleOutput struct {
	Earned    float64
	Balance   float64
	Remaining int32
}

// BuyRodInput contains parameters for buying a rod
type BuyRodInput struct {
	PlayerID string
	RodName  string
}

// BuyRodOutput contains the purchase result
type BuyRodOutput struct {
	Rod     fishing.Rod
	Balance float64
}

// BuyBaitInput contains parameters for buying a bait
type BuyBaitInput struct {
	PlayerID string
	BaitName string
}

// BuyBaitOutput contains the purchase result
type BuyBaitOutput struct {
	Bait    fishing.Bait
	Balance float64
}

// EquipRodInput contains parameters for equipping a rod
type EquipRodInput struct {
	PlayerID string
	RodName  string
}

// EquipRodOutput contains the equip result
type EquipRodOutput struct {
	RodName string
}

// EquipBaitInput contains parameters for equipping a bait
type EquipBaitInput struct {
	PlayerID string
	BaitName string
}

// EquipBaitOutput contains the equip result
type EquipBaitOutput struct {
	BaitName string
}

// EnchantRodInput contains parameters for enchanting the equipped rod
type EnchantRodInput struct {
	PlayerID string
}

// EnchantRodOutput contains the enchant result
type EnchantRodOutput struct {
	RodName string
	Level   int32
	Cost    float64
	Balance float64
}

// SetGlobalEventInput contains parameters for the event admin action
type SetGlobalEventInput struct {
	Multiplier float64
	Active     bool
}

// SetGlobalEventOutput confirms the applied event state
type SetGlobalEventOutput struct {
	Multiplier float64
	Active     bool
}
