package fishing

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/fishing-api/internal/errors"
)

// RecordSale sells items out of the player's inventory at their base
// reward value and advances sell-count quests.
func (o *orchestrator) RecordSale(ctx context.Context, input *RecordSaleInput) (*RecordSaleOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ItemName == "" {
		return nil, errors.InvalidArgument("item name is required")
	}
	if input.Count <= 0 {
		return nil, errors.InvalidArgument("count must be positive")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	item, ok := o.catalog.Item(input.ItemName)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", input.ItemName)
	}

	have := record.Inventory[item.Name]
	if have < input.Count {
		return nil, errors.FailedPrecondition("not enough items to sell").
			WithMeta("item", item.Name).
			WithMeta("have", have).
			WithMeta("want", input.Count)
	}

	earned := item.BaseReward * float64(input.Count)
	record.Balance += earned
	record.Inventory[item.Name] = have - input.Count

	o.applySellProgress(record, input.Count)

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	slog.Info("items sold",
		"player_id", record.ID,
		"item", item.Name,
		"count", input.Count,
		"earned", earned)

	return &RecordSaleOutput{
		Earned:    earned,
		Balance:   record.Balance,
		Remaining: record.Inventory[item.Name],
	}, nil
}

// BuyRod purchases a rod from the shop. Rods with no price are quest
// rewards and cannot be bought.
func (o *orchestrator) BuyRod(ctx context.Context, input *BuyRodInput) (*BuyRodOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.RodName == "" {
		return nil, errors.InvalidArgument("rod name is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	rod, ok := o.catalog.Rod(input.RodName)
	if !ok {
		return nil, errors.NotFoundf("rod %s not found", input.RodName)
	}
	if record.OwnsRod(rod.Name) {
		return nil, errors.AlreadyExists("rod already owned").
			WithMeta("rod", rod.Name)
	}
	if rod.Price <= 0 {
		return nil, errors.FailedPrecondition("rod is not for sale").
			WithMeta("rod", rod.Name)
	}
	if record.Balance < rod.Price {
		return nil, errors.FailedPrecondition("insufficient funds").
			WithMeta("price", rod.Price).
			WithMeta("balance", record.Balance)
	}

	record.Balance -= rod.Price
	record.OwnedRods = append(record.OwnedRods, rod.Name)
	if record.Enchantments == nil {
		record.Enchantments = map[string]int32{}
	}
	record.Enchantments[rod.Name] = 0

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	return &BuyRodOutput{Rod: rod, Balance: record.Balance}, nil
}

// BuyBait purchases a bait from the shop.
func (o *orchestrator) BuyBait(ctx context.Context, input *BuyBaitInput) (*BuyBaitOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.BaitName == "" {
		return nil, errors.InvalidArgument("bait name is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	bait, ok := o.catalog.Bait(input.BaitName)
	if !ok {
		return nil, errors.NotFoundf("bait %s not found", input.BaitName)
	}
	if record.OwnsBait(bait.Name) {
		return nil, errors.AlreadyExists("bait already owned").
			WithMeta("bait", bait.Name)
	}
	if bait.Price <= 0 {
		return nil, errors.FailedPrecondition("bait is not for sale").
			WithMeta("bait", bait.Name)
	}
	if record.Balance < bait.Price {
		return nil, errors.FailedPrecondition("insufficient funds").
			WithMeta("price", bait.Price).
			WithMeta("balance", record.Balance)
	}

	record.Balance -= bait.Price
	record.OwnedBaits = append(record.OwnedBaits, bait.Name)

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	return &BuyBaitOutput{Bait: bait, Balance: record.Balance}, nil
}

// EquipRod equips an owned rod.
func (o *orchestrator) EquipRod(ctx context.Context, input *EquipRodInput) (*EquipRodOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.RodName == "" {
		return nil, errors.InvalidArgument("rod name is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !record.OwnsRod(input.RodName) {
		return nil, errors.FailedPrecondition("rod not owned").
			WithMeta("rod", input.RodName)
	}

	record.EquippedRod = input.RodName

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	return &EquipRodOutput{RodName: input.RodName}, nil
}

// EquipBait equips an owned bait.
func (o *orchestrator) EquipBait(ctx context.Context, input *EquipBaitInput) (*EquipBaitOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.BaitName == "" {
		return nil, errors.InvalidArgument("bait name is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !record.OwnsBait(input.BaitName) {
		return nil, errors.FailedPrecondition("bait not owned").
			WithMeta("bait", input.BaitName)
	}

	record.EquippedBait = input.BaitName

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	return &EquipBaitOutput{BaitName: input.BaitName}, nil
}

// EnchantRod raises the enchantment level of the equipped rod. Each
// level adds 10 luck before the event multiplier; cost scales with the
// rod's price and the level being bought.
func (o *orchestrator) EnchantRod(ctx context.Context, input *EnchantRodInput) (*EnchantRodOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	rod, ok := o.catalog.Rod(record.EquippedRod)
	if !ok {
		return nil, errors.Internalf("equipped rod %s missing from catalog", record.EquippedRod)
	}

	level := record.EnchantLevel(rod.Name)
	if level >= rod.MaxEnchantLevel {
		return nil, errors.FailedPrecondition("rod is at max enchantment").
			WithMeta("rod", rod.Name).
			WithMeta("level", level)
	}

	cost := enchantCost(rod.Price, level)
	if record.Balance < cost {
		return nil, errors.FailedPrecondition("insufficient funds").
			WithMeta("price", cost).
			WithMeta("balance", record.Balance)
	}

	record.Balance -= cost
	if record.Enchantments == nil {
		record.Enchantments = map[string]int32{}
	}
	record.Enchantments[rod.Name] = level + 1

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	slog.Info("rod enchanted",
		"player_id", record.ID,
		"rod", rod.Name,
		"level", level+1,
		"cost", cost)

	return &EnchantRodOutput{
		RodName: rod.Name,
		Level:   level + 1,
		Cost:    cost,
		Balance: record.Balance,
	}, nil
}

// enchantCost prices the next enchantment level.
func enchantCost(rodPrice float64, currentLevel int32) float64 {
	return (rodPrice*0.1 + 250) * float64(currentLevel+1)
}
