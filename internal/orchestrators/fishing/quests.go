package fishing

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
)

// drawDailyQuests builds a fresh daily set by drawing templates with
// replacement from the daily pool.
func (o *orchestrator) drawDailyQuests() []fishing.DailyQuest {
	templates := o.catalog.DailyTemplates()

	quests := make([]fishing.DailyQuest, 0, dailyQuestCount)
	for i := 0; i < dailyQuestCount; i++ {
		tpl := templates[o.randIntn(len(templates))]
		quests = append(quests, fishing.DailyQuest{
			ID:          o.idGen.Generate(),
			TemplateID:  tpl.ID,
			Title:       tpl.Title,
			Type:        tpl.Type,
			Rarity:      tpl.Rarity,
			Goal:        tpl.Goal,
			RewardCoins: tpl.RewardCoins,
		})
	}
	return quests
}

// rolloverDailyQuests replaces the daily set when the window has
// elapsed, discarding unclaimed progress. Returns true when it rolled.
func (o *orchestrator) rolloverDailyQuests(record *fishing.PlayerRecord, now time.Time) bool {
	if now.Sub(record.LastDailyReset) < dailyQuestWindow {
		return false
	}

	record.DailyQuests = o.drawDailyQuests()
	record.LastDailyReset = now

	slog.Info("daily quests regenerated", "player_id", record.ID)
	return true
}

// applyCatchProgress advances every quest matching a caught rarity.
// Progress is capped at each quest's goal.
func (o *orchestrator) applyCatchProgress(record *fishing.PlayerRecord, rarity fishing.Rarity) {
	if record.QuestProgress == nil {
		record.QuestProgress = map[string]int32{}
	}

	for _, quest := range o.catalog.Milestones() {
		if quest.Type != fishing.QuestTypeCatchRarity || quest.Rarity != rarity {
			continue
		}
		if record.ClaimedQuests[quest.ID] {
			continue
		}
		if quest.PrereqRod != "" && !record.OwnsRod(quest.PrereqRod) {
			continue
		}
		if record.QuestProgress[quest.ID] < quest.Goal {
			record.QuestProgress[quest.ID]++
		}
	}

	for i := range record.DailyQuests {
		quest := &record.DailyQuests[i]
		if quest.Claimed || quest.Type != fishing.QuestTypeCatchRarity || quest.Rarity != rarity {
			continue
		}
		if quest.Progress < quest.Goal {
			quest.Progress++
		}
	}
}

// applySellProgress advances sell-count quests by the number of items
// sold, capped at each quest's goal.
func (o *orchestrator) applySellProgress(record *fishing.PlayerRecord, count int32) {
	if record.QuestProgress == nil {
		record.QuestProgress = map[string]int32{}
	}

	for _, quest := range o.catalog.Milestones() {
		if quest.Type != fishing.QuestTypeSellCount || record.ClaimedQuests[quest.ID] {
			continue
		}
		progress := record.QuestProgress[quest.ID] + count
		if progress > quest.Goal {
			progress = quest.Goal
		}
		record.QuestProgress[quest.ID] = progress
	}

	for i := range record.DailyQuests {
		quest := &record.DailyQuests[i]
		if quest.Claimed || quest.Type != fishing.QuestTypeSellCount {
			continue
		}
		quest.Progress += count
		if quest.Progress > quest.Goal {
			quest.Progress = quest.Goal
		}
	}
}

// claimableCount counts quests at goal but not yet claimed.
func (o *orchestrator) claimableCount(record *fishing.PlayerRecord) int32 {
	var count int32
	for _, quest := range o.catalog.Milestones() {
		if record.ClaimedQuests[quest.ID] {
			continue
		}
		if record.QuestProgress[quest.ID] >= quest.Goal {
			count++
		}
	}
	for i := range record.DailyQuests {
		if record.DailyQuests[i].Complete() {
			count++
		}
	}
	return count
}

// ClaimableQuestCount counts quests at goal but not yet claimed
func (o *orchestrator) ClaimableQuestCount(ctx context.Context, input *ClaimableQuestCountInput) (*ClaimableQuestCountOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ClaimableQuestCountOutput{Count: o.claimableCount(record)}, nil
}

// ClaimQuest claims a completed milestone or daily quest and grants its
// reward.
func (o *orchestrator) ClaimQuest(ctx context.Context, input *ClaimQuestInput) (*ClaimQuestOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	output := &ClaimQuestOutput{}

	if milestone, ok := o.catalog.Milestone(input.QuestID); ok {
		if record.ClaimedQuests[input.QuestID] {
			return nil, errors.FailedPrecondition("quest already claimed").
				WithMeta("quest_id", input.QuestID)
		}
		if record.QuestProgress[input.QuestID] < milestone.Goal {
			return nil, errors.FailedPrecondition("quest is not complete").
				WithMeta("quest_id", input.QuestID)
		}

		if record.ClaimedQuests == nil {
			record.ClaimedQuests = map[string]bool{}
		}
		record.ClaimedQuests[input.QuestID] = true

		if milestone.RewardRod != "" && !record.OwnsRod(milestone.RewardRod) {
			record.OwnedRods = append(record.OwnedRods, milestone.RewardRod)
			if record.Enchantments == nil {
				record.Enchantments = map[string]int32{}
			}
			record.Enchantments[milestone.RewardRod] = 0
		}
		output.RewardRod = milestone.RewardRod
	} else {
		daily := findDailyQuest(record, input.QuestID)
		if daily == nil {
			return nil, errors.NotFoundf("quest %s not found", input.QuestID)
		}
		if daily.Claimed {
			return nil, errors.FailedPrecondition("quest already claimed").
				WithMeta("quest_id", input.QuestID)
		}
		if daily.Progress < daily.Goal {
			return nil, errors.FailedPrecondition("quest is not complete").
				WithMeta("quest_id", input.QuestID)
		}

		daily.Claimed = true
		record.Balance += daily.RewardCoins
		output.RewardCoins = daily.RewardCoins
	}

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	slog.Info("quest claimed",
		"player_id", record.ID,
		"quest_id", input.QuestID,
		"reward_rod", output.RewardRod,
		"reward_coins", output.RewardCoins)

	output.Balance = record.Balance
	return output, nil
}

func findDailyQuest(record *fishing.PlayerRecord, questID string) *fishing.DailyQuest {
	for i := range record.DailyQuests {
		if record.DailyQuests[i].ID == questID {
			return &record.DailyQuests[i]
		}
	}
	return nil
}
