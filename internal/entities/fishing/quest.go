package fishing

// QuestType discriminates what event advances a quest.
type QuestType string

// Quest trigger types
const (
	QuestTypeCatchRarity QuestType = "catch_rarity"
	QuestTypeSellCount   QuestType = "sell_count"
)

// MilestoneQuest is a permanent, one-time-completable quest definition.
// Progress lives on the player record keyed by ID.
type MilestoneQuest struct {
	ID     string
	Title  string
	Type   QuestType
	Rarity Rarity
	Goal   int32

	// Rod granted when the quest is claimed.
	RewardRod string

	// Rod that must already be owned before progress can advance.
	// Empty means no prerequisite.
	PrereqRod string
}

// DailyQuestTemplate is one entry in the pool daily quests are drawn from.
type DailyQuestTemplate struct {
	ID          string
	Title       string
	Type        QuestType
	Rarity      Rarity
	Goal        int32
	RewardCoins float64
}

// DailyQuest is a live instance drawn from a template, tracked per player.
type DailyQuest struct {
	ID          string
	TemplateID  string
	Title       string
	Type        QuestType
	Rarity      Rarity
	Goal        int32
	RewardCoins float64
	Progress    int32
	Claimed     bool
}

// Complete reports whether the daily quest reached its goal and is
// still unclaimed.
func (q *DailyQuest) Complete() bool {
	return q.Progress >= q.Goal && !q.Claimed
}
