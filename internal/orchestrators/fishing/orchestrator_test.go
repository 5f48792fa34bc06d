package fishing

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fishing-api/internal/catalog"
	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
	mockclock "github.com/KirkDiggler/fishing-api/internal/pkg/clock/mock"
	"github.com/KirkDiggler/fishing-api/internal/pkg/idgen"
	"github.com/KirkDiggler/fishing-api/internal/repositories/player"
	playermock "github.com/KirkDiggler/fishing-api/internal/repositories/player/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	repo      *player.InMemoryRepository
	catalog   *catalog.Store
	svc       Service
	orch      *orchestrator

	ctx context.Context
	now time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	s.repo = player.NewInMemory()

	cat, err := catalog.Load()
	s.Require().NoError(err)
	s.catalog = cat

	svc, err := NewOrchestrator(&Config{
		PlayerRepo:  s.repo,
		Catalog:     cat,
		Clock:       s.mockClock,
		IDGenerator: idgen.NewSequential("daily"),
		Rand:        rand.New(rand.NewSource(42)),
	})
	s.Require().NoError(err)

	s.svc = svc
	s.orch = svc.(*orchestrator)
}

func (s *OrchestratorTestSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *OrchestratorTestSuite) getRecord(playerID string) *fishing.PlayerRecord {
	out, err := s.repo.Get(s.ctx, &player.GetInput{PlayerID: playerID})
	s.Require().NoError(err)
	return out.Record
}

func (s *OrchestratorTestSuite) putRecord(record *fishing.PlayerRecord) {
	_, err := s.repo.Update(s.ctx, &player.UpdateInput{Record: record})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) createPlayer(playerID string) *fishing.PlayerRecord {
	out, err := s.svc.GetOrCreatePlayer(s.ctx, &GetOrCreatePlayerInput{PlayerID: playerID})
	s.Require().NoError(err)
	return out.Record
}

func (s *OrchestratorTestSuite) TestConfigValidate() {
	_, err := NewOrchestrator(&Config{})
	s.Require().Error(err)

	_, err = NewOrchestrator(&Config{
		PlayerRepo:    s.repo,
		Catalog:       s.catalog,
		Clock:         s.mockClock,
		IDGenerator:   idgen.NewSequential("daily"),
		CatchCooldown: -time.Second,
	})
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestGetOrCreatePlayerDefaults() {
	record := s.createPlayer("new-player")

	s.Equal("new-player", record.ID)
	s.Equal(fishing.StartingBalance, record.Balance)
	s.Equal(fishing.HomeLocation, record.Location)
	s.Equal([]string{fishing.HomeLocation}, record.UnlockedLocations)
	s.Equal(fishing.StarterRod, record.EquippedRod)
	s.Equal(fishing.StarterBait, record.EquippedBait)
	s.True(record.OwnsRod(fishing.StarterRod))
	s.True(record.OwnsBait(fishing.StarterBait))
	s.Len(record.DailyQuests, 3)
	s.Equal(s.now, record.LastDailyReset)

	for _, quest := range record.DailyQuests {
		s.Zero(quest.Progress)
		s.False(quest.Claimed)
	}
}

func (s *OrchestratorTestSuite) TestGetOrCreatePlayerIdempotent() {
	first := s.createPlayer("repeat")
	second := s.createPlayer("repeat")

	s.Equal(first.DailyQuests[0].ID, second.DailyQuests[0].ID)
	s.Equal(first.LastDailyReset, second.LastDailyReset)
}

func (s *OrchestratorTestSuite) TestDailyQuestRollover() {
	record := s.createPlayer("daily-player")
	originalIDs := []string{record.DailyQuests[0].ID, record.DailyQuests[1].ID, record.DailyQuests[2].ID}

	record.DailyQuests[0].Progress = 2
	s.putRecord(record)

	// Within the window nothing regenerates.
	s.advance(23 * time.Hour)
	record = s.createPlayer("daily-player")
	s.Equal(originalIDs[0], record.DailyQuests[0].ID)
	s.Equal(int32(2), record.DailyQuests[0].Progress)

	// Exactly at the window boundary the whole set rolls.
	s.advance(time.Hour)
	record = s.createPlayer("daily-player")
	s.Len(record.DailyQuests, 3)
	for i, quest := range record.DailyQuests {
		s.NotEqual(originalIDs[i], quest.ID)
		s.Zero(quest.Progress)
		s.False(quest.Claimed)
	}
	s.Equal(s.now, record.LastDailyReset)
}

func (s *OrchestratorTestSuite) TestResolveCatchCooldown() {
	s.createPlayer("angler")

	_, err := s.svc.ResolveCatch(s.ctx, &ResolveCatchInput{PlayerID: "angler"})
	s.Require().NoError(err)

	_, err = s.svc.ResolveCatch(s.ctx, &ResolveCatchInput{PlayerID: "angler"})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Contains(errors.GetMeta(err), "remaining_seconds")

	s.advance(29 * time.Second)
	_, err = s.svc.ResolveCatch(s.ctx, &ResolveCatchInput{PlayerID: "angler"})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))

	// Boundary: exactly at the window edge the catch goes through.
	s.advance(time.Second)
	_, err = s.svc.ResolveCatch(s.ctx, &ResolveCatchInput{PlayerID: "angler"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestResolveCatchOutcomeEffects() {
	s.createPlayer("catcher")

	out, err := s.svc.ResolveCatch(s.ctx, &ResolveCatchInput{PlayerID: "catcher"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Outcome)

	record := s.getRecord("catcher")
	s.Equal(s.now, record.LastCatch)
	s.Equal(record.Balance, out.Balance)

	switch out.Outcome.Status {
	case OutcomeSuccess:
		s.Require().NotNil(out.Outcome.Item)
		s.Greater(out.Outcome.Reward, 0.0)
		s.InDelta(fishing.StartingBalance+out.Outcome.Reward, record.Balance, 1e-9)
		s.Equal(int32(1), record.Inventory[out.Outcome.Item.Name])
	case OutcomeFailure:
		s.Zero(out.Outcome.Reward)
		s.InDelta(fishing.StartingBalance, record.Balance, 1e-9)
		s.Empty(record.Inventory)
	}
}

func (s *OrchestratorTestSuite) TestApplyCatchProgress() {
	dailies := []fishing.DailyQuest{
		{ID: "d1", Type: fishing.QuestTypeCatchRarity, Rarity: fishing.RarityRare, Goal: 2},
		{ID: "d2", Type: fishing.QuestTypeSellCount, Goal: 10},
		{ID: "d3", Type: fishing.QuestTypeCatchRarity, Rarity: fishing.RarityRare, Goal: 5, Claimed: true},
	}
	record := fishing.NewDefaultRecord("p", s.now, dailies)

	for i := 0; i < 4; i++ {
		s.orch.applyCatchProgress(record, fishing.RarityRare)
	}

	// Milestone progress caps at its goal of 3.
	s.Equal(int32(3), record.QuestProgress["Lava Rod Quest"])
	// Daily progress caps at its goal of 2.
	s.Equal(int32(2), record.DailyQuests[0].Progress)
	// Sell quests and claimed quests never move on a catch.
	s.Zero(record.DailyQuests[1].Progress)
	s.Zero(record.DailyQuests[2].Progress)
}

func (s *OrchestratorTestSuite) TestCatchProgressPrereqGating() {
	record := fishing.NewDefaultRecord("p", s.now, nil)

	s.orch.applyCatchProgress(record, fishing.RaritySecret)
	s.Zero(record.QuestProgress["Element Rod Quest"])

	record.OwnedRods = append(record.OwnedRods, "Ghostfinn Rod")
	s.orch.applyCatchProgress(record, fishing.RaritySecret)
	s.Equal(int32(1), record.QuestProgress["Element Rod Quest"])
}

func (s *OrchestratorTestSuite) TestApplySellProgress() {
	dailies := []fishing.DailyQuest{
		{ID: "d1", Type: fishing.QuestTypeSellCount, Goal: 10},
		{ID: "d2", Type: fishing.QuestTypeSellCount, Goal: 10, Claimed: true},
		{ID: "d3", Type: fishing.QuestTypeCatchRarity, Rarity: fishing.RarityCommon, Goal: 5},
	}
	record := fishing.NewDefaultRecord("p", s.now, dailies)

	s.orch.applySellProgress(record, 7)
	s.Equal(int32(7), record.DailyQuests[0].Progress)

	s.orch.applySellProgress(record, 7)
	s.Equal(int32(10), record.DailyQuests[0].Progress)

	s.Zero(record.DailyQuests[1].Progress)
	s.Zero(record.DailyQuests[2].Progress)
}

func (s *OrchestratorTestSuite) TestEffectiveLuck() {
	record := s.createPlayer("lucky")

	out, err := s.svc.EffectiveLuck(s.ctx, &EffectiveLuckInput{PlayerID: "lucky"})
	s.Require().NoError(err)
	s.Equal(int32(0), out.Luck)

	record.OwnedRods = append(record.OwnedRods, "Luck Rod")
	record.OwnedBaits = append(record.OwnedBaits, "Midnight Bait")
	record.EquippedRod = "Luck Rod"
	record.EquippedBait = "Midnight Bait"
	record.Enchantments["Luck Rod"] = 2
	s.putRecord(record)

	// 50 rod + 20 bait + 2 levels * 10.
	out, err = s.svc.EffectiveLuck(s.ctx, &EffectiveLuckInput{PlayerID: "lucky"})
	s.Require().NoError(err)
	s.Equal(int32(90), out.Luck)

	_, err = s.svc.SetGlobalEvent(s.ctx, &SetGlobalEventInput{Multiplier: 1.5, Active: true})
	s.Require().NoError(err)

	out, err = s.svc.EffectiveLuck(s.ctx, &EffectiveLuckInput{PlayerID: "lucky"})
	s.Require().NoError(err)
	s.Equal(int32(135), out.Luck)

	_, err = s.svc.SetGlobalEvent(s.ctx, &SetGlobalEventInput{Multiplier: 1.5, Active: false})
	s.Require().NoError(err)

	out, err = s.svc.EffectiveLuck(s.ctx, &EffectiveLuckInput{PlayerID: "lucky"})
	s.Require().NoError(err)
	s.Equal(int32(90), out.Luck)
}

func (s *OrchestratorTestSuite) TestSetGlobalEventValidation() {
	_, err := s.svc.SetGlobalEvent(s.ctx, &SetGlobalEventInput{Multiplier: 0, Active: true})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestTravel() {
	s.createPlayer("traveler")

	// Two ranks ahead of the next unlockable location.
	_, err := s.svc.Travel(s.ctx, &TravelInput{PlayerID: "traveler", Location: "Kohana Island"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.svc.Travel(s.ctx, &TravelInput{PlayerID: "traveler", Location: "Atlantis"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.svc.Travel(s.ctx, &TravelInput{PlayerID: "traveler", Location: fishing.HomeLocation})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	out, err := s.svc.Travel(s.ctx, &TravelInput{PlayerID: "traveler", Location: "Ocean"})
	s.Require().NoError(err)
	s.Equal("Ocean", out.Location.Name)
	s.InDelta(0, out.Balance, 1e-9)

	record := s.getRecord("traveler")
	s.Equal("Ocean", record.Location)
	s.True(record.HasUnlocked("Ocean"))

	// Broke now; the next unlock costs 5000.
	_, err = s.svc.Travel(s.ctx, &TravelInput{PlayerID: "traveler", Location: "Kohana Island"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	record = s.getRecord("traveler")
	s.InDelta(0, record.Balance, 1e-9)
	s.False(record.HasUnlocked("Kohana Island"))
}

func (s *OrchestratorTestSuite) TestSetLocation() {
	s.createPlayer("mover")

	_, err := s.svc.SetLocation(s.ctx, &SetLocationInput{PlayerID: "mover", Location: "Ocean"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	out, err := s.svc.SetLocation(s.ctx, &SetLocationInput{PlayerID: "mover", Location: fishing.HomeLocation})
	s.Require().NoError(err)
	s.Equal(fishing.HomeLocation, out.Location)

	_, err = s.svc.SetLocation(s.ctx, &SetLocationInput{PlayerID: "mover", Location: "Atlantis"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRecordSale() {
	record := s.createPlayer("seller")

	item, ok := s.catalog.Item("Barracuda Fish")
	s.Require().True(ok)

	record.Inventory[item.Name] = 5
	s.putRecord(record)

	out, err := s.svc.RecordSale(s.ctx, &RecordSaleInput{PlayerID: "seller", ItemName: item.Name, Count: 3})
	s.Require().NoError(err)
	s.InDelta(item.BaseReward*3, out.Earned, 1e-9)
	s.InDelta(fishing.StartingBalance+item.BaseReward*3, out.Balance, 1e-9)
	s.Equal(int32(2), out.Remaining)

	_, err = s.svc.RecordSale(s.ctx, &RecordSaleInput{PlayerID: "seller", ItemName: item.Name, Count: 10})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.svc.RecordSale(s.ctx, &RecordSaleInput{PlayerID: "seller", ItemName: "Imaginary Fish", Count: 1})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.svc.RecordSale(s.ctx, &RecordSaleInput{PlayerID: "seller", ItemName: item.Name, Count: 0})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestClaimMilestoneQuest() {
	record := s.createPlayer("quester")
	record.QuestProgress["Lava Rod Quest"] = 3
	s.putRecord(record)

	out, err := s.svc.ClaimQuest(s.ctx, &ClaimQuestInput{PlayerID: "quester", QuestID: "Lava Rod Quest"})
	s.Require().NoError(err)
	s.Equal("Lava Rod", out.RewardRod)

	record = s.getRecord("quester")
	s.True(record.OwnsRod("Lava Rod"))
	s.True(record.ClaimedQuests["Lava Rod Quest"])
	s.Contains(record.Enchantments, "Lava Rod")

	_, err = s.svc.ClaimQuest(s.ctx, &ClaimQuestInput{PlayerID: "quester", QuestID: "Lava Rod Quest"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.svc.ClaimQuest(s.ctx, &ClaimQuestInput{PlayerID: "quester", QuestID: "Ghostfinn Rod Quest"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.svc.ClaimQuest(s.ctx, &ClaimQuestInput{PlayerID: "quester", QuestID: "No Such Quest"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestClaimDailyQuest() {
	record := s.createPlayer("daily-quester")
	record.DailyQuests[0].Progress = record.DailyQuests[0].Goal
	questID := record.DailyQuests[0].ID
	coins := record.DailyQuests[0].RewardCoins
	s.putRecord(record)

	out, err := s.svc.ClaimQuest(s.ctx, &ClaimQuestInput{PlayerID: "daily-quester", QuestID: questID})
	s.Require().NoError(err)
	s.InDelta(coins, out.RewardCoins, 1e-9)
	s.InDelta(fishing.StartingBalance+coins, out.Balance, 1e-9)

	_, err = s.svc.ClaimQuest(s.ctx, &ClaimQuestInput{PlayerID: "daily-quester", QuestID: questID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestClaimableQuestCount() {
	record := s.createPlayer("counter")

	out, err := s.svc.ClaimableQuestCount(s.ctx, &ClaimableQuestCountInput{PlayerID: "counter"})
	s.Require().NoError(err)
	s.Equal(int32(0), out.Count)

	record.QuestProgress["Lava Rod Quest"] = 3
	record.DailyQuests[0].Progress = record.DailyQuests[0].Goal
	s.putRecord(record)

	out, err = s.svc.ClaimableQuestCount(s.ctx, &ClaimableQuestCountInput{PlayerID: "counter"})
	s.Require().NoError(err)
	s.Equal(int32(2), out.Count)
}

func (s *OrchestratorTestSuite) TestBuyAndEquipRod() {
	s.createPlayer("shopper")

	out, err := s.svc.BuyRod(s.ctx, &BuyRodInput{PlayerID: "shopper", RodName: "Luck Rod"})
	s.Require().NoError(err)
	s.Equal("Luck Rod", out.Rod.Name)
	s.InDelta(fishing.StartingBalance-150, out.Balance, 1e-9)

	record := s.getRecord("shopper")
	s.True(record.OwnsRod("Luck Rod"))
	s.Contains(record.Enchantments, "Luck Rod")

	_, err = s.svc.BuyRod(s.ctx, &BuyRodInput{PlayerID: "shopper", RodName: "Luck Rod"})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	// Quest reward rods carry no price tag.
	_, err = s.svc.BuyRod(s.ctx, &BuyRodInput{PlayerID: "shopper", RodName: "Lava Rod"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.svc.BuyRod(s.ctx, &BuyRodInput{PlayerID: "shopper", RodName: "Hazmat Rod"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	equipOut, err := s.svc.EquipRod(s.ctx, &EquipRodInput{PlayerID: "shopper", RodName: "Luck Rod"})
	s.Require().NoError(err)
	s.Equal("Luck Rod", equipOut.RodName)
	s.Equal("Luck Rod", s.getRecord("shopper").EquippedRod)

	_, err = s.svc.EquipRod(s.ctx, &EquipRodInput{PlayerID: "shopper", RodName: "Angler Rod"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestBuyAndEquipBait() {
	s.createPlayer("bait-shopper")

	out, err := s.svc.BuyBait(s.ctx, &BuyBaitInput{PlayerID: "bait-shopper", BaitName: "Topwater Bait"})
	s.Require().NoError(err)
	s.Equal("Topwater Bait", out.Bait.Name)
	s.InDelta(fishing.StartingBalance-100, out.Balance, 1e-9)

	_, err = s.svc.BuyBait(s.ctx, &BuyBaitInput{PlayerID: "bait-shopper", BaitName: "Singularity Bait"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	equipOut, err := s.svc.EquipBait(s.ctx, &EquipBaitInput{PlayerID: "bait-shopper", BaitName: "Topwater Bait"})
	s.Require().NoError(err)
	s.Equal("Topwater Bait", equipOut.BaitName)

	_, err = s.svc.EquipBait(s.ctx, &EquipBaitInput{PlayerID: "bait-shopper", BaitName: "Royal Bait"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestEnchantRod() {
	s.createPlayer("enchanter")

	out, err := s.svc.EnchantRod(s.ctx, &EnchantRodInput{PlayerID: "enchanter"})
	s.Require().NoError(err)
	s.Equal(fishing.StarterRod, out.RodName)
	s.Equal(int32(1), out.Level)
	s.InDelta(250, out.Cost, 1e-9)
	s.InDelta(250, out.Balance, 1e-9)

	// Level two costs 500 and only 250 is left.
	_, err = s.svc.EnchantRod(s.ctx, &EnchantRodInput{PlayerID: "enchanter"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	record := s.getRecord("enchanter")
	record.Balance = 1000000
	record.Enchantments[fishing.StarterRod] = 5
	s.putRecord(record)

	_, err = s.svc.EnchantRod(s.ctx, &EnchantRodInput{PlayerID: "enchanter"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func TestOrchestratorRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := playermock.NewMockRepository(ctrl)
	clk := mockclock.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	cat, err := catalog.Load()
	require.NoError(t, err)

	svc, err := NewOrchestrator(&Config{
		PlayerRepo:  repo,
		Catalog:     cat,
		Clock:       clk,
		IDGenerator: idgen.NewSequential("daily"),
		Rand:        rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	repo.EXPECT().
		Get(gomock.Any(), &player.GetInput{PlayerID: "p"}).
		Return(nil, errors.Internal("store offline"))

	_, err = svc.GetOrCreatePlayer(context.Background(), &GetOrCreatePlayerInput{PlayerID: "p"})
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}
