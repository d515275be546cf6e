package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/franchise-sim/internal/engine"
	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/pkg/config"
)

// Domain failures the handlers map to structured responses. These are
// game outcomes, not infrastructure errors.
var (
	ErrInsufficientFunds = fmt.Errorf("insufficient funds")
	ErrProspectNotFound  = fmt.Errorf("prospect not found")
	ErrProspectDrafted   = fmt.Errorf("prospect already drafted")
	ErrGameOver          = fmt.Errorf("franchise is bankrupt")
	ErrNotPlayersTurn    = fmt.Errorf("it is not the player's pick")
)

// FranchiseService orchestrates the stateless engine against persisted
// session state: load snapshot, run the engine, write the snapshot back.
type FranchiseService struct {
	sessions *SessionService
	cache    *CacheService
	hub      *WebSocketHub
	cfg      *config.Config
	logger   *logrus.Logger

	tiers    gamedata.TierTable
	teams    []gamedata.AITeam
	scouting gamedata.ScoutingTable
}

func NewFranchiseService(sessions *SessionService, cache *CacheService, hub *WebSocketHub, cfg *config.Config, logger *logrus.Logger) *FranchiseService {
	return &FranchiseService{
		sessions: sessions,
		cache:    cache,
		hub:      hub,
		cfg:      cfg,
		logger:   logger,
		tiers:    gamedata.DefaultTiers(),
		teams:    gamedata.DefaultAITeams(),
		scouting: gamedata.DefaultScouting(),
	}
}

// DraftState tracks an in-progress draft between requests. It lives in
// the cache, keyed by session, and is rebuilt from scratch if evicted.
type DraftState struct {
	Order    []engine.DraftOrderEntry `json:"order"`
	Round    int                      `json:"round"`
	NextPick int                      `json:"next_pick"`
}

// GenerateDraftClass creates the annual prospect pool for a session and
// stores it in the session snapshot. Regenerating replaces any unscouted
// existing class.
func (s *FranchiseService) GenerateDraftClass(ctx context.Context, sessionID uuid.UUID) ([]models.DraftProspect, error) {
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, err
	}

	prospects, err := engine.GenerateDraftClass(s.cfg.DraftClassSize, session.Season, engine.NewTimeSource())
	if err != nil {
		return nil, err
	}

	state.Prospects = prospects
	if err := s.saveState(session, state); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, DraftClassCacheKey(sessionID, session.Season), prospects, s.cfg.CacheExpiration); err != nil {
		s.logger.WithError(err).Warn("Failed to cache draft class")
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"season":     session.Season,
		"size":       len(prospects),
	}).Info("Generated draft class")
	return prospects, nil
}

// GetDraftClass returns the session's current prospect pool, preferring
// the cache over the snapshot column.
func (s *FranchiseService) GetDraftClass(ctx context.Context, sessionID uuid.UUID) ([]models.DraftProspect, error) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	var cached []models.DraftProspect
	if err := s.cache.Get(ctx, DraftClassCacheKey(sessionID, session.Season), &cached); err == nil {
		return cached, nil
	}

	state, err := session.DecodeState()
	if err != nil {
		return nil, err
	}
	return state.Prospects, nil
}

// ScoutProspect spends scouting budget on one prospect. The cost comes
// off franchise reserves; an unaffordable request is a domain failure,
// not an error response with a stack trace behind it.
func (s *FranchiseService) ScoutProspect(ctx context.Context, sessionID, prospectID uuid.UUID, tier models.AccuracyTier) (*engine.ScoutingReport, error) {
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, err
	}

	opt, err := s.scouting.Get(tier)
	if err != nil {
		return nil, err
	}
	if state.Franchise.Reserves < opt.Cost {
		return nil, fmt.Errorf("%w: scouting at %s accuracy costs %d, reserves are %d",
			ErrInsufficientFunds, tier, opt.Cost, state.Franchise.Reserves)
	}

	idx := -1
	for i := range state.Prospects {
		if state.Prospects[i].ID == prospectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrProspectNotFound
	}

	report, err := engine.ScoutProspect(&state.Prospects[idx], tier, s.scouting, engine.NewTimeSource())
	if err != nil {
		return nil, err
	}

	state.Prospects[idx] = engine.MergeScoutingReport(state.Prospects[idx], report)
	state.Franchise.Reserves -= report.Cost
	if err := s.saveState(session, state); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id":  sessionID,
		"prospect_id": prospectID,
		"accuracy":    tier,
		"cost":        report.Cost,
	}).Info("Scouted prospect")
	return report, nil
}

// GetDraftOrder returns (building if needed) the current draft state
func (s *FranchiseService) GetDraftOrder(ctx context.Context, sessionID uuid.UUID) (*DraftState, error) {
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, err
	}
	return s.draftState(ctx, session, state)
}

func (s *FranchiseService) draftState(ctx context.Context, session *models.GameSession, state *models.SessionState) (*DraftState, error) {
	var draft DraftState
	if err := s.cache.Get(ctx, DraftOrderCacheKey(session.ID, session.Season), &draft); err == nil && len(draft.Order) > 0 {
		return &draft, nil
	}

	draft = DraftState{
		Order:    engine.GenerateDraftOrder(state.Franchise.Name, state.Record, s.teams, engine.NewTimeSource()),
		Round:    1,
		NextPick: 0,
	}
	if err := s.cache.Set(ctx, DraftOrderCacheKey(session.ID, session.Season), &draft, s.cfg.CacheExpiration); err != nil {
		s.logger.WithError(err).Warn("Failed to cache draft order")
	}
	return &draft, nil
}

// SimulateAIPicks advances the draft until the player's slot or the end
// of the round, marking selections in the prospect pool
func (s *FranchiseService) SimulateAIPicks(ctx context.Context, sessionID uuid.UUID) ([]engine.AIPickRecord, *DraftState, error) {
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, nil, err
	}
	draft, err := s.draftState(ctx, session, state)
	if err != nil {
		return nil, nil, err
	}

	picks, updated, next, err := engine.SimulateAIDraftPicks(s.teams, draft.Order, state.Prospects, draft.Round, draft.NextPick, engine.NewTimeSource())
	if err != nil {
		return nil, nil, err
	}

	state.Prospects = updated
	draft.NextPick = next
	if next >= len(draft.Order) && draft.Round < s.cfg.DraftRounds {
		draft.Round++
		draft.NextPick = 0
	}

	if err := s.saveState(session, state); err != nil {
		return nil, nil, err
	}
	if err := s.cache.Set(ctx, DraftOrderCacheKey(sessionID, session.Season), draft, s.cfg.CacheExpiration); err != nil {
		s.logger.WithError(err).Warn("Failed to cache draft order")
	}

	for _, pick := range picks {
		s.hub.BroadcastToSession(sessionID.String(), "draft_pick", pick)
	}
	return picks, draft, nil
}

// MakePlayerPick executes the human selection at the player's slot: the
// prospect joins the roster on a tier-scaled rookie salary.
func (s *FranchiseService) MakePlayerPick(ctx context.Context, sessionID, prospectID uuid.UUID) (*models.Player, error) {
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftState(ctx, session, state)
	if err != nil {
		return nil, err
	}
	if draft.NextPick >= len(draft.Order) || !draft.Order[draft.NextPick].IsHuman {
		return nil, ErrNotPlayersTurn
	}

	idx := -1
	for i := range state.Prospects {
		if state.Prospects[i].ID == prospectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrProspectNotFound
	}
	if state.Prospects[idx].Drafted {
		return nil, ErrProspectDrafted
	}

	cfg, err := s.tiers.Get(state.Franchise.Tier)
	if err != nil {
		return nil, err
	}

	state.Prospects[idx].Drafted = true
	state.Prospects[idx].DraftedBy = state.Franchise.Name

	rookie := state.Prospects[idx].Player
	rookie.Salary = engine.AssignRookieSalary(cfg, rookie.CurrentRating, engine.NewTimeSource())
	rookie.DraftYear = session.Season
	rookie.RosterStatus = models.RosterActive
	state.Roster = append(state.Roster, rookie)

	draft.NextPick++
	if draft.NextPick >= len(draft.Order) && draft.Round < s.cfg.DraftRounds {
		draft.Round++
		draft.NextPick = 0
	}

	if err := s.saveState(session, state); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, DraftOrderCacheKey(sessionID, session.Season), draft, s.cfg.CacheExpiration); err != nil {
		s.logger.WithError(err).Warn("Failed to cache draft order")
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"prospect":   rookie.Name,
		"salary":     rookie.Salary,
		"round":      draft.Round,
	}).Info("Player drafted prospect")
	return &rookie, nil
}

// RunTrainingCamp processes a block of simulated games for the whole
// roster, streaming progress over the websocket hub
func (s *FranchiseService) RunTrainingCamp(ctx context.Context, sessionID uuid.UUID, games int) (*engine.BatchTrainingResult, error) {
	if games <= 0 {
		games = s.cfg.GamesPerSeason
	}
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, err
	}

	district := state.City.ComputeDistrictBonuses()
	updated, batch := engine.ProcessBatchTraining(state.Roster, district, state.Franchise.FacilityLevel, games, engine.NewTimeSource(), func(done, total int) {
		s.hub.BroadcastToSession(sessionID.String(), "training_progress", map[string]interface{}{
			"completed": done,
			"total":     total,
		})
	})

	state.Roster = updated
	if err := s.saveState(session, state); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"players":    len(updated),
		"level_ups":  batch.LevelUps,
		"total_xp":   batch.TotalXP,
	}).Info("Processed training camp")
	return &batch, nil
}

// SimulateSeasonFinances runs the season's books, persists the new
// reserves and evaluates the bankruptcy state machine
func (s *FranchiseService) SimulateSeasonFinances(ctx context.Context, sessionID uuid.UUID, input engine.FinancialInput) (*engine.FinancialSimulationResult, *engine.GameStatusResult, error) {
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := s.tiers.Get(state.Franchise.Tier)
	if err != nil {
		return nil, nil, err
	}
	if input.DistrictIncomeBonus == 0 {
		input.DistrictIncomeBonus = state.City.ComputeDistrictBonuses().Income
	}
	input.WonChampionship = session.WonChampionship

	result := engine.SimulateFinances(state.Roster, state.Franchise, state.City, cfg, input)
	state.Franchise.Reserves = result.NewReserves

	status := engine.CheckGameStatus(state.Franchise.Reserves, cfg.AnnualBudget, state.Franchise.Tier)
	session.Status = status.Status

	if err := s.saveState(session, state); err != nil {
		return nil, nil, err
	}
	if err := s.cache.Set(ctx, FinanceCacheKey(sessionID, session.Season), result, s.cfg.CacheExpiration); err != nil {
		s.logger.WithError(err).Warn("Failed to cache financial result")
	}

	s.logger.WithFields(logrus.Fields{
		"session_id":   sessionID,
		"net_income":   result.NetIncome,
		"new_reserves": result.NewReserves,
		"risk":         result.Risk,
		"status":       status.Status,
	}).Info("Simulated season finances")
	return &result, &status, nil
}

// GetPromotionStatus evaluates the current tier's promotion requirements
func (s *FranchiseService) GetPromotionStatus(sessionID uuid.UUID) (*engine.PromotionEligibility, error) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	state, err := session.DecodeState()
	if err != nil {
		return nil, err
	}

	eligibility, err := engine.CheckPromotionEligibility(
		state.Franchise.Tier,
		state.Record.WinPct(),
		state.Franchise.Reserves,
		state.City.Pride,
		state.Franchise.ConsecutiveWinningSeasons,
		session.WonDivision,
		session.WonChampionship,
		s.tiers,
	)
	if err != nil {
		return nil, err
	}
	return &eligibility, nil
}

// OffseasonResult is everything the rollover produced for the client
type OffseasonResult struct {
	Summary    engine.SeasonSummary       `json:"summary"`
	Retired    []models.Player            `json:"retired"`
	DraftOrder []engine.DraftOrderEntry   `json:"draft_order"`
	Promoted   bool                       `json:"promoted"`
	Promotion  *engine.PromotionEligibility `json:"promotion,omitempty"`
	NewSeason  int                        `json:"new_season"`
}

// RunOffseason closes out the season: archive, age and retire the
// roster, apply promotion if earned, and advance the calendar
func (s *FranchiseService) RunOffseason(ctx context.Context, sessionID uuid.UUID) (*OffseasonResult, error) {
	session, state, err := s.loadActive(sessionID)
	if err != nil {
		return nil, err
	}

	// Winning-season streak updates before eligibility is evaluated
	if state.Record.IsWinning() {
		state.Franchise.ConsecutiveWinningSeasons++
	} else {
		state.Franchise.ConsecutiveWinningSeasons = 0
	}

	eligibility, err := engine.CheckPromotionEligibility(
		state.Franchise.Tier,
		state.Record.WinPct(),
		state.Franchise.Reserves,
		state.City.Pride,
		state.Franchise.ConsecutiveWinningSeasons,
		session.WonDivision,
		session.WonChampionship,
		s.tiers,
	)
	if err != nil {
		return nil, err
	}

	promoted := false
	if eligibility.IsEligible {
		franchise, city, err := engine.ApplyPromotion(state.Franchise, state.City, s.tiers)
		if err != nil {
			return nil, err
		}
		state.Franchise = franchise
		state.City = city
		promoted = true
	}

	// Archive before the roster is aged so history shows the season as played
	var financials SeasonFinancials
	var cached engine.FinancialSimulationResult
	if err := s.cache.Get(ctx, FinanceCacheKey(sessionID, session.Season), &cached); err == nil {
		financials = SeasonFinancials{
			Revenue:   cached.Revenue.Total,
			Expenses:  cached.Expenses.Total,
			NetIncome: cached.NetIncome,
		}
	}
	if err := s.sessions.ArchiveSeason(session, state, financials, promoted); err != nil {
		return nil, err
	}

	rollover := engine.RunOffseasonRollover(engine.RolloverInput{
		Roster:         state.Roster,
		Record:         state.Record,
		Year:           session.Season,
		PlayerTeamName: state.Franchise.Name,
		AITeams:        s.teams,
	}, engine.NewTimeSource())

	if err := s.cache.Delete(ctx, SessionCacheKeys(sessionID, session.Season)...); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate session cache")
	}

	state.Roster = rollover.Roster
	state.Prospects = nil
	state.Record = models.SeasonRecord{}
	session.Season++
	session.WonDivision = false
	session.WonChampionship = false
	if err := s.saveState(session, state); err != nil {
		return nil, err
	}

	draft := DraftState{Order: rollover.DraftOrder, Round: 1, NextPick: 0}
	if err := s.cache.Set(ctx, DraftOrderCacheKey(sessionID, session.Season), &draft, s.cfg.CacheExpiration); err != nil {
		s.logger.WithError(err).Warn("Failed to cache draft order")
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"new_season": session.Season,
		"retired":    len(rollover.Retired),
		"promoted":   promoted,
		"tier":       state.Franchise.Tier,
	}).Info("Completed offseason rollover")

	return &OffseasonResult{
		Summary:    rollover.Summary,
		Retired:    rollover.Retired,
		DraftOrder: rollover.DraftOrder,
		Promoted:   promoted,
		Promotion:  &eligibility,
		NewSeason:  session.Season,
	}, nil
}

// loadActive fetches a session and rejects operations on dead franchises
func (s *FranchiseService) loadActive(sessionID uuid.UUID) (*models.GameSession, *models.SessionState, error) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Status == models.StatusGameOver {
		return nil, nil, ErrGameOver
	}
	state, err := session.DecodeState()
	if err != nil {
		return nil, nil, err
	}
	return session, state, nil
}

func (s *FranchiseService) saveState(session *models.GameSession, state *models.SessionState) error {
	if err := session.EncodeState(state); err != nil {
		return err
	}
	return s.sessions.SaveSession(session)
}
