// Package shopping provides the application layer for shopping list
// generation: it materializes meal plans, recipes and pantry stock
// through the outbound ports and runs the pure reconciliation engine
// over them.
package shopping

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kecarajocomer/v3/internal/domain/planning"
	"github.com/kecarajocomer/v3/internal/domain/shopping"
	"github.com/kecarajocomer/v3/internal/infrastructure/monitoring"
	"github.com/kecarajocomer/v3/internal/ports/inbound"
	"github.com/kecarajocomer/v3/internal/ports/outbound"
	"github.com/kecarajocomer/v3/pkg/errors"
)

const dateLayout = "2006-01-02"

// Options tunes the shopping list service
type Options struct {
	CacheTTL     time.Duration
	MaxRangeDays int
	UnitPolicy   shopping.UnitPolicy
}

// ShoppingListService implements the shopping list use cases
type ShoppingListService struct {
	mealPlans outbound.MealPlanRepository
	recipes   outbound.RecipeRepository
	pantry    outbound.PantryRepository
	cache     outbound.CacheRepository
	metrics   *monitoring.Metrics
	opts      Options
	logger    *zap.Logger
}

// NewShoppingListService creates a new shopping list service
func NewShoppingListService(
	mealPlans outbound.MealPlanRepository,
	recipes outbound.RecipeRepository,
	pantry outbound.PantryRepository,
	cache outbound.CacheRepository,
	metrics *monitoring.Metrics,
	opts Options,
	logger *zap.Logger,
) inbound.ShoppingListService {
	if opts.UnitPolicy == nil {
		opts.UnitPolicy = shopping.StrictUnitPolicy
	}
	return &ShoppingListService{
		mealPlans: mealPlans,
		recipes:   recipes,
		pantry:    pantry,
		cache:     cache,
		metrics:   metrics,
		opts:      opts,
		logger:    logger.Named("shopping-service"),
	}
}

// GenerateShoppingList aggregates required ingredients across the
// user's meal plans in the date range, nets them against pantry stock
// and returns the prioritized shopping list. An empty planning window
// is not an error: it yields an empty list and a zero-filled summary.
func (s *ShoppingListService) GenerateShoppingList(ctx context.Context, cmd inbound.GenerateShoppingListCommand) (*inbound.ShoppingListDTO, error) {
	started := time.Now()

	dateRange, err := s.validateRange(cmd)
	if err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey(cmd.UserID, dateRange)
	if cached := s.getCached(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	entries, err := s.mealPlans.FindByUserAndDateRange(ctx, cmd.UserID, dateRange)
	if err != nil {
		s.metrics.RecordReconciliation("error", 0, 0, 0)
		return nil, errors.NewDatabaseError("find meal plans", err)
	}

	if err := s.resolveRecipes(ctx, entries); err != nil {
		s.metrics.RecordReconciliation("error", 0, 0, 0)
		return nil, err
	}

	pantryItems, err := s.pantry.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		s.metrics.RecordReconciliation("error", 0, 0, 0)
		return nil, errors.NewDatabaseError("find pantry items", err)
	}

	demand := shopping.AggregateDemand(entries, s.opts.UnitPolicy)
	supply := shopping.ResolveSupply(pantryItems, s.opts.UnitPolicy)
	list, summary := shopping.Reconcile(demand, supply)

	dto := &inbound.ShoppingListDTO{
		ShoppingList: list,
		Summary:      summary,
		MealPlanDates: inbound.MealPlanDatesDTO{
			StartDate: dateRange.Start.Format(dateLayout),
			EndDate:   dateRange.End.Format(dateLayout),
		},
	}

	s.metrics.RecordReconciliation("success", time.Since(started), summary.TotalItems, summary.PantryCoveragePercentage)
	s.putCached(ctx, cacheKey, dto)

	s.logger.Info("Shopping list generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("start_date", dto.MealPlanDates.StartDate),
		zap.String("end_date", dto.MealPlanDates.EndDate),
		zap.Int("meal_plans", len(entries)),
		zap.Int("items", summary.TotalItems),
		zap.Int("coverage_pct", summary.PantryCoveragePercentage),
	)

	return dto, nil
}

// validateRange applies the caller-level checks the engine itself
// assumes have already happened.
func (s *ShoppingListService) validateRange(cmd inbound.GenerateShoppingListCommand) (planning.DateRange, error) {
	if cmd.UserID == uuid.Nil {
		return planning.DateRange{}, errors.NewUnauthorizedError("")
	}

	dateRange, err := planning.NewDateRange(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return planning.DateRange{}, errors.NewInvalidDateRangeError(err.Error())
	}

	if s.opts.MaxRangeDays > 0 {
		days := int(dateRange.End.Sub(dateRange.Start).Hours()/24) + 1
		if days > s.opts.MaxRangeDays {
			return planning.DateRange{}, errors.NewInvalidDateRangeError(
				fmt.Sprintf("date range exceeds %d days", s.opts.MaxRangeDays))
		}
	}

	return dateRange, nil
}

// resolveRecipes attaches recipe detail to every entry in one batch
// lookup. Entries whose recipe cannot be resolved keep a nil Recipe
// and contribute zero demand downstream; that is the graceful
// degradation policy, not an error.
func (s *ShoppingListService) resolveRecipes(ctx context.Context, entries []*planning.MealPlanEntry) error {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, entry := range entries {
		if entry == nil || entry.HasResolvedRecipe() || entry.RecipeID == uuid.Nil {
			continue
		}
		if _, ok := seen[entry.RecipeID]; ok {
			continue
		}
		seen[entry.RecipeID] = struct{}{}
		ids = append(ids, entry.RecipeID)
	}

	if len(ids) == 0 {
		return nil
	}

	resolved, err := s.recipes.FindByIDs(ctx, ids)
	if err != nil {
		return errors.NewDatabaseError("resolve recipes", err)
	}

	for _, entry := range entries {
		if entry == nil || entry.HasResolvedRecipe() {
			continue
		}
		if recipe, ok := resolved[entry.RecipeID]; ok {
			entry.Recipe = recipe
		} else {
			s.logger.Debug("Meal plan entry skipped, recipe not found",
				zap.String("recipe_id", entry.RecipeID.String()),
			)
		}
	}

	return nil
}

func (s *ShoppingListService) cacheKey(userID uuid.UUID, dateRange planning.DateRange) string {
	return fmt.Sprintf("shopping-list:%s:%s:%s",
		userID.String(),
		dateRange.Start.Format(dateLayout),
		dateRange.End.Format(dateLayout),
	)
}

func (s *ShoppingListService) getCached(ctx context.Context, key string) *inbound.ShoppingListDTO {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil
	}

	var dto inbound.ShoppingListDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		s.logger.Warn("Discarding malformed cached shopping list",
			zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return nil
	}
	return &dto
}

func (s *ShoppingListService) putCached(ctx context.Context, key string, dto *inbound.ShoppingListDTO) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
		s.logger.Debug("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}
