// Package ai provides the application layer for generative meal
// planning. The reconciliation engine never calls this directly; it
// only ever sees the materialized meal plans a generation produces.
package ai

import (
	"context"
	"hash/fnv"

	"go.uber.org/zap"

	"github.com/kecarajocomer/v3/internal/domain/planning"
	"github.com/kecarajocomer/v3/internal/ports/outbound"
)

// AIService selects a meal plan provider and degrades to the
// deterministic mock when the configured provider is unknown or
// fails. Prompt engineering lives behind the provider boundary and is
// not reproduced here.
type AIService struct {
	provider string
	client   outbound.AIService
	mock     *mockPlanner
	logger   *zap.Logger
}

// NewAIService creates a new AI service with provider selection
func NewAIService(provider string, logger *zap.Logger) outbound.AIService {
	namedLogger := logger.Named("ai-service")
	mock := newMockPlanner()

	var activeClient outbound.AIService
	switch provider {
	case "mock", "":
		provider = "mock"
		activeClient = mock
	default:
		namedLogger.Warn("Unknown AI provider, defaulting to mock", zap.String("provider", provider))
		provider = "mock"
		activeClient = mock
	}

	namedLogger.Info("AI service initialized", zap.String("provider", provider))

	return &AIService{
		provider: provider,
		client:   activeClient,
		mock:     mock,
		logger:   namedLogger,
	}
}

// GenerateMealPlan generates a meal plan with mock fallback
func (s *AIService) GenerateMealPlan(ctx context.Context, prompt string, constraints outbound.AIConstraints) (*outbound.AIMealPlanResponse, error) {
	s.logger.Info("Generating meal plan",
		zap.String("provider", s.provider),
		zap.String("prompt", prompt),
	)

	response, err := s.client.GenerateMealPlan(ctx, prompt, constraints)
	if err != nil {
		s.logger.Warn("AI provider failed, using mock fallback",
			zap.String("provider", s.provider),
			zap.Error(err),
		)
		return s.mock.GenerateMealPlan(ctx, prompt, constraints)
	}

	return response, nil
}

// mockPlanner produces a deterministic structured plan from a small
// recipe catalog, seeded by the prompt so identical requests yield
// identical plans.
type mockPlanner struct {
	catalog []mockRecipe
}

type mockRecipe struct {
	title       string
	mealType    planning.MealType
	ingredients []planning.IngredientRequirement
}

func newMockPlanner() *mockPlanner {
	return &mockPlanner{
		catalog: []mockRecipe{
			{
				title:    "Tortilla de patatas",
				mealType: planning.MealTypeLunch,
				ingredients: []planning.IngredientRequirement{
					{Name: "patatas", Quantity: 300, Unit: "g", Category: "verduras"},
					{Name: "huevos", Quantity: 2, Unit: "unidad", Category: "huevos"},
					{Name: "aceite de oliva", Quantity: 30, Unit: "ml", Category: "aceites"},
				},
			},
			{
				title:    "Lentejas estofadas",
				mealType: planning.MealTypeDinner,
				ingredients: []planning.IngredientRequirement{
					{Name: "lentejas", Quantity: 150, Unit: "g", Category: "legumbres"},
					{Name: "zanahoria", Quantity: 80, Unit: "g", Category: "verduras"},
					{Name: "cebolla", Quantity: 60, Unit: "g", Category: "verduras"},
				},
			},
			{
				title:    "Pasta al pomodoro",
				mealType: planning.MealTypeDinner,
				ingredients: []planning.IngredientRequirement{
					{Name: "pasta", Quantity: 120, Unit: "g", Category: "cereales"},
					{Name: "tomates", Quantity: 250, Unit: "g", Category: "verduras"},
					{Name: "ajo", Quantity: 5, Unit: "g", Category: "verduras"},
				},
			},
			{
				title:    "Avena con fruta",
				mealType: planning.MealTypeBreakfast,
				ingredients: []planning.IngredientRequirement{
					{Name: "avena", Quantity: 60, Unit: "g", Category: "cereales"},
					{Name: "leche", Quantity: 200, Unit: "ml", Category: "lacteos"},
					{Name: "platano", Quantity: 1, Unit: "unidad", Category: "frutas"},
				},
			},
		},
	}
}

// GenerateMealPlan implements outbound.AIService
func (m *mockPlanner) GenerateMealPlan(_ context.Context, prompt string, constraints outbound.AIConstraints) (*outbound.AIMealPlanResponse, error) {
	servings := constraints.Servings
	if servings <= 0 {
		servings = 2
	}

	seed := fnv.New32a()
	_, _ = seed.Write([]byte(prompt))
	offset := int(seed.Sum32())

	var entries []outbound.AIPlannedMeal
	day := 0
	for date := constraints.DateRange.Start; !date.After(constraints.DateRange.End); date = date.AddDate(0, 0, 1) {
		recipe := m.catalog[(offset+day)%len(m.catalog)]
		entries = append(entries, outbound.AIPlannedMeal{
			Date:        date,
			MealType:    recipe.mealType,
			RecipeTitle: recipe.title,
			Servings:    servings,
			Ingredients: recipe.ingredients,
		})
		day++
	}

	return &outbound.AIMealPlanResponse{
		Entries:    entries,
		Model:      "mock-planner",
		Confidence: 1.0,
	}, nil
}
