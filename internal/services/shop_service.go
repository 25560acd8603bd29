package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vytor/edugame/internal/errors"
	"github.com/vytor/edugame/internal/gamification"
	"github.com/vytor/edugame/internal/jobs"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/metrics"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/registry"
)

const (
	ItemDecimal    = "decimal"
	ItemExperience = "experience"

	decimalMeanBoost = 0.1
	experienceBoost  = 100
)

// ShopItems is the shop catalogue.
var ShopItems = []models.ShopItem{
	{
		ID:          ItemDecimal,
		Name:        "Décimas",
		Description: "Agrega 0.1 puntos a tu promedio general",
		Price:       250,
		MaxQuantity: 10,
	},
	{
		ID:          ItemExperience,
		Name:        "Experiencia (100 XP)",
		Description: "Gana 100 XP instantáneos",
		Price:       150,
		MaxQuantity: 20,
	},
}

// ShopService sells boosts for coins
type ShopService interface {
	Items(ctx context.Context) []models.ShopItem
	Purchase(ctx context.Context, username, itemID string, quantity int) (*models.PurchaseResult, error)
}

type shopService struct {
	registry *registry.Registry
	jobQueue jobs.JobQueue
}

// NewShopService creates a new ShopService
func NewShopService(reg *registry.Registry, jobQueue jobs.JobQueue) ShopService {
	return &shopService{registry: reg, jobQueue: jobQueue}
}

func (s *shopService) Items(ctx context.Context) []models.ShopItem {
	items := make([]models.ShopItem, len(ShopItems))
	copy(items, ShopItems)
	return items
}

func findItem(id string) (models.ShopItem, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return models.ShopItem{}, false
}

func (s *shopService) Purchase(ctx context.Context, username, itemID string, quantity int) (*models.PurchaseResult, error) {
	log := logger.FromContext(ctx).WithField("username", username)
	log.Debug("purchase: item=%s, quantity=%d", itemID, quantity)

	item, ok := findItem(strings.TrimSpace(itemID))
	if !ok {
		return nil, errors.NewValidationError("item_type", fmt.Sprintf("unknown item %q", itemID))
	}
	if quantity < 1 {
		return nil, errors.NewValidationError("quantity", "must be at least 1")
	}
	if quantity > item.MaxQuantity {
		return nil, errors.NewValidationError("quantity", fmt.Sprintf("maximum allowed is %d", item.MaxQuantity))
	}

	total := item.Price * uint64(quantity)

	student, err := s.registry.Mutate(username, func(st *models.Student) error {
		if st.Coins < total {
			return errors.NewInsufficientFundsError(st.Coins, total)
		}
		st.Coins -= total

		switch item.ID {
		case ItemDecimal:
			st.Mean += float64(quantity) * decimalMeanBoost
			st.Grades += quantity
		case ItemExperience:
			gamification.GainExp(st, uint64(quantity)*experienceBoost)
		}
		return nil
	})
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues(item.ID, "refused").Inc()
		log.Debug("purchase refused: %v", err)
		return nil, lookupError(username, err)
	}
	metrics.PurchasesTotal.WithLabelValues(item.ID, "ok").Inc()

	recordLedger(ctx, s.jobQueue, models.LedgerEntry{
		Username: username,
		Kind:     models.LedgerPurchase,
		Delta:    -int64(total),
		Balance:  student.Coins,
		Detail:   fmt.Sprintf("%s x%d", item.ID, quantity),
	})

	log.Info("purchased %d %s for %d coins, balance=%d", quantity, item.ID, total, student.Coins)
	return &models.PurchaseResult{
		Success:      true,
		Message:      fmt.Sprintf("Has comprado %d %s exitosamente!", quantity, item.Name),
		CoinsSpent:   total,
		NewBalance:   student.Coins,
		ItemReceived: item.Name,
		Quantity:     quantity,
		NewMean:      student.Mean,
		NewExp:       student.Exp,
		NewLevel:     student.Level,
	}, nil
}
