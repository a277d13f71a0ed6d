// Package advisor содержит AI-помощников портала: подбор тарифа по анкете
// и краткое резюме аккаунта с предложением докупки.
//
// Модель — внешний исполнитель с жёстким контрактом выхода: ответ обязан
// быть JSON-объектом объявленной формы, а рекомендованный продукт —
// элементом переданного каталога. Нарушение контракта — ошибка, а не
// повод молча выбрать что-то самим или повторить запрос.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// Фиксированная пара для нового аккаунта без услуг: модель в этом случае
// не вызывается вовсе.
const (
	WelcomeSummary = "Welcome aboard! You don't have any services yet."
	WelcomeUpsell  = "A Starter Hosting plan is a great way to get your first site online."
)

// Completer описывает один структурированный вызов текстовой модели.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// CatalogAPI отдаёт каталог продуктов для формирования prompt.
type CatalogAPI interface {
	GetProducts(ctx context.Context, groupID string) ([]models.Product, error)
}

// ServicesAPI отдаёт услуги аккаунта для резюме.
type ServicesAPI interface {
	GetClientsProducts(ctx context.Context, clientID string) ([]models.Service, error)
}

// Recommendation — выбранный моделью продукт и обоснование в один абзац.
type Recommendation struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Reason      string `json:"reason"`
}

// AccountSummary — резюме аккаунта в одно предложение и предложение докупки.
type AccountSummary struct {
	Summary string `json:"summary"`
	Upsell  string `json:"upsell"`
}

// Service реализует AI-помощников.
type Service struct {
	model    Completer
	catalog  CatalogAPI
	services ServicesAPI
	log      *slog.Logger
}

// New создает новый Service.
func New(model Completer, catalog CatalogAPI, services ServicesAPI, log *slog.Logger) *Service {
	return &Service{model: model, catalog: catalog, services: services, log: log}
}

// Recommend подбирает один продукт каталога по ответам анкеты.
// Идентификатор вне каталога — ErrDownstream, без молчаливого fallback.
func (s *Service) Recommend(ctx context.Context, req models.RecommendRequest) (*Recommendation, error) {
	const op = "advisor.Recommend"

	products, err := s.catalog.GetProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%s: empty product catalog: %w", op, models.ErrDownstream)
	}

	var sb strings.Builder
	for _, p := range products {
		fmt.Fprintf(&sb, "- id=%s name=%q description=%q\n", p.ID, p.Name, stripTags(p.Description))
	}
	system := `You are a hosting plan advisor. Pick exactly one product from the catalog. ` +
		`Reply with a JSON object {"product_id": "<id from catalog>", "reason": "<one paragraph>"}.`
	user := fmt.Sprintf(
		"Catalog:\n%s\nQuestionnaire: site type %q, expected traffic %q, technical level %q, budget %q.",
		sb.String(), req.SiteType, req.ExpectedTraffic, req.TechLevel, req.Budget)

	raw, err := s.model.Complete(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var parsed struct {
		ProductID string `json:"product_id"`
		Reason    string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed.ProductID == "" || parsed.Reason == "" {
		return nil, fmt.Errorf("%s: malformed model output: %w", op, models.ErrDownstream)
	}
	for _, p := range products {
		if p.ID == parsed.ProductID {
			s.log.Info("plan recommended", slog.String("product_id", p.ID))
			return &Recommendation{
				ProductID:   p.ID,
				ProductName: p.Name,
				Reason:      parsed.Reason,
			}, nil
		}
	}
	return nil, fmt.Errorf("%s: model returned product %q not in catalog: %w",
		op, parsed.ProductID, models.ErrDownstream)
}

// Summary строит резюме аккаунта. Пустой список услуг — фиксированная
// приветственная пара без вызова модели. Если клиент владеет всем
// каталогом, модель просят поблагодарить вместо докупки.
func (s *Service) Summary(ctx context.Context, clientID string) (*AccountSummary, error) {
	const op = "advisor.Summary"

	owned, err := s.services.GetClientsProducts(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return &AccountSummary{Summary: WelcomeSummary, Upsell: WelcomeUpsell}, nil
	}

	products, err := s.catalog.GetProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	ownedNames := make([]string, 0, len(owned))
	ownedSet := make(map[string]bool, len(owned))
	for _, svc := range owned {
		ownedNames = append(ownedNames, svc.Name)
		ownedSet[svc.Name] = true
	}
	catalogNames := make([]string, 0, len(products))
	ownsEverything := true
	for _, p := range products {
		catalogNames = append(catalogNames, p.Name)
		if !ownedSet[p.Name] {
			ownsEverything = false
		}
	}

	system := `You are a hosting account assistant. Reply with a JSON object ` +
		`{"summary": "<one sentence>", "upsell": "<one sentence>"}.`
	user := fmt.Sprintf("Owned services: %s.\nFull catalog: %s.\n"+
		"Summarize the account in one sentence and suggest one catalog product the client does not own yet.",
		strings.Join(ownedNames, ", "), strings.Join(catalogNames, ", "))
	if ownsEverything {
		user = fmt.Sprintf("Owned services: %s.\nThe client already owns every catalog product. "+
			"Summarize the account in one sentence and thank the client in one sentence instead of upselling.",
			strings.Join(ownedNames, ", "))
	}

	raw, err := s.model.Complete(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var parsed AccountSummary
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed.Summary == "" || parsed.Upsell == "" {
		return nil, fmt.Errorf("%s: malformed model output: %w", op, models.ErrDownstream)
	}
	return &parsed, nil
}

// stripTags грубо вычищает HTML-теги описаний каталога перед prompt.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
