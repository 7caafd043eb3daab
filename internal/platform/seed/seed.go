// Package seed loads the built-in editorial article set. Seeding is
// idempotent: articles already present by slug are skipped, so the command
// can run on every deploy.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/domain/article"
)

// Result summarizes a seed run.
type Result struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Seeder writes the default content set through the article service.
type Seeder struct {
	articles *article.Service
	logger   zerolog.Logger
}

func NewSeeder(articles *article.Service, logger zerolog.Logger) *Seeder {
	return &Seeder{articles: articles, logger: logger}
}

func strptr(s string) *string { return &s }

// defaultArticles is the editorial set shipped with the application.
func defaultArticles() []*article.Article {
	return []*article.Article{
		{
			Title:    "Understanding Common Cold vs. Flu: Key Differences",
			Slug:     "cold-vs-flu-differences",
			Category: "illness",
			Excerpt:  "Both start with a scratchy throat, but the two infections behave very differently.",
			Content: "Colds creep in over a day or two with sneezing, a runny nose and mild fatigue. " +
				"Influenza hits fast: fever above 38°C, body aches and exhaustion within hours. " +
				"Most colds resolve within a week with rest and fluids. Flu symptoms that include " +
				"trouble breathing, chest pain or a fever lasting more than three days warrant a " +
				"call to your doctor, as do flu symptoms in young children, pregnant people and " +
				"anyone over 65.",
			ImageURL: strptr("https://images.unsplash.com/photo-1584515933487-779824d29309"),
			ReadTime: 4,
			Featured: true,
		},
		{
			Title:    "When a Headache Is More Than a Headache",
			Slug:     "headache-warning-signs",
			Category: "symptoms",
			Excerpt:  "Most headaches are harmless. A few patterns deserve urgent attention.",
			Content: "Tension headaches and migraines account for the vast majority of head pain. " +
				"Seek care immediately for a sudden, severe headache unlike any you have had " +
				"before, a headache after a head injury, or one accompanied by fever, stiff neck, " +
				"confusion, weakness or vision changes. For recurring migraines, a symptom diary " +
				"that tracks sleep, meals and stress often reveals triggers your doctor can help " +
				"you manage.",
			ReadTime: 5,
			Featured: true,
		},
		{
			Title:    "Building a Home First-Aid Kit That Actually Helps",
			Slug:     "home-first-aid-kit",
			Category: "wellness",
			Excerpt:  "A well-stocked kit covers cuts, burns, sprains and fevers without clutter.",
			Content: "Start with adhesive bandages in several sizes, sterile gauze, medical tape and " +
				"an elastic wrap for sprains. Add a digital thermometer, tweezers, antiseptic " +
				"wipes and antibiotic ointment. Stock age-appropriate fever reducers and an " +
				"antihistamine for allergic reactions. Check expiry dates twice a year and keep a " +
				"list of emergency numbers taped inside the lid.",
			ReadTime: 3,
			Featured: false,
		},
		{
			Title:    "Sleep and Immunity: Why Rest Is Medicine",
			Slug:     "sleep-and-immunity",
			Category: "wellness",
			Excerpt:  "Short sleep measurably weakens your response to infection.",
			Content: "Adults who regularly sleep fewer than six hours are more likely to catch a cold " +
				"after exposure to a virus and respond less strongly to vaccines. During deep " +
				"sleep the immune system releases cytokines that help fight infection and " +
				"inflammation. Aim for seven to nine hours, keep a consistent schedule, and treat " +
				"persistent insomnia as a medical issue rather than a character flaw.",
			ReadTime: 6,
			Featured: false,
		},
		{
			Title:    "Abdominal Pain: A Map of What Hurts Where",
			Slug:     "abdominal-pain-map",
			Category: "symptoms",
			Excerpt:  "Location is the first clue your doctor will ask about.",
			Content: "Pain in the upper right abdomen can point to the gallbladder, while burning " +
				"behind the breastbone suggests reflux. Lower right pain with fever and loss of " +
				"appetite raises concern for appendicitis and needs same-day assessment. " +
				"Cramping that moves and eases with a bowel movement is more typical of " +
				"irritable bowel. Severe pain that wakes you from sleep, persistent vomiting or " +
				"blood in stool are never wait-and-see symptoms.",
			ReadTime: 5,
			Featured: true,
		},
		{
			Title:    "Telehealth Visits: Getting the Most From a Video Consultation",
			Slug:     "telehealth-visit-tips",
			Category: "care",
			Excerpt:  "A little preparation makes remote appointments as useful as in-person ones.",
			Content: "Write down your symptoms with dates before the call, including anything that " +
				"makes them better or worse. Have your medication list and a thermometer nearby. " +
				"Good lighting matters if the doctor needs to look at a rash or your throat. Ask " +
				"at the end what should prompt a follow-up and whether an in-person exam is " +
				"needed. Most platforms let you share photos ahead of the visit, which is often " +
				"more useful than live video for skin complaints.",
			ReadTime: 4,
			Featured: false,
		},
	}
}

// Run inserts all missing default articles.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	for _, a := range defaultArticles() {
		_, err := s.articles.GetBySlug(ctx, a.Slug)
		if err == nil {
			res.Skipped++
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return res, fmt.Errorf("check article %q: %w", a.Slug, err)
		}
		if err := s.articles.Create(ctx, a); err != nil {
			return res, fmt.Errorf("seed article %q: %w", a.Slug, err)
		}
		res.Created++
	}
	s.logger.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("article seed complete")
	return res, nil
}
