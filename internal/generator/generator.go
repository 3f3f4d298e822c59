package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/maheshrc27/marketing-hub/internal/models"
)

const ideasPerRequest = 3

type Request struct {
	BusinessType string                   `json:"business_type"`
	Audience     string                   `json:"audience"`
	Tone         models.MarketingTone     `json:"tone"`
	Platform     models.MarketingPlatform `json:"platform"`
}

// Generator assembles marketing copy from fixed template tables. Output is
// deterministic for a given seed.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func NewRandom() *Generator {
	return New(rand.Uint64())
}

// Generate returns three captions for the request.
func (g *Generator) Generate(req Request) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	business := strings.TrimSpace(req.BusinessType)
	if business == "" {
		business = "small business"
	}
	audience := strings.TrimSpace(req.Audience)
	if audience == "" {
		audience = "your audience"
	}

	templates, ok := toneTemplates[req.Tone]
	if !ok {
		templates = toneTemplates[models.ToneFriendly]
	}
	frames, ok := platformFrames[req.Platform]
	if !ok {
		frames = platformFrames[models.MarketingInstagram]
	}
	advice := adviceFor(business)

	order := g.rng.Perm(len(templates))
	out := make([]string, 0, ideasPerRequest)
	for i := 0; i < ideasPerRequest; i++ {
		line := templates[order[i%len(order)]]
		line = strings.NewReplacer(
			"{business}", business,
			"{audience}", audience,
			"{tip}", advice.tips[g.rng.IntN(len(advice.tips))],
			"{step}", advice.steps[g.rng.IntN(len(advice.steps))],
		).Replace(line)

		text := fmt.Sprintf(frames[g.rng.IntN(len(frames))], line)
		out = append(out, truncate(text, req.Platform))
	}
	return out
}

// Ideas is the short outline form used by the quick generator: one line per
// idea naming the business, audience, tone and platform.
func Ideas(req Request) []string {
	business := req.BusinessType
	if business == "" {
		business = "any"
	}
	audience := req.Audience
	if audience == "" {
		audience = "their audience"
	}
	base := fmt.Sprintf("For %s brands targeting %s, focus on %s storytelling on %s.",
		business, audience, strings.ToLower(string(req.Tone)), req.Platform)

	out := make([]string, 0, ideasPerRequest)
	for i := 1; i <= ideasPerRequest; i++ {
		out = append(out, fmt.Sprintf("Idea #%d: %s CTA idea %d.", i, base, i))
	}
	return out
}

func adviceFor(business string) businessAdvice {
	lower := strings.ToLower(business)
	for _, entry := range businessTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry
			}
		}
	}
	return genericAdvice
}

func truncate(text string, platform models.MarketingPlatform) string {
	limit, ok := postLimits[platform]
	if !ok {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
