package generator

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EcommerceMotivationalTikTok(t *testing.T) {
	g := New(42)
	out := g.Generate(Request{
		BusinessType: "E-commerce",
		Audience:     "Gen Z (18-24)",
		Tone:         models.ToneMotivational,
		Platform:     models.MarketingTikTok,
	})

	require.Len(t, out, 3)
	for _, s := range out {
		assert.NotEmpty(t, s)
		assert.True(t, strings.Contains(s, "E-commerce") || strings.Contains(s, "e-commerce"), s)
		assert.LessOrEqual(t, utf8.RuneCountInString(s), models.TikTok.MaxPostLength())
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	req := Request{BusinessType: "SaaS / Tech", Audience: "Working Professionals", Tone: models.ToneProfessional, Platform: models.MarketingLinkedIn}
	assert.Equal(t, New(7).Generate(req), New(7).Generate(req))
}

func TestGenerate_UsesBusinessKeyedAdvice(t *testing.T) {
	fitness := adviceFor("Fitness & Wellness")
	assert.Contains(t, fitness.keywords, "fitness")

	out := New(1).Generate(Request{BusinessType: "Fitness & Wellness", Tone: models.ToneFriendly, Platform: models.MarketingInstagram})
	for _, s := range out {
		found := false
		for _, line := range append(append([]string{}, fitness.tips...), fitness.steps...) {
			if strings.Contains(s, line) {
				found = true
			}
		}
		assert.True(t, found, s)
	}
}

func TestGenerate_UnknownBusinessUsesGenericAdvice(t *testing.T) {
	assert.Equal(t, genericAdvice.tips, adviceFor("Artisan Candles").tips)
}

func TestIdeas_FallsBackForEmptyInputs(t *testing.T) {
	out := Ideas(Request{Tone: models.ToneLuxury, Platform: models.MarketingEmail})
	require.Len(t, out, 3)
	assert.Equal(t, "Idea #1: For any brands targeting their audience, focus on luxury storytelling on Email. CTA idea 1.", out[0])
}

func TestTruncate_RespectsPlatformLimit(t *testing.T) {
	long := strings.Repeat("a", 600)
	assert.Equal(t, 500, utf8.RuneCountInString(truncate(long, models.MarketingPinterest)))
	assert.Equal(t, long, truncate(long, models.MarketingEmail))
}
