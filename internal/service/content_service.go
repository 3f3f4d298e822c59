package service

import (
	"slices"
	"strings"

	"github.com/maheshrc27/marketing-hub/internal/generator"
	"github.com/maheshrc27/marketing-hub/internal/insights"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type ContentService interface {
	Generate(req *transfer.GenerateRequest) ([]string, error)
	Ideas(req *transfer.GenerateRequest) ([]string, error)
	Hashtags(topic, platform string) (*insights.HashtagReport, error)
}

type contentService struct {
	gen *generator.Generator
}

func NewContentService(gen *generator.Generator) ContentService {
	return &contentService{gen: gen}
}

func toGeneratorRequest(req *transfer.GenerateRequest) (generator.Request, error) {
	if req == nil {
		return generator.Request{}, invalid("Describe the business to generate content for.")
	}
	out := generator.Request{
		BusinessType: req.BusinessType,
		Audience:     req.Audience,
		Tone:         models.ToneFriendly,
		Platform:     models.MarketingInstagram,
	}
	if req.Tone != "" {
		tone := models.MarketingTone(req.Tone)
		if !slices.Contains(models.MarketingTones, tone) {
			return out, invalid("Unknown tone.")
		}
		out.Tone = tone
	}
	if req.Platform != "" {
		platform := models.MarketingPlatform(req.Platform)
		if !slices.Contains(models.MarketingPlatforms, platform) {
			return out, invalid(MsgInvalidPlatform)
		}
		out.Platform = platform
	}
	return out, nil
}

func (s *contentService) Generate(req *transfer.GenerateRequest) ([]string, error) {
	gr, err := toGeneratorRequest(req)
	if err != nil {
		return nil, logErr(err)
	}
	return s.gen.Generate(gr), nil
}

func (s *contentService) Ideas(req *transfer.GenerateRequest) ([]string, error) {
	gr, err := toGeneratorRequest(req)
	if err != nil {
		return nil, logErr(err)
	}
	return generator.Ideas(gr), nil
}

func (s *contentService) Hashtags(topic, platform string) (*insights.HashtagReport, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, logErr(invalid("Enter a topic to research."))
	}
	report := insights.ResearchHashtags(topic, platform)
	return &report, nil
}
