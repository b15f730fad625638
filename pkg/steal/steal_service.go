package steal

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"recipe-box/domain"
	"recipe-box/internal/utils"
	"recipe-box/internal/utils/storage"
	"recipe-box/pkg/digest"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type (
	StealService interface {
		// Extract turns a recipe page into a validated digest payload without
		// writing anything to the store.
		Extract(ctx context.Context, pageURL string) (domain.StealResponse, error)
		StealAndDigest(ctx context.Context, pageURL string) (domain.StealResponse, error)
		Prompt(pageURL string) (domain.StealPromptResponse, error)
	}

	stealService struct {
		fetcher       PageFetcher
		provider      Provider
		cache         ExtractionCache
		archive       storage.AwsS3
		digestService digest.DigestService
		validator     *validator.Validate
		maxChars      int
	}
)

func NewStealService(
	fetcher PageFetcher,
	provider Provider,
	cache ExtractionCache,
	archive storage.AwsS3,
	digestService digest.DigestService,
	validator *validator.Validate,
	maxChars int,
) StealService {
	if cache == nil {
		cache = noopCache{}
	}
	return &stealService{
		fetcher:       fetcher,
		provider:      provider,
		cache:         cache,
		archive:       archive,
		digestService: digestService,
		validator:     validator,
		maxChars:      maxChars,
	}
}

func (s *stealService) validateURL(pageURL string) (string, error) {
	pageURL = strings.TrimSpace(pageURL)
	if err := utils.ValidateStruct(s.validator, domain.StealRequest{URL: pageURL}); err != nil {
		return "", err
	}
	u, err := url.Parse(pageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", domain.NewValidationError("url must be an http or https address")
	}
	return pageURL, nil
}

func (s *stealService) Prompt(pageURL string) (domain.StealPromptResponse, error) {
	pageURL, err := s.validateURL(pageURL)
	if err != nil {
		return domain.StealPromptResponse{}, err
	}
	return domain.StealPromptResponse{URL: pageURL, Prompt: CraftPrompt(pageURL, "")}, nil
}

func (s *stealService) Extract(ctx context.Context, pageURL string) (domain.StealResponse, error) {
	pageURL, err := s.validateURL(pageURL)
	if err != nil {
		return domain.StealResponse{}, err
	}

	if payload, ok := s.cache.Get(ctx, pageURL); ok {
		utils.Logger.Debug("extraction cache hit", zap.String("url", pageURL))
		return domain.StealResponse{Payload: payload, Cached: true}, nil
	}

	if s.provider == nil {
		return domain.StealResponse{}, &domain.UpstreamError{
			Kind:    domain.UpstreamModelFailed,
			Message: "no extraction model is configured",
		}
	}

	page, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		utils.Logger.Warn("recipe page fetch failed", zap.String("url", pageURL), zap.Error(err))
		return domain.StealResponse{}, err
	}

	text := HTMLToText(page, s.maxChars)
	if text == "" {
		return domain.StealResponse{}, &domain.UpstreamError{
			Kind:    domain.UpstreamNoRecipe,
			Message: "the page has no readable content",
		}
	}
	s.archiveSource(ctx, pageURL, text)

	start := time.Now()
	reply, err := s.provider.Complete(ctx, CraftPrompt(pageURL, text))
	if err != nil {
		utils.Logger.Error("extraction model call failed",
			zap.String("provider", s.provider.Name()),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return domain.StealResponse{}, &domain.UpstreamError{
			Kind:    domain.UpstreamModelFailed,
			Message: "the extraction model did not answer",
			Err:     err,
		}
	}
	utils.Logger.Info("extraction model answered",
		zap.String("provider", s.provider.Name()),
		zap.Duration("latency", time.Since(start)),
		zap.Int("reply_chars", len(reply)),
	)

	payload, err := ParseReply(reply)
	if err != nil {
		return domain.StealResponse{}, err
	}
	if err := s.digestService.Validate(&payload); err != nil {
		return domain.StealResponse{}, &domain.UpstreamError{
			Kind:    domain.UpstreamPartialData,
			Message: "the extracted recipe is incomplete: " + err.Error(),
			Err:     err,
		}
	}

	s.cache.Set(ctx, pageURL, payload)
	return domain.StealResponse{Payload: payload}, nil
}

func (s *stealService) StealAndDigest(ctx context.Context, pageURL string) (domain.StealResponse, error) {
	res, err := s.Extract(ctx, pageURL)
	if err != nil {
		return domain.StealResponse{}, err
	}

	created, err := s.digestService.DigestRecipe(ctx, res.Payload)
	if err != nil {
		return domain.StealResponse{}, err
	}
	res.Recipe = &created
	return res, nil
}

// archiveSource keeps the text the model saw next to the extraction. Failures
// are logged and otherwise ignored.
func (s *stealService) archiveSource(ctx context.Context, pageURL, text string) {
	if s.archive == nil {
		return
	}
	key := fmt.Sprintf("steal/%s/%d.txt", strings.TrimPrefix(cacheKey(pageURL), "steal:"), time.Now().Unix())
	location, err := s.archive.PutObject(ctx, key, []byte(pageURL+"\n\n"+text), "text/plain; charset=utf-8")
	if err != nil {
		utils.Logger.Warn("source archive failed", zap.String("url", pageURL), zap.Error(err))
		return
	}
	utils.Logger.Debug("source archived", zap.String("location", location))
}
