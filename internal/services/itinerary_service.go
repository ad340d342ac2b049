package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tripcraft/internal/models/db_models"
	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/planner"
	"tripcraft/internal/repositories"
	"tripcraft/pkg/llm"
	"tripcraft/pkg/metrics"
	"tripcraft/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, prefs request_models.TravelPreferences) (*response_models.ItineraryResult, error)
}

type ItineraryService struct {
	factory llm.Factory
	opts    planner.Options
	logRepo repositories.GenerationLogRepositoryInterface
	metrics *metrics.PlannerMetrics
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewItineraryService(
	factory llm.Factory,
	opts planner.Options,
	logRepo repositories.GenerationLogRepositoryInterface,
	plannerMetrics *metrics.PlannerMetrics,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		factory: factory,
		opts:    opts,
		logRepo: logRepo,
		metrics: plannerMetrics,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// GenerateItinerary runs one request through mode selection, the model call
// and reply recovery. Replies that cannot be trusted as structured data come
// back as a fallback itinerary, except a malformed reply in structured mode.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, prefs request_models.TravelPreferences) (*response_models.ItineraryResult, error) {
	if err := prefs.Validate(); err != nil {
		return nil, utils.NewPlanError(utils.ErrInvalidPreferences, utils.MsgInvalidPreferences, err)
	}

	plan := planner.SelectMode(prefs, s.opts)
	prompt := planner.BuildPrompt(prefs, plan.Mode)
	traceID := utils.TraceIDFromContext(ctx)
	logger := s.logger.With(
		zap.String("trace_id", traceID),
		zap.String("mode", string(plan.Mode)),
		zap.String("model", plan.Model),
	)

	started := s.nowFunc()
	resp, err := s.callModel(ctx, plan.Request(prompt, s.opts))
	elapsed := s.nowFunc().Sub(started)
	s.metrics.ObserveModelCall(string(plan.Mode), elapsed)

	record := func(outcome string, citations int) {
		s.metrics.CountGeneration(string(plan.Mode), outcome)
		logger.Info("itinerary generation finished",
			zap.String("outcome", outcome),
			zap.Duration("latency", elapsed),
			zap.Int("citations", citations))

		entry := &db_models.GenerationLog{
			TraceID:       traceID,
			Destination:   prefs.Destination,
			RequestedDays: prefs.Duration,
			Mode:          string(plan.Mode),
			Model:         plan.Model,
			Outcome:       outcome,
			CitationCount: citations,
			LatencyMs:     elapsed.Milliseconds(),
		}
		if err := s.logRepo.CreateGenerationLog(context.WithoutCancel(ctx), entry); err != nil {
			logger.Warn("failed to write generation log", zap.Error(err))
		}
	}

	if err != nil {
		if errors.Is(err, llm.ErrAuthorization) || llm.IsAuthorizationFailure(err) {
			record(metrics.OutcomeAuthError, 0)
			return nil, utils.NewPlanError(utils.ErrModelAuthorization, utils.MsgModelAuthorization, err)
		}
		record(metrics.OutcomeTransportError, 0)
		return nil, utils.NewPlanError(utils.ErrModelUnavailable, utils.MsgModelUnavailable, err)
	}

	logger.Debug("raw model reply", zap.String("reply", resp.Text))

	candidate, ok := planner.ExtractJSON(resp.Text)
	if !ok {
		logger.Warn("no JSON found in model reply; returning fallback itinerary")
		record(metrics.OutcomeFallback, 0)
		return fallbackResult(prefs, resp.Text), nil
	}

	itinerary, err := planner.ValidateItinerary(candidate)
	if err != nil {
		if plan.Mode == planner.ModeStructured {
			record(metrics.OutcomeFormatError, 0)
			return nil, utils.NewPlanError(utils.ErrItineraryFormat, utils.MsgItineraryFormat, err)
		}
		logger.Warn("model reply failed structural validation; returning fallback itinerary", zap.Error(err))
		record(metrics.OutcomeFallback, 0)
		return fallbackResult(prefs, resp.Text), nil
	}

	citations := planner.NormalizeCitations(resp.Grounding)
	record(metrics.OutcomeStructured, len(citations))

	return &response_models.ItineraryResult{
		ItineraryData: *itinerary,
		SourceURLs:    citations,
	}, nil
}

// callModel builds a client for this call only and releases it before returning.
func (s *ItineraryService) callModel(ctx context.Context, req llm.Request) (*llm.Response, error) {
	client, err := s.factory(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			s.logger.Warn("failed to close model client", zap.Error(cerr))
		}
	}()

	return client.GenerateContent(ctx, req)
}

func fallbackResult(prefs request_models.TravelPreferences, raw string) *response_models.ItineraryResult {
	return &response_models.ItineraryResult{
		ItineraryData: planner.BuildFallback(prefs, raw),
		SourceURLs:    []response_models.Citation{},
	}
}
