package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/callintel/config"
	"github.com/kbukum/callintel/contextcheck"
	"github.com/kbukum/callintel/logger"
	"github.com/kbukum/callintel/observability"
	"github.com/kbukum/callintel/outcome"
	"github.com/kbukum/callintel/report"
	"github.com/kbukum/callintel/roles"
	"github.com/kbukum/callintel/script"
	"github.com/kbukum/callintel/transcript"
	"github.com/kbukum/callintel/util"
	"github.com/kbukum/callintel/validation"
)

// Engine runs the deterministic analysis pipeline. It holds only the
// policy and observability hooks; every run's state is local.
type Engine struct {
	policy  config.Policy
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics sets the engine's metrics instruments.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an Engine with the given analysis policy. Unset policy
// fields take their defaults.
func New(policy config.Policy, opts ...Option) *Engine {
	policy.ApplyDefaults()
	e := &Engine{
		policy: policy,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateRequest checks the structural bounds of a request. Transcript
// content is never validated: empty or malformed transcripts degrade
// gracefully inside Analyze instead of erroring here.
func (e *Engine) ValidateRequest(req Request) error {
	return validation.Struct(req)
}

// Analyze runs the full deterministic pipeline over one request and
// bundles the results into a fresh Diagnostics record. It never fails:
// a transcript with too little signal produces an UNCLEAR outcome and
// neutral speaker labels.
func (e *Engine) Analyze(ctx context.Context, req Request) Diagnostics {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "engine.analyze")
	defer span.End()
	e.metrics.RecordAnalysis(ctx)

	runID := uuid.NewString()
	log := e.log.WithFields(logger.Fields(logger.FieldRunID, runID))

	var lines []transcript.Line
	if len(req.Utterances) > 0 {
		lines = transcript.Normalize(req.Utterances)
	} else {
		lines = transcript.Parse(req.RawText)
	}

	assignment := roles.Infer(lines, e.policy.Roles)
	if assignment.Verdict == roles.VerdictConfident && len(assignment.Mapping) > 0 {
		lines = transcript.Relabel(lines, assignment.Mapping)
	}
	log.Debug("roles inferred", logger.Fields(
		logger.FieldVerdict, string(assignment.Verdict),
		logger.FieldSpeakers, len(transcript.Stats(lines)),
	))

	userContext := util.SanitizeString(req.UserContext)
	result := outcome.Classify(lines, e.policy.Outcome)
	conflict := contextcheck.Detect(userContext, lines, e.policy.Context)
	inferred := contextcheck.Infer(transcript.Text(lines))

	observability.SetSpanAttribute(ctx, "outcome", string(result.Key))
	observability.SetSpanAttribute(ctx, "lines", len(lines))
	e.metrics.RecordOutcome(ctx, string(result.Key))
	e.metrics.RecordAnalyzeTime(ctx, float64(time.Since(start).Microseconds())/1000)

	log.Debug("analysis complete", logger.Fields(
		logger.FieldOutcome, string(result.Key),
		logger.FieldWords, transcript.Words(transcript.Text(lines)),
	))

	return Diagnostics{
		RunID:      runID,
		Transcript: transcript.Render(lines),
		Lines:      lines,
		Roles:      assignment,
		Outcome:    result,
		Context:    conflict,
		Inferred:   inferred,
	}
}

// Finalize applies the persistence-time passes to a generator draft:
// the refined outcome classification, which lets rule evidence outrank
// the generator's own label, and the script contract.
func (e *Engine) Finalize(ctx context.Context, diag Diagnostics, draft report.Draft) Final {
	ctx, span := observability.StartSpan(ctx, "engine.finalize")
	defer span.End()

	refined := outcome.Refine(diag.Lines, draft.ProposedOutcome, e.policy.Outcome)
	enforced := script.Enforce(report.CleanScript(draft.Script), e.policy.Script)

	if refined.Key != diag.Outcome.Key {
		e.log.Info("refinement overrode live outcome", logger.Fields(
			logger.FieldRunID, diag.RunID,
			"live", string(diag.Outcome.Key),
			"refined", string(refined.Key),
		))
	}
	observability.SetSpanAttribute(ctx, "outcome", string(refined.Key))

	return Final{Outcome: refined, Script: enforced}
}

// CanonicalText rebuilds canonical transcript text from any supported
// input shape without running the classifiers.
func CanonicalText(req Request) string {
	if len(req.Utterances) > 0 {
		return transcript.Render(transcript.Normalize(req.Utterances))
	}
	if strings.TrimSpace(req.RawText) == "" {
		return ""
	}
	return transcript.Render(transcript.Parse(req.RawText))
}
