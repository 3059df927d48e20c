package teammate

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/InzamanCareem/TeamMate-System/survey"
	"github.com/InzamanCareem/TeamMate-System/types"
)

// AnswerFunc supplies one answer per call during an intake run.
//
// questionNo is the question being asked (1-8) and attempt counts prior
// rejections of the same question (0 on the first ask). The worker keeps
// re-asking the same question with an incremented attempt until the answer
// is accepted or the retry cap is exhausted.
type AnswerFunc func(questionNo, attempt int) string

// IntakeRequest describes one participant entering an intake run.
//
// When ID is empty the registry generates the next sequential ID.
type IntakeRequest struct {
	ID      string
	Name    string
	Email   string
	Answers AnswerFunc
}

// RunIntake registers and surveys the requested participants concurrently.
//
// Requests fan out to a worker pool of min(len(requests), GOMAXPROCS)
// goroutines. Each worker walks the full protocol for its participant:
// register (duplicate ID aborts with no side effects), answer all eight
// questions with per-question retries, commit interest fields, classify,
// and persist. Participants classified below every personality threshold
// are removed and not persisted. A persist failure leaves the participant
// registered and eligible for team formation.
//
// The run as a whole is bounded by the configured IntakeTimeout. On
// timeout the report carries TimedOut and only the outcomes observed so
// far; participants that already completed remain registered and valid.
//
// Parameters:
//   - ctx: Context for cancellation; in-flight workers abandon their
//     participant when it is done
//   - requests: Participants to process
//
// Returns:
//   - IntakeReport: Aggregated outcome counts for the run
//   - error: ErrIntakeTimeout or the context error; nil when all workers
//     finished in time
func (c *Coordinator) RunIntake(ctx context.Context, requests []IntakeRequest) (IntakeReport, error) {
	start := time.Now()
	report := IntakeReport{Requested: len(requests)}
	if len(requests) == 0 {
		return report, nil
	}

	workers := min(len(requests), runtime.GOMAXPROCS(0))
	jobs := make(chan IntakeRequest, len(requests))
	results := make(chan types.IntakeOutcome, len(requests))

	for _, req := range requests {
		jobs <- req
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				results <- c.runIntakeWorker(ctx, req)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	c.logger.Info("intake run started", "requests", len(requests), "workers", workers)

	timer := time.NewTimer(c.cfg.IntakeTimeout)
	defer timer.Stop()

	var runErr error
	select {
	case <-done:
	case <-timer.C:
		report.TimedOut = true
		runErr = fmt.Errorf("%w: intake did not finish within %s", ErrIntakeTimeout, c.cfg.IntakeTimeout)
		c.logger.Error("intake run timed out", "timeout", c.cfg.IntakeTimeout)
	case <-ctx.Done():
		report.TimedOut = true
		runErr = ctx.Err()
		c.logger.Warn("intake run cancelled", "error", ctx.Err())
	}

	c.collectOutcomes(results, &report, runErr == nil)
	report.Elapsed = time.Since(start)
	c.metrics.SetRegisteredParticipants(c.registry.Size())

	if runErr == nil {
		c.logger.Info("intake run finished",
			"completed", report.Completed,
			"duplicates", report.Duplicates,
			"abandoned", report.Abandoned,
			"excluded", report.Excluded,
			"write_failures", report.WriteFailures,
			"elapsed", report.Elapsed,
		)
	}

	return report, runErr
}

// collectOutcomes drains the results channel into the report. When the run
// finished cleanly every request has exactly one outcome; after a timeout
// only the outcomes already delivered are tallied.
func (c *Coordinator) collectOutcomes(results <-chan types.IntakeOutcome, report *IntakeReport, complete bool) {
	tally := func(outcome types.IntakeOutcome) {
		c.metrics.RecordIntakeOutcome(outcome)
		switch outcome {
		case types.OutcomeCompleted:
			report.Completed++
		case types.OutcomeDuplicate:
			report.Duplicates++
		case types.OutcomeAbandoned:
			report.Abandoned++
		case types.OutcomeExcluded:
			report.Excluded++
		case types.OutcomeWriteFailed:
			report.WriteFailures++
		}
	}

	if complete {
		for range report.Requested {
			tally(<-results)
		}

		return
	}

	for {
		select {
		case outcome := <-results:
			tally(outcome)
		default:
			return
		}
	}
}

// runIntakeWorker walks one participant through the full intake protocol
// and returns the terminal outcome.
func (c *Coordinator) runIntakeWorker(ctx context.Context, req IntakeRequest) types.IntakeOutcome {
	var p *types.Participant
	if req.ID != "" {
		p = types.NewParticipant(req.ID, req.Name, req.Email)
	} else {
		p = c.registry.NewParticipant(req.Name, req.Email)
	}

	if !c.registry.Add(p) {
		c.logger.Debug("participant already registered, skipping", "participant", p.ID())
		return types.OutcomeDuplicate
	}
	c.metrics.SetRegisteredParticipants(c.registry.Size())

	if c.hooks != nil && c.hooks.OnParticipantRegistered != nil {
		if err := c.hooks.OnParticipantRegistered(ctx, p); err != nil {
			c.logger.Warn("OnParticipantRegistered hook failed", "participant", p.ID(), "error", err)
		}
	}
	if c.publisher != nil {
		if err := c.publisher.PublishParticipantRegistered(ctx, p); err != nil {
			c.logger.Warn("participant-registered event publish failed", "participant", p.ID(), "error", err)
		}
	}

	if !c.surveyParticipant(ctx, p, req.Answers) {
		c.registry.Remove(p.ID())
		return types.OutcomeAbandoned
	}

	if err := c.commitInterests(p); err != nil {
		c.logger.Error("interest commit failed", "participant", p.ID(), "error", err)
		c.registry.Remove(p.ID())

		return types.OutcomeAbandoned
	}

	score, personality, err := c.classifyParticipant(p)
	if err != nil {
		c.logger.Error("classification failed", "participant", p.ID(), "error", err)
		c.registry.Remove(p.ID())

		return types.OutcomeAbandoned
	}

	if !personality.Qualified() {
		c.registry.Remove(p.ID())
		c.logger.Info("participant excluded by personality score", "participant", p.ID(), "score", score)
		if c.hooks != nil && c.hooks.OnParticipantExcluded != nil {
			if err := c.hooks.OnParticipantExcluded(ctx, p, score); err != nil {
				c.logger.Warn("OnParticipantExcluded hook failed", "participant", p.ID(), "error", err)
			}
		}

		return types.OutcomeExcluded
	}

	if res := c.StoreParticipant(p); !res.Success {
		// Still registered and eligible for team formation.
		c.logger.Error("participant persist failed", "participant", p.ID(), "detail", res.Message)
		return types.OutcomeWriteFailed
	}

	c.logger.Info("participant completed intake",
		"participant", p.ID(),
		"personality", string(personality),
		"score", score,
	)

	return types.OutcomeCompleted
}

// surveyParticipant asks all eight questions in order, re-asking each
// rejected question until it is accepted or the retry cap is reached.
// Returns false when the participant must be abandoned.
func (c *Coordinator) surveyParticipant(ctx context.Context, p *types.Participant, answers AnswerFunc) bool {
	if answers == nil {
		c.logger.Warn("intake request has no answer source", "participant", p.ID())
		return false
	}

	for q := survey.FirstQuestion; q <= survey.QuestionCount; q++ {
		attempt := 0
		for {
			if ctx.Err() != nil {
				c.logger.Warn("abandoning participant, context done", "participant", p.ID(), "question", q)
				return false
			}

			res := c.SubmitAnswer(p.ID(), q, answers(q, attempt))
			if res.Success {
				c.metrics.RecordAnswerRetries(q, attempt)
				break
			}

			attempt++
			if c.cfg.MaxAnswerRetries >= 0 && attempt > c.cfg.MaxAnswerRetries {
				c.metrics.RecordAnswerRetries(q, attempt)
				c.logger.Warn("abandoning participant, retry cap reached",
					"participant", p.ID(),
					"question", q,
					"attempts", attempt,
				)

				return false
			}
		}
	}

	return true
}
