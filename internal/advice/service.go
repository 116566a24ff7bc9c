// Package advice turns free-text symptom descriptions into canned first-aid
// suggestions by way of an external text classifier.
package advice

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"healthmate/internal/classifier"
)

//go:generate mockgen -source=service.go -destination=mock_classifier_test.go -package=advice

// TextClassifier is the outbound classification dependency;
// *classifier.Client satisfies it.
type TextClassifier interface {
	Classify(ctx context.Context, text string) ([]classifier.Classification, error)
}

var (
	// ErrEmptyInput marks a blank submission. Callers skip the analysis
	// and show no result, not an error page.
	ErrEmptyInput = errors.New("no symptoms provided")

	// ErrUnavailable covers every external failure: network fault, bad
	// response, or a classifier that was never configured.
	ErrUnavailable = errors.New("classification unavailable")
)

// Result is the outcome of one analysis. It is shown once and never
// persisted.
type Result struct {
	Label    string
	Score    float64
	FirstAid string
}

var adviceByLabel = map[string]string{
	"POSITIVE": "Seek medical attention and stay hydrated.",
	"NEGATIVE": "Monitor your symptoms, usually mild.",
}

const fallbackAdvice = "Follow general health precautions."

// Service derives advice from the classifier's dominant label.
type Service struct {
	classifier TextClassifier
}

// NewService builds the advice service. A nil classifier disables the path
// entirely: every analysis reports ErrUnavailable without an outbound call.
func NewService(classifier TextClassifier) *Service {
	return &Service{classifier: classifier}
}

// Analyze classifies the text and maps the dominant label to its advisory
// message. At most one external call is made; there are no retries.
func (s *Service) Analyze(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if s.classifier == nil {
		return nil, ErrUnavailable
	}

	results, err := s.classifier.Classify(ctx, text)
	if err != nil {
		log.Println("[ADVICE] [ERROR] classification failed:", err)
		return nil, ErrUnavailable
	}
	if len(results) == 0 {
		return nil, ErrUnavailable
	}

	top := results[0]
	firstAid, ok := adviceByLabel[top.Label]
	if !ok {
		firstAid = fallbackAdvice
	}

	return &Result{
		Label:    top.Label,
		Score:    roundScore(top.Score),
		FirstAid: firstAid,
	}, nil
}

// roundScore rounds to two decimal places for display.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
