// Package quality audits the reference table for rows that look wrong.
// Issues are reported to data owners, never corrected in place: the table is
// the source of truth even when it is suspect.
package quality

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pcloudair/airports/internal/domain"
	"github.com/pcloudair/airports/internal/kafka"
)

const domesticCountry = "United States"

// Gate counts at or above this mark are hub-sized in this table.
const hubGateThreshold = 10

// Issue is a single suspect row finding.
type Issue struct {
	Code   string
	Field  string
	Detail string
}

// Audit checks every record and returns the findings. It never modifies the
// records.
func Audit(airports []domain.Airport) []Issue {
	var issues []Issue
	for _, a := range airports {
		if a.Country != domesticCountry {
			issues = append(issues, Issue{
				Code:   a.Code,
				Field:  "country",
				Detail: "non-US airport in a US reference table",
			})
		}
		if !a.IsHub && a.GateCount >= hubGateThreshold {
			issues = append(issues, Issue{
				Code:   a.Code,
				Field:  "is_hub",
				Detail: "gate count is hub-sized but the record is not marked as a hub",
			})
		}
	}
	return issues
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Reporter publishes audit findings so data owners can review them.
type Reporter struct {
	producer Producer
	topic    string
}

func NewReporter(producer Producer, topic string) *Reporter {
	return &Reporter{producer: producer, topic: topic}
}

// Report audits the records and publishes one event per issue. Returns the
// issues regardless of whether publishing is configured.
func (r *Reporter) Report(ctx context.Context, airports []domain.Airport) ([]Issue, error) {
	issues := Audit(airports)
	if r.producer == nil || r.topic == "" {
		return issues, nil
	}

	for _, issue := range issues {
		event := kafka.QualityIssueEvent{
			ID:         uuid.NewString(),
			Code:       issue.Code,
			Field:      issue.Field,
			Detail:     issue.Detail,
			DetectedAt: time.Now(),
		}
		if err := r.producer.Publish(ctx, r.topic, issue.Code, event); err != nil {
			return issues, err
		}
	}
	return issues, nil
}
