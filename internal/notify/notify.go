package notify

import (
	"context"
	"fmt"

	"github.com/pcloudair/airports/internal/kafka"
)

// Sender delivers data-quality findings to the dataset owners.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.QualityIssueEvent) error {
	fmt.Printf("notify data owners: record %s field %s: %s\n", event.Code, event.Field, event.Detail)
	return nil
}
