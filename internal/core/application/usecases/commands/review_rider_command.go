package commands

import (
	"errors"
	"fmt"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrReviewRiderCommandIsNotConstructed = errors.New(
	"ReviewRiderCommand must be created via NewReviewRiderCommand constructor",
)

type ReviewRiderCommand struct {
	riderID  kernel.UUID
	decision rider.ApplicationStatus

	guard guard.ConstructorGuard
}

// NewReviewRiderCommand accepts "active" or "rejected".
func NewReviewRiderCommand(riderID kernel.UUID, decision string) (ReviewRiderCommand, error) {
	status, statusErr := rider.ParseApplicationStatus(decision)
	if statusErr == nil && !status.IsDecision() {
		statusErr = errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a review decision", status))
	}
	if err := errors.Join(riderID.Validate(), statusErr); err != nil {
		return ReviewRiderCommand{}, err
	}

	return ReviewRiderCommand{
		riderID:  riderID,
		decision: status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewRiderCommand) Validate() error {
	return c.guard.Validate(ErrReviewRiderCommandIsNotConstructed)
}

func (c ReviewRiderCommand) RiderID() kernel.UUID              { return c.riderID }
func (c ReviewRiderCommand) Decision() rider.ApplicationStatus { return c.decision }
