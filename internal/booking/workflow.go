package booking

import (
	"errors"
	"sync"
)

var (
	ErrNoActiveBooking = errors.New("no booking in progress")
	ErrAtFinalStep     = errors.New("already at the payment step")
	ErrAtFirstStep     = errors.New("already at the first step")
	ErrNotAtPayStep    = errors.New("shipment can only be submitted from the payment step")
)

// Workflow is the linear 5-step booking state machine. The demo is
// single-operator, so there is at most one open draft at a time; the
// mutex only guards against concurrent HTTP requests.
type Workflow struct {
	mu    sync.Mutex
	open  bool
	step  Step
	draft Draft
}

func NewWorkflow() *Workflow {
	return &Workflow{}
}

// Open starts a fresh booking, discarding any previous draft.
func (w *Workflow) Open() (Step, Draft) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.open = true
	w.step = StepParties
	w.draft = emptyDraft()
	return w.step, w.draft
}

// Cancel discards the draft with no side effects.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return ErrNoActiveBooking
	}
	w.reset()
	return nil
}

// Current returns the step and a snapshot of the draft.
func (w *Workflow) Current() (Step, Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return 0, Draft{}, ErrNoActiveBooking
	}
	return w.step, w.draft, nil
}

// Update patches the draft in place at any step.
func (w *Workflow) Update(req UpdateDraftRequest) (Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return Draft{}, ErrNoActiveBooking
	}
	req.apply(&w.draft)
	return w.draft, nil
}

// Next advances exactly one step. Moving past the payment step is
// rejected; submission happens through Ship only.
func (w *Workflow) Next() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return 0, ErrNoActiveBooking
	}
	if w.step == StepPay {
		return w.step, ErrAtFinalStep
	}
	w.step++
	return w.step, nil
}

// Back moves exactly one step towards the start.
func (w *Workflow) Back() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return 0, ErrNoActiveBooking
	}
	if w.step == StepParties {
		return w.step, ErrAtFirstStep
	}
	w.step--
	return w.step, nil
}

// DraftAtPay returns the draft for submission. It fails unless the
// workflow is open and sitting at the payment step.
func (w *Workflow) DraftAtPay() (Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return Draft{}, ErrNoActiveBooking
	}
	if w.step != StepPay {
		return Draft{}, ErrNotAtPayStep
	}
	return w.draft, nil
}

// Finish closes the workflow after a successful submission.
func (w *Workflow) Finish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// reset clears all transient state. Caller must hold mu.
func (w *Workflow) reset() {
	w.open = false
	w.step = 0
	w.draft = Draft{}
}
