package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/utils"
)

type State string

const (
	StateIdle             State = "idle"
	StateFieldsIncomplete State = "fields_incomplete"
	StateChecking         State = "checking"
	StateAvailable        State = "available"
	StateConflicted       State = "conflicted"
	StateCheckFailed      State = "check_failed"
	StateSubmitting       State = "submitting"
	StateSuccess          State = "success"
	StateSubmitFailed     State = "submit_failed"
)

type NoticeKind string

const (
	NoticeConflict NoticeKind = "conflict"
	NoticeError    NoticeKind = "error"
	NoticeSuccess  NoticeKind = "success"
)

const DefaultDebounce = 500 * time.Millisecond

var (
	ErrDraftIncomplete = errors.New("court, date, start and end time are required")
	ErrInvalidRange    = errors.New("end time must be after start time")
	ErrOutsideHours    = errors.New("selected time is outside the venue's opening hours")
	ErrHasConflicts    = errors.New("selected time overlaps existing bookings")
	ErrNotChecked      = errors.New("availability not confirmed yet")
	ErrSubmitting      = errors.New("submission already in progress")
	ErrFlowClosed      = errors.New("booking flow closed")
)

// Flow drives the court-booking drawer: it owns the ephemeral draft, debounces
// availability checks as fields change, discards stale check results, and
// submits the booking+payment pair as a compensable two-step saga.
//
// All methods are safe for concurrent use; the debounce timer fires on its own
// goroutine.
type Flow struct {
	api   *Service
	venue *structs.Venue

	// Debounce is the quiet period after the last field change before the
	// availability check fires. Change it before the first setter call.
	Debounce time.Duration

	// Notify receives user-facing notices (one per conflicting range, check
	// failures, submission results). Set it before the first setter call;
	// it is invoked without the flow lock held.
	Notify func(kind NoticeKind, text string)

	now func() time.Time

	mu         sync.Mutex
	closed     bool
	timer      *time.Timer
	gen        uint64 // bumped on every draft mutation; stale check results are discarded
	courtID    string
	date       time.Time
	start, end string // HH:mm
	state      State
	conflicts  []structs.AvailabilityConflict
	submitting bool
}

func NewFlow(api *Service, venue *structs.Venue) *Flow {
	return &Flow{
		api:      api,
		venue:    venue,
		Debounce: DefaultDebounce,
		now:      time.Now,
		state:    StateIdle,
	}
}

// ---------- Draft setters ----------

func (f *Flow) SelectCourt(courtID string) {
	f.mutate(func() { f.courtID = courtID })
}

func (f *Flow) SelectDate(date time.Time) {
	f.mutate(func() { f.date = date })
}

func (f *Flow) SetStartTime(hhmm string) {
	f.mutate(func() { f.start = hhmm })
}

func (f *Flow) SetEndTime(hhmm string) {
	f.mutate(func() { f.end = hhmm })
}

// mutate applies one field change and re-arms the debounce timer. The
// generation bump invalidates any check already in flight, so a slow older
// response can never overwrite a newer one.
func (f *Flow) mutate(apply func()) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	apply()
	f.gen++
	f.conflicts = nil
	if f.draftComplete() {
		f.state = StateChecking
	} else {
		f.state = StateFieldsIncomplete
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.Debounce, f.runCheck)
	f.mu.Unlock()
}

func (f *Flow) draftComplete() bool {
	return f.courtID != "" && !f.date.IsZero() && f.start != "" && f.end != ""
}

// runCheck fires after the debounce window. It no-ops unless the draft is
// complete, then issues the availability request keyed by the draft as of now.
func (f *Flow) runCheck() {
	f.mu.Lock()
	if f.closed || !f.draftComplete() {
		f.mu.Unlock()
		return
	}
	gen := f.gen
	courtID := f.courtID
	date := f.date.Format("2006-01-02")
	start, end := f.start, f.end
	f.state = StateChecking
	f.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	avail, err := f.api.CheckAvailability(ctx, courtID, date, start, end)

	f.mu.Lock()
	if f.closed || gen != f.gen {
		// The draft changed while this request was in flight; last write wins.
		f.mu.Unlock()
		return
	}
	var notices []string
	if err != nil {
		// Check failure means "unknown", not "available": conflicts are
		// cleared but submission stays disabled until a clean check.
		f.conflicts = nil
		f.state = StateCheckFailed
		notices = append(notices, "Could not verify availability: "+err.Error())
	} else if !avail.Available {
		f.conflicts = avail.Conflicts
		f.state = StateConflicted
		for _, c := range avail.Conflicts {
			notices = append(notices, fmt.Sprintf("Booked %s (%s)", utils.FormatClockRange(c.StartTime, c.EndTime), c.Status))
		}
	} else {
		f.conflicts = nil
		f.state = StateAvailable
	}
	notify := f.Notify
	kind := NoticeError
	if f.state == StateConflicted {
		kind = NoticeConflict
	}
	f.mu.Unlock()

	if notify != nil {
		for _, n := range notices {
			notify(kind, n)
		}
	}
}

// ---------- Derived values ----------

// Duration returns the selected range in hours, or 0 when the range is
// invalid. 0 is the sentinel that keeps submission disabled.
func (f *Flow) Duration() float64 {
	f.mu.Lock()
	start, end := f.start, f.end
	f.mu.Unlock()
	return rangeHours(start, end)
}

func rangeHours(start, end string) float64 {
	s, err := utils.ClockMinutes(start)
	if err != nil {
		return 0
	}
	e, err := utils.ClockMinutes(end)
	if err != nil {
		return 0
	}
	if e <= s {
		return 0
	}
	return float64(e-s) / 60
}

// Price is duration times the selected court's hourly rate; 0 when either
// factor is unknown.
func (f *Flow) Price() float64 {
	f.mu.Lock()
	court := f.selectedCourt()
	start, end := f.start, f.end
	f.mu.Unlock()
	if court == nil {
		return 0
	}
	return rangeHours(start, end) * court.PricePerHour
}

// caller must hold f.mu
func (f *Flow) selectedCourt() *structs.Court {
	if f.venue == nil {
		return nil
	}
	for i := range f.venue.Courts {
		if f.venue.Courts[i].ID == f.courtID {
			return &f.venue.Courts[i]
		}
	}
	return nil
}

// ValidateOpeningHours checks the draft against the venue's hours for the
// selected weekday. It runs synchronously and independently of the async
// availability check; the two guard against different failures (out-of-hours
// vs double-booking).
func (f *Flow) ValidateOpeningHours() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.withinOpeningHours()
}

// caller must hold f.mu
func (f *Flow) withinOpeningHours() bool {
	if f.venue == nil || f.date.IsZero() {
		return false
	}
	weekday := f.date.Weekday().String()
	for _, r := range f.venue.OpenRanges {
		if !strings.EqualFold(r.Day, weekday) {
			continue
		}
		if !r.IsOpen {
			return false
		}
		open, err := utils.ClockMinutes(utils.ExtractClock(r.OpenTime))
		if err != nil {
			return false
		}
		closeM, err := utils.ClockMinutes(utils.ExtractClock(r.CloseTime))
		if err != nil {
			return false
		}
		start, err := utils.ClockMinutes(f.start)
		if err != nil {
			return false
		}
		end, err := utils.ClockMinutes(f.end)
		if err != nil {
			return false
		}
		return start >= open && end <= closeM
	}
	// No entry for that weekday means the venue is closed.
	return false
}

// State reports the flow's current phase.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Conflicts returns the latest conflict list from the backend.
func (f *Flow) Conflicts() []structs.AvailabilityConflict {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]structs.AvailabilityConflict, len(f.conflicts))
	copy(out, f.conflicts)
	return out
}

// CanSubmit reports whether every submission precondition currently holds.
func (f *Flow) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr() == nil
}

// caller must hold f.mu
func (f *Flow) submitErr() error {
	switch {
	case f.closed:
		return ErrFlowClosed
	case f.submitting:
		return ErrSubmitting
	case !f.draftComplete():
		return ErrDraftIncomplete
	case rangeHours(f.start, f.end) <= 0:
		return ErrInvalidRange
	case !f.withinOpeningHours():
		return ErrOutsideHours
	case len(f.conflicts) > 0:
		return ErrHasConflicts
	case f.state != StateAvailable:
		return ErrNotChecked
	}
	return nil
}

// ---------- Submission ----------

// Submit creates the booking, then its payment record. The two calls are not
// one backend transaction, so a payment failure triggers a compensating
// cancellation of the booking just created. Success resets the draft.
func (f *Flow) Submit(ctx context.Context) (*structs.Booking, error) {
	f.mu.Lock()
	if err := f.submitErr(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.submitting = true
	f.state = StateSubmitting
	courtID := f.courtID
	date := f.date.Format("2006-01-02")
	start, end := f.start, f.end
	court := f.selectedCourt()
	f.mu.Unlock()

	amount := 0.0
	if court != nil {
		amount = rangeHours(start, end) * court.PricePerHour
	}

	b, err := f.api.Create(ctx, courtID, date, start, end)
	if err != nil {
		return nil, f.failSubmit(err)
	}

	_, err = f.api.CreatePayment(ctx, b.ID, amount, PaymentMethodCash, transactionID(f.now()))
	if err != nil {
		// Compensate: cancel the booking we just created so no unpaid
		// booking is left behind.
		if cerr := f.api.Cancel(ctx, b.ID); cerr != nil {
			log.Printf("booking %s: payment failed and cancellation failed too: %v", b.ID, cerr)
			return nil, f.failSubmit(fmt.Errorf("payment failed (%w); booking %s could not be cancelled", err, b.ID))
		}
		return nil, f.failSubmit(fmt.Errorf("payment failed, booking cancelled: %w", err))
	}

	f.mu.Lock()
	f.submitting = false
	f.state = StateSuccess
	f.courtID = ""
	f.date = time.Time{}
	f.start, f.end = "", ""
	f.conflicts = nil
	f.gen++
	notify := f.Notify
	f.mu.Unlock()

	if notify != nil {
		notify(NoticeSuccess, "Booking confirmed for "+b.Date+" "+utils.FormatClockRange(b.StartTime, b.EndTime))
	}
	return b, nil
}

func (f *Flow) failSubmit(err error) error {
	f.mu.Lock()
	f.submitting = false
	f.state = StateSubmitFailed
	notify := f.Notify
	f.mu.Unlock()
	if notify != nil {
		notify(NoticeError, err.Error())
	}
	return err
}

// Close discards the draft, stops the debounce timer and invalidates any
// check still in flight. The flow cannot be reused afterwards.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
