package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/meetmesh/core"
)

// Component weights. Availability dominates, day-fit and buffer pressure
// refine the ranking among feasible slots.
const (
	weightAvailability = 0.50
	weightCentrality   = 0.30
	weightBuffer       = 0.20

	// Within the availability component, required attendees outweigh optional
	// ones.
	weightRequired = 0.70
	weightOptional = 0.30
)

// scoreCandidates walks the business-hours days covered by the window and
// scores every candidate slot at granularity boundaries. Free/busy lookups go
// through the store; lookup failures surface as ErrEngineUnavailable.
func (e *Engine) scoreCandidates(
	ctx context.Context,
	req core.MeetingRequest,
	window core.TimeWindow,
	duration time.Duration,
) ([]core.Proposal, error) {
	loc := e.pol.Location()
	dayStart := e.pol.DayStart()
	dayEnd := e.pol.DayEnd()

	var proposals []core.Proposal

	first := window.Start.In(loc)
	day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)

	for i := 0; i < e.opts.MaxDays && day.Before(window.End); i++ {
		dayOpen := clockOn(day, dayStart, loc)
		dayClose := clockOn(day, dayEnd, loc)

		from := dayOpen
		if window.Start.After(from) {
			from = roundUp(window.Start, e.opts.Granularity)
		}
		until := dayClose
		if window.End.Before(until) {
			until = window.End
		}

		for t := from; !t.Add(duration).After(until); t = t.Add(e.opts.Granularity) {
			slot := core.TimeWindow{Start: t, End: t.Add(duration)}

			p, feasible, err := e.scoreSlot(ctx, req, slot, dayOpen, dayClose)
			if err != nil {
				return nil, err
			}
			if feasible {
				proposals = append(proposals, p)
			}
		}

		day = day.AddDate(0, 0, 1)
	}

	return proposals, nil
}

// scoreSlot evaluates one candidate. It reports feasible=false for hard
// exclusions: a required attendee busy-overlapping the slot, or a required
// attendee already at the per-day meeting limit.
func (e *Engine) scoreSlot(
	ctx context.Context,
	req core.MeetingRequest,
	slot core.TimeWindow,
	dayOpen, dayClose time.Time,
) (core.Proposal, bool, error) {
	buffer := e.pol.MinBuffer()

	// Probe wide enough to see busy blocks adjacent within the buffer.
	probe := core.TimeWindow{Start: slot.Start.Add(-buffer), End: slot.End.Add(buffer)}

	var (
		optionalTotal, optionalFree int
		violationSum                float64
		attendees                   = len(req.Attendees)
	)

	for _, a := range req.Attendees {
		busy, err := e.store.Busy(ctx, a.Email, probe)
		if err != nil {
			return core.Proposal{}, false, fmt.Errorf("calendar engine: free/busy lookup for %s: %w: %w", a.Email, core.ErrEngineUnavailable, err)
		}

		overlapping := false
		worst := 0.0
		for _, b := range busy {
			if b.Overlaps(slot) {
				overlapping = true
				continue
			}
			if v := bufferViolation(slot, b, buffer); v > worst {
				worst = v
			}
		}

		if overlapping {
			if a.Required {
				return core.Proposal{}, false, nil
			}
			optionalTotal++
			continue
		}

		if a.Required {
			over, err := e.atDailyLimit(ctx, a.Email, slot.Start)
			if err != nil {
				return core.Proposal{}, false, err
			}
			if over {
				return core.Proposal{}, false, nil
			}
		} else {
			optionalTotal++
			optionalFree++
		}

		violationSum += worst
	}

	optionalFrac := 1.0
	if optionalTotal > 0 {
		optionalFrac = float64(optionalFree) / float64(optionalTotal)
	}
	availability := weightRequired + weightOptional*optionalFrac

	dayFit := centrality(slot, dayOpen, dayClose)

	bufferScore := 1.0
	if attendees > 0 {
		bufferScore = 1.0 - violationSum/float64(attendees)
	}

	score := 100 * (weightAvailability*availability + weightCentrality*dayFit + weightBuffer*bufferScore)
	score = clamp(score, 0, 100)

	return core.Proposal{
		Slot:   slot,
		Score:  score,
		Reason: fmt.Sprintf("availability %.2f, day fit %.2f, buffer %.2f", availability, dayFit, bufferScore),
	}, true, nil
}

// atDailyLimit reports whether the attendee already has MaxMeetingsPerDay busy
// blocks on the slot's local day.
func (e *Engine) atDailyLimit(ctx context.Context, email string, at time.Time) (bool, error) {
	loc := e.pol.Location()
	local := at.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	day := core.TimeWindow{Start: midnight, End: midnight.AddDate(0, 0, 1)}

	busy, err := e.store.Busy(ctx, email, day)
	if err != nil {
		return false, fmt.Errorf("calendar engine: free/busy lookup for %s: %w: %w", email, core.ErrEngineUnavailable, err)
	}
	return len(busy) >= e.pol.MaxMeetingsPerDay, nil
}

// bufferViolation measures how badly a non-overlapping busy block crowds the
// slot: 0 when the gap meets the buffer requirement, approaching 1 as the gap
// vanishes.
func bufferViolation(slot, busy core.TimeWindow, buffer time.Duration) float64 {
	if buffer <= 0 {
		return 0
	}
	var gap time.Duration
	switch {
	case !busy.End.After(slot.Start):
		gap = slot.Start.Sub(busy.End)
	case !busy.Start.Before(slot.End):
		gap = busy.Start.Sub(slot.End)
	default:
		return 0
	}
	if gap >= buffer {
		return 0
	}
	return float64(buffer-gap) / float64(buffer)
}

// centrality favors slots near the middle of the business-hours window: 1 at
// dead center, falling linearly to 0 at the edges.
func centrality(slot core.TimeWindow, dayOpen, dayClose time.Time) float64 {
	span := dayClose.Sub(dayOpen)
	if span <= 0 {
		return 0
	}
	mid := dayOpen.Add(span / 2)
	slotMid := slot.Start.Add(slot.Duration() / 2)

	offset := slotMid.Sub(mid)
	if offset < 0 {
		offset = -offset
	}
	return clamp(1-float64(offset)/float64(span/2), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clockOn places an offset-from-midnight on the given local day, staying
// wall-clock correct across DST transitions.
func clockOn(day time.Time, offset time.Duration, loc *time.Location) time.Time {
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
}
