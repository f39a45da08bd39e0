package engine

import (
	"fmt"
	"math"
)

const (
	DefaultShiftEvents = 20

	shiftOpensMinute  = 10 * 60
	shiftClosesMinute = 17 * 60

	// WorkEventMinutes is the clock cost of one work decision.
	WorkEventMinutes = 20

	startFocus = 50
	maxFocus   = 100

	productiveFocus = 65
	slackFocus      = 35
	burnoutStress   = 10
	calmStress      = 2
	focusAlertness  = 60
)

type WorkEventKind string

const (
	WorkFocusTask   WorkEventKind = "focus_task"
	WorkFeatureTask WorkEventKind = "feature_task"
	WorkIncident    WorkEventKind = "incident"
	WorkClientDemo  WorkEventKind = "client_demo"
)

var workEventKinds = []WorkEventKind{WorkFocusTask, WorkFeatureTask, WorkIncident, WorkClientDemo}

// WorkEvent is one decision point of a shift. Choices always has two entries.
type WorkEvent struct {
	Kind    WorkEventKind
	Prompt  string
	Choices [2]string
}

var workEvents = map[WorkEventKind]WorkEvent{
	WorkFocusTask:   {Kind: WorkFocusTask, Prompt: "A task from the boss: can you make the deadline?", Choices: [2]string{"Concentrate", "Procrastinate"}},
	WorkFeatureTask: {Kind: WorkFeatureTask, Prompt: "New feature: design and build a module.", Choices: [2]string{"Design", "Implement"}},
	WorkIncident:    {Kind: WorkIncident, Prompt: "Production incident: the service is returning 500s.", Choices: [2]string{"Roll back", "Hotfix"}},
	WorkClientDemo:  {Kind: WorkClientDemo, Prompt: "Client meeting: run the demo.", Choices: [2]string{"Prepare", "Present"}},
}

// ShiftSummary is the effect of a finished shift on the character.
type ShiftSummary struct {
	Focus          int
	Stress         int
	Productive     bool
	HealthDelta    int
	AlertnessDelta int
	QuestsAdvanced int
}

// WorkShift is an in-progress shift at the office.
type WorkShift struct {
	c *Character

	EventsLeft int
	Focus      int
	Stress     int
	Current    WorkEvent
	Summary    *ShiftSummary

	advanced int
}

// StartShift moves the character to work and opens a shift of n events.
// Arriving before 10:00 waits for the office to open; from 17:00 on the
// office is closed.
func (c *Character) StartShift(events int) (*WorkShift, error) {
	const action = "work"
	if !c.Employed {
		return nil, c.refuse(preconditionNotMet(action, "You have no job. Go find one."))
	}
	if c.WorkedToday {
		return nil, c.refuse(preconditionNotMet(action, "You already worked a shift today."))
	}
	if events <= 0 {
		events = DefaultShiftEvents
	}
	if c.TimeMinutes < shiftOpensMinute {
		c.AdvanceTime(shiftOpensMinute - c.TimeMinutes)
		c.logEvent("Came in early and waited until 10:00.")
	}
	if c.TimeMinutes >= shiftClosesMinute {
		return nil, c.refuse(preconditionNotMet(action, "The shift is already over. Come back tomorrow."))
	}

	c.Location = LocationWork
	c.logEvent("Started a work shift.")
	s := &WorkShift{c: c, EventsLeft: events, Focus: startFocus}
	s.next()
	c.logger().Debug("shift started", "events", events, "clock", c.Clock())
	return s, nil
}

// Done reports whether the shift has been summarised.
func (s *WorkShift) Done() bool { return s.Summary != nil }

func (s *WorkShift) next() {
	if s.EventsLeft <= 0 {
		s.finish()
		return
	}
	kind := workEventKinds[s.c.random().IntN(len(workEventKinds))]
	s.Current = workEvents[kind]
}

// Choose resolves the current event with choice 0 or 1 and returns the
// outcome line. The shift ends after the last event.
func (s *WorkShift) Choose(choice int) (string, error) {
	if s.Done() {
		return "", s.c.refuse(invalidAction("work", "The shift is already over."))
	}
	if choice != 0 && choice != 1 {
		return "", s.c.refuse(invalidAction("work", fmt.Sprintf("Pick choice 1 or 2, not %d.", choice+1)))
	}

	c := s.c
	r := c.random()
	var msg string
	switch s.Current.Kind {
	case WorkFocusTask:
		if choice == 0 {
			p := 0.45 + 0.03*float64(aboveBase(c.Intelligence))
			if c.Alertness >= focusAlertness {
				p += 0.05
			}
			if r.Float64() < math.Min(0.9, p) {
				s.addFocus(8)
				s.advance(QuestWorkReports, false)
				msg = "Focused on the task: focus +8."
			} else {
				s.addFocus(3)
				msg = "Tried hard but kept getting distracted: focus +3."
			}
			s.addStress(1)
		} else {
			s.addFocus(-5)
			s.addStress(-2)
			msg = "Procrastinated at work: focus −5, stress −2."
		}

	case WorkFeatureTask:
		if choice == 0 {
			if r.Float64() < 0.55+0.03*float64(aboveBase(c.Intelligence)) {
				s.addFocus(7)
				s.advance(QuestWorkFeatures, true)
				msg = "Designed the module architecture. Focus +7."
			} else {
				s.addFocus(3)
				msg = "The idea is still raw. Focus +3."
			}
			s.addStress(2)
		} else {
			p := 0.5 + 0.04*float64(aboveBase(c.Intelligence)) + 0.03*float64(aboveBase(c.Agility))
			if r.Float64() < p {
				s.addFocus(9)
				s.advance(QuestWorkFeatures, true)
				msg = "Implemented the module without bugs. Focus +9."
			} else {
				s.addStress(3)
				msg = "Missed the deadline, it needs a refactor. Stress +3."
			}
		}

	case WorkIncident:
		if choice == 0 {
			s.addStress(-1)
			msg = "Rolled back: stable, but the tasks slipped."
		} else if r.Float64() < 0.52+0.03*float64(aboveBase(c.Intelligence)) {
			s.advance(QuestWorkIncidents, true)
			s.addFocus(5)
			msg = "The hotfix went through."
		} else {
			s.addStress(4)
			msg = "The hotfix failed. Stress +4."
		}

	case WorkClientDemo:
		if choice == 0 {
			s.addFocus(4)
			msg = "Prepared for the demo. Focus +4."
		} else if r.Float64() < 0.5+0.05*float64(aboveBase(c.Charisma)) {
			s.advance(QuestWorkPresentations, true)
			s.addStress(-1)
			msg = "The demo went well, the client is happy."
		} else {
			s.addStress(2)
			msg = "A mediocre demo. The pitch needs work. Stress +2."
		}
	}

	c.logEvent(msg)
	c.AdvanceTime(WorkEventMinutes)
	s.EventsLeft--
	s.next()
	return msg, nil
}

func (s *WorkShift) addFocus(d int) { s.Focus = clampInt(s.Focus+d, 0, maxFocus) }

func (s *WorkShift) addStress(d int) { s.Stress = max(0, s.Stress+d) }

func (s *WorkShift) advance(id QuestID, reveal bool) {
	if reveal {
		if err := s.c.RevealQuest(id); err != nil {
			s.c.logger().Warn("work quest", "quest", id.Key(), "err", err)
		}
	}
	if err := s.c.IncrementQuest(id, 1); err != nil {
		s.c.logger().Warn("work quest", "quest", id.Key(), "err", err)
		return
	}
	s.advanced++
}

func (s *WorkShift) finish() {
	c := s.c
	sum := &ShiftSummary{Focus: s.Focus, Stress: s.Stress, QuestsAdvanced: s.advanced}

	switch {
	case s.Focus >= productiveFocus:
		sum.HealthDelta += 5
		sum.Productive = true
		c.ProductiveToday = true
		c.logEvent("A productive day at work: health +5.")
	case s.Focus <= slackFocus:
		sum.AlertnessDelta -= 6
		c.logEvent("Lost focus at work: alertness −6.")
	}
	switch {
	case s.Stress >= burnoutStress:
		sum.AlertnessDelta -= 8
		c.logEvent("Stress at work: alertness −8.")
	case s.Stress <= calmStress:
		sum.HealthDelta += 2
		c.logEvent("A calm shift: health +2.")
	}
	c.addHealth(sum.HealthDelta)
	c.addAlertness(sum.AlertnessDelta)
	c.WorkedToday = true
	s.Summary = sum
	c.logger().Debug("shift finished", "focus", s.Focus, "stress", s.Stress, "productive", sum.Productive)
}
