package engine

import (
	"fmt"
	"strings"
)

type QuestID int

const (
	QuestMain QuestID = iota
	QuestWorkReports
	QuestBuyCoffeeMachine
	QuestWorkFeatures
	QuestWorkIncidents
	QuestWorkPresentations
	QuestMoneyCrunch

	questCount
)

// AllQuests lists quests in journal order.
var AllQuests = []QuestID{
	QuestMain,
	QuestWorkReports,
	QuestBuyCoffeeMachine,
	QuestWorkFeatures,
	QuestWorkIncidents,
	QuestWorkPresentations,
	QuestMoneyCrunch,
}

var questKeys = [questCount]string{
	QuestMain:              "main",
	QuestWorkReports:       "work_reports",
	QuestBuyCoffeeMachine:  "buy_coffeemachine",
	QuestWorkFeatures:      "work_features",
	QuestWorkIncidents:     "work_incidents",
	QuestWorkPresentations: "work_presentations",
	QuestMoneyCrunch:       "money_crunch",
}

func (q QuestID) IsValid() bool {
	return q >= QuestMain && q < questCount
}

// Key is the stable identifier used in saves.
func (q QuestID) Key() string {
	if !q.IsValid() {
		return fmt.Sprintf("quest_%d", int(q))
	}
	return questKeys[q]
}

func (q QuestID) String() string { return q.Key() }

// ParseQuestID resolves a save key back to its QuestID.
func ParseQuestID(key string) (QuestID, error) {
	k := strings.TrimSpace(strings.ToLower(key))
	for i, name := range questKeys {
		if name == k {
			return QuestID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQuest, key)
}

type QuestStatus string

const (
	QuestHidden     QuestStatus = "hidden"
	QuestInProgress QuestStatus = "in_progress"
	QuestCompleted  QuestStatus = "completed"
)

func (s QuestStatus) IsValid() bool {
	switch s {
	case QuestHidden, QuestInProgress, QuestCompleted:
		return true
	default:
		return false
	}
}

type QuestReward struct {
	XP     int
	Rubles int
}

type Quest struct {
	Title       string
	Description string
	Status      QuestStatus
	Progress    int
	Target      int
	Reward      QuestReward
}

// QuestBook is the fixed-shape quest table.
type QuestBook [questCount]Quest

func defaultQuests() QuestBook {
	b := QuestBook{
		QuestMain: {
			Title:       "Become an early bird",
			Description: "Keep a 90-day streak without bad habits",
			Target:      90,
			Reward:      QuestReward{XP: 300, Rubles: 2000},
		},
		QuestWorkReports: {
			Title:       "Office routine",
			Description: "Put together 3 reports",
			Target:      3,
			Reward:      QuestReward{XP: 80, Rubles: 600},
		},
		QuestBuyCoffeeMachine: {
			Title:       "Coffee at home",
			Description: "Buy a coffee machine",
			Target:      1,
			Reward:      QuestReward{XP: 40},
		},
		QuestWorkFeatures: {
			Title:       "New features",
			Description: "Ship 5 tasks",
			Target:      5,
			Reward:      QuestReward{XP: 150, Rubles: 800},
		},
		QuestWorkIncidents: {
			Title:       "On-call hero",
			Description: "Resolve 3 incidents",
			Target:      3,
			Reward:      QuestReward{XP: 150},
		},
		QuestWorkPresentations: {
			Title:       "The floor is yours",
			Description: "Run 2 client demos",
			Target:      2,
			Reward:      QuestReward{XP: 120, Rubles: 500},
		},
		QuestMoneyCrunch: {
			Title:       "Running out of money",
			Description: "The hero is in a jam and urgently needs cash",
			Target:      1,
			Reward:      QuestReward{XP: 50},
		},
	}
	for i := range b {
		b[i].Status = QuestHidden
	}
	return b
}

// Quest returns a copy of the quest entry.
func (c *Character) Quest(id QuestID) (Quest, error) {
	if !id.IsValid() {
		return Quest{}, fmt.Errorf("%w: %d", ErrUnknownQuest, int(id))
	}
	return c.Quests[id], nil
}

// RevealQuest moves a hidden quest to in-progress. Other states are left alone.
func (c *Character) RevealQuest(id QuestID) error {
	if !id.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownQuest, int(id))
	}
	q := &c.Quests[id]
	if q.Status == QuestHidden {
		q.Status = QuestInProgress
	}
	return nil
}

// IncrementQuest adds progress and completes the quest once the target is met.
// Hidden quests progress too.
func (c *Character) IncrementQuest(id QuestID, amount int) error {
	if !id.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownQuest, int(id))
	}
	if amount < 0 {
		return fmt.Errorf("quest %s: negative progress %d", id, amount)
	}
	q := &c.Quests[id]
	if q.Status == QuestCompleted {
		return nil
	}
	q.Progress += amount
	if q.Target > 0 && q.Progress >= q.Target {
		return c.CompleteQuest(id)
	}
	return nil
}

// CompleteQuest marks the quest done and pays its reward exactly once.
func (c *Character) CompleteQuest(id QuestID) error {
	if !id.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownQuest, int(id))
	}
	q := &c.Quests[id]
	if q.Status == QuestCompleted {
		return nil
	}
	q.Status = QuestCompleted
	if q.Reward.Rubles != 0 {
		c.Rubles += q.Reward.Rubles
	}
	if q.Reward.XP != 0 {
		c.GainXP(q.Reward.XP)
	}
	c.logEvent(fmt.Sprintf("Quest complete: %s. Reward: %d ₽, %d XP.", q.Title, q.Reward.Rubles, q.Reward.XP))
	return nil
}

// VisibleQuests returns quests that are not hidden, in journal order.
func (c *Character) VisibleQuests() []QuestID {
	var out []QuestID
	for _, id := range AllQuests {
		if c.Quests[id].Status != QuestHidden {
			out = append(out, id)
		}
	}
	return out
}
