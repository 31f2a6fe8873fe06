package domain

const (
	EventNameSessionStarted     = "session.started"
	EventNameAnswerSubmitted    = "answer.submitted"
	EventNameSessionCompleted   = "session.completed"
	EventNameLeaderboardUpdated = "leaderboard.updated"
)

type EventSessionStarted struct {
	Session Session
}

func (EventSessionStarted) Name() string { return EventNameSessionStarted }

type EventAnswerSubmitted struct {
	Session Session
	Answer  Answer
}

func (EventAnswerSubmitted) Name() string { return EventNameAnswerSubmitted }

// EventSessionCompleted is published once, when a session reaches its terminal state.
// Victory means every question of the quiz was answered correctly.
type EventSessionCompleted struct {
	Session        Session
	TotalQuestions int
	Victory        bool
}

func (EventSessionCompleted) Name() string { return EventNameSessionCompleted }

type EventLeaderboardUpdated struct {
	Leaderboard Leaderboard
}

func (EventLeaderboardUpdated) Name() string { return EventNameLeaderboardUpdated }
