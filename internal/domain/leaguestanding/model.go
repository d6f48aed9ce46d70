package leaguestanding

// Row is one line of the league table. Rows are rebuilt from fixtures on every
// query and never stored.
type Row struct {
	TeamID         string
	Rank           int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// FormLength is how many recent results the Form column keeps.
const FormLength = 5

func (r *Row) record(goalsFor, goalsAgainst, points int, outcome byte) {
	r.Played++
	r.GoalsFor += goalsFor
	r.GoalsAgainst += goalsAgainst
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
	r.Points += points
	switch outcome {
	case 'W':
		r.Won++
	case 'D':
		r.Drawn++
	case 'L':
		r.Lost++
	}

	form := r.Form + string(outcome)
	if len(form) > FormLength {
		form = form[len(form)-FormLength:]
	}
	r.Form = form
}
