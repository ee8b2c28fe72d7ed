package domain

// Question is a multiple-choice item with four options and one correct answer.
type Question struct {
	ID         string `json:"id"`
	Title      string `json:"questionTitle"`
	Option1    string `json:"option1"`
	Option2    string `json:"option2"`
	Option3    string `json:"option3"`
	Option4    string `json:"option4"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficultyLevel"`
	Category   string `json:"category"`
}

// QuestionWrapper is the answer-redacted projection of a Question shown to a
// participant. It carries no answer field, so serializing it cannot leak one.
type QuestionWrapper struct {
	ID      string `json:"id"`
	Title   string `json:"questionTitle"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
	Option4 string `json:"option4"`
}

// Wrap projects a Question into its participant-facing form.
func Wrap(q Question) QuestionWrapper {
	return QuestionWrapper{
		ID:      q.ID,
		Title:   q.Title,
		Option1: q.Option1,
		Option2: q.Option2,
		Option3: q.Option3,
		Option4: q.Option4,
	}
}

// Response is a participant's submitted answer for one question.
type Response struct {
	QuestionID string `json:"id"`
	Answer     string `json:"response"`
}

// Quiz is a titled, ordered reference-list of question IDs. The references
// are soft: a question may be removed after the quiz was assembled, and
// readers must tolerate the dangling ID.
type Quiz struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	QuestionIDs []string `json:"questionIds"`
}
