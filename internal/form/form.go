// Package form maps route form bodies to typed structs and validates them
// before anything reaches the persistence layer. Validation is pure: a failed
// check produces ordered human-readable messages and nothing else.
package form

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Minimum field lengths, counted in runes.
const (
	MinTitleLength       = 2
	MinDescriptionLength = 10
	MinQuestionLength    = 5
	MinAnswerLength      = 5
)

// ProjectForm carries the editable fields of a portfolio project
// (create-project and the save action on the project page).
type ProjectForm struct {
	Title       string `validate:"min=2"`
	Description string `validate:"min=10"`
}

// QuestionForm carries a visitor question from the ask-question page.
// The HTML form field is named "title" for historical reasons.
type QuestionForm struct {
	Question string `validate:"min=5"`
}

// AnswerForm carries an admin answer (answer-question, edit-question,
// answer-message).
type AnswerForm struct {
	Answer string `validate:"min=5"`
}

var validate = validator.New()

// Validate runs the struct tags and returns one message per failed rule, in
// field declaration order. A nil result means the form is valid.
func Validate(form any) []string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid input"}
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageFor(fe))
	}
	return messages
}

func messageFor(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Title":
		return fmt.Sprintf("Title needs to be at least %d characters", MinTitleLength)
	case "Description":
		return fmt.Sprintf("Description needs to be at least %d characters", MinDescriptionLength)
	case "Question":
		return fmt.Sprintf("Your question needs to be at least %d characters", MinQuestionLength)
	case "Answer":
		return fmt.Sprintf("Your answer needs to be at least %d characters", MinAnswerLength)
	}
	return fe.StructField() + " is invalid"
}
