package domain

// FormState is the lifecycle state of an in-progress dispatch sheet.
type FormState string

const (
	FormEmpty        FormState = "empty"
	FormEditing      FormState = "editing"
	FormSubmitting   FormState = "submitting"
	FormSubmitted    FormState = "submitted"
	FormSubmitFailed FormState = "submit_failed"
)

// formTransitions defines the allowed state machine transitions.
var formTransitions = map[FormState][]FormState{
	FormEmpty:        {FormEditing, FormSubmitting},
	FormEditing:      {FormEditing, FormSubmitting},
	FormSubmitting:   {FormSubmitted, FormSubmitFailed},
	FormSubmitted:    {FormEditing, FormSubmitting},
	FormSubmitFailed: {FormEditing, FormSubmitting},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s FormState) CanTransitionTo(next FormState) bool {
	for _, allowed := range formTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
