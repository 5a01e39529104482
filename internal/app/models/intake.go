package models

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	FieldName       = "name"
	FieldAge        = "age"
	FieldMobile     = "mobile"
	FieldEmail      = "email"
	FieldBloodGroup = "blood_group"
	FieldHeight     = "height"
	FieldWeight     = "weight"
)

const (
	InputTypeText   = "text"
	InputTypeNumber = "number"
	InputTypeSelect = "select"
)

// IntakeStep is a tagged enumeration of the wizard steps. StepComplete marks
// the terminal state once all seven answers are collected.
type IntakeStep int

const (
	StepName IntakeStep = iota + 1
	StepAge
	StepMobile
	StepEmail
	StepBloodGroup
	StepHeight
	StepWeight
	StepComplete
)

const TotalSteps = 7

func (s IntakeStep) Valid() bool {
	return s >= StepName && s <= StepComplete
}

func (s IntakeStep) Completed() bool {
	return s > IntakeStep(TotalSteps)
}

func (s IntakeStep) Next() IntakeStep {
	if s.Completed() {
		return StepComplete
	}
	return s + 1
}

// Prev decrements the step, floored at the first question.
func (s IntakeStep) Prev() IntakeStep {
	if s <= StepName {
		return StepName
	}
	return s - 1
}

func (s IntakeStep) Field() string {
	switch s {
	case StepName:
		return FieldName
	case StepAge:
		return FieldAge
	case StepMobile:
		return FieldMobile
	case StepEmail:
		return FieldEmail
	case StepBloodGroup:
		return FieldBloodGroup
	case StepHeight:
		return FieldHeight
	case StepWeight:
		return FieldWeight
	default:
		return ""
	}
}

func (s IntakeStep) Question() string {
	switch s {
	case StepName:
		return "What is your full name?"
	case StepAge:
		return "What is your age?"
	case StepMobile:
		return "What is your mobile number? (10 digits)"
	case StepEmail:
		return "What is your email address?"
	case StepBloodGroup:
		return "What is your blood group?"
	case StepHeight:
		return "What is your height in meters? (e.g., 1.75)"
	case StepWeight:
		return "What is your weight in kg?"
	default:
		return ""
	}
}

func (s IntakeStep) InputType() string {
	switch s {
	case StepAge, StepHeight, StepWeight:
		return InputTypeNumber
	case StepBloodGroup:
		return InputTypeSelect
	default:
		return InputTypeText
	}
}

// Options returns the select options for the step, nil for free-form inputs.
func (s IntakeStep) Options() []string {
	if s == StepBloodGroup {
		return BloodGroups
	}
	return nil
}

// StepFields lists the answer fields in question order.
func StepFields() []string {
	fields := make([]string, 0, TotalSteps)
	for step := StepName; step <= StepWeight; step++ {
		fields = append(fields, step.Field())
	}
	return fields
}

var mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

// ParseAnswer validates a raw answer for the step and returns its normalized
// value. The reason string is human readable and safe to surface verbatim.
func (s IntakeStep) ParseAnswer(raw interface{}) (interface{}, error) {
	switch s {
	case StepName:
		name, ok := raw.(string)
		if !ok || len(strings.TrimSpace(name)) < 2 {
			return nil, fmt.Errorf("must be at least 2 characters")
		}
		return strings.TrimSpace(name), nil
	case StepAge:
		age, err := toInt(raw)
		if err != nil || age < 1 || age > 120 {
			return nil, fmt.Errorf("must be an integer between 1 and 120")
		}
		return age, nil
	case StepMobile:
		mobile, ok := raw.(string)
		if !ok || !mobileRegex.MatchString(mobile) {
			return nil, fmt.Errorf("must be exactly 10 digits")
		}
		return mobile, nil
	case StepEmail:
		email, ok := raw.(string)
		if !ok || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
			return nil, fmt.Errorf("must be a valid email address")
		}
		return email, nil
	case StepBloodGroup:
		group, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("must be one of [%s]", strings.Join(BloodGroups, ", "))
		}
		for _, valid := range BloodGroups {
			if group == valid {
				return group, nil
			}
		}
		return nil, fmt.Errorf("must be one of [%s]", strings.Join(BloodGroups, ", "))
	case StepHeight:
		height, err := toFloat(raw)
		if err != nil || height <= 0 {
			return nil, fmt.Errorf("must be a number greater than 0")
		}
		return height, nil
	case StepWeight:
		weight, err := toFloat(raw)
		if err != nil || weight <= 0 {
			return nil, fmt.Errorf("must be a number greater than 0")
		}
		return weight, nil
	default:
		return nil, fmt.Errorf("no answer expected for step %d", s)
	}
}

// IntakeSession holds the wizard state for one registration. It lives only in
// the configured session store.
type IntakeSession struct {
	SessionID string                 `json:"session_id"`
	Step      IntakeStep             `json:"step"`
	Data      map[string]interface{} `json:"data"`
}

func NewIntakeSession(sessionID string) *IntakeSession {
	return &IntakeSession{
		SessionID: sessionID,
		Step:      StepName,
		Data:      make(map[string]interface{}),
	}
}

func (s *IntakeSession) Completed() bool {
	return s.Step.Completed()
}
