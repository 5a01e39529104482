package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BloodGroups is the closed set of accepted blood group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

const (
	VerdictUnderWeight = "UnderWeight"
	VerdictNormal      = "Normal"
	VerdictOverweight  = "Overweight"
	VerdictObese       = "Obese"
)

type PatientRecord struct {
	Name       string  `json:"name" validate:"required,min=2"`
	Age        int     `json:"age" validate:"required,gte=1,lte=120"`
	Mobile     string  `json:"mobile" validate:"required,mobile_number"`
	Email      string  `json:"email" validate:"required,email"`
	BloodGroup string  `json:"blood_group" validate:"required,blood_group"`
	Height     float64 `json:"height" validate:"required,gt=0"`
	Weight     float64 `json:"weight" validate:"required,gt=0"`
}

// BMI is weight(kg) / height(m)^2 rounded to 2 decimals. Derived, never stored
// separately from height and weight.
func (p *PatientRecord) BMI() float64 {
	return math.Round(p.Weight/(p.Height*p.Height)*100) / 100
}

// Verdict classifies the BMI into one of the four fixed bands.
func (p *PatientRecord) Verdict() string {
	bmi := p.BMI()
	switch {
	case bmi < 18.5:
		return VerdictUnderWeight
	case bmi < 25:
		return VerdictNormal
	case bmi < 30:
		return VerdictOverweight
	default:
		return VerdictObese
	}
}

// PatientSnapshot is the serialized form of a record with its derived fields.
type PatientSnapshot struct {
	Name       string  `json:"name" bson:"name"`
	Age        int     `json:"age" bson:"age"`
	Mobile     string  `json:"mobile" bson:"mobile"`
	Email      string  `json:"email" bson:"email"`
	BloodGroup string  `json:"blood_group" bson:"blood_group"`
	Height     float64 `json:"height" bson:"height"`
	Weight     float64 `json:"weight" bson:"weight"`
	BMI        float64 `json:"bmi" bson:"bmi"`
	Verdict    string  `json:"verdict" bson:"verdict"`
}

func (p *PatientRecord) Snapshot() PatientSnapshot {
	return PatientSnapshot{
		Name:       p.Name,
		Age:        p.Age,
		Mobile:     p.Mobile,
		Email:      p.Email,
		BloodGroup: p.BloodGroup,
		Height:     p.Height,
		Weight:     p.Weight,
		BMI:        p.BMI(),
		Verdict:    p.Verdict(),
	}
}

// StoredPatientEntry is one element of the persisted patients array.
type StoredPatientEntry struct {
	SessionID string          `json:"session_id" bson:"session_id"`
	Timestamp string          `json:"timestamp" bson:"timestamp"`
	Patient   PatientSnapshot `json:"patient" bson:"patient"`
}

// PatientFromData builds a record from accumulated wizard answers. Values may
// arrive as strings or JSON numbers depending on the client.
func PatientFromData(data map[string]interface{}) (*PatientRecord, error) {
	record := &PatientRecord{}

	if v, ok := data[FieldName]; ok {
		record.Name, _ = v.(string)
	}
	if v, ok := data[FieldAge]; ok {
		age, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("age: %w", err)
		}
		record.Age = age
	}
	if v, ok := data[FieldMobile]; ok {
		record.Mobile, _ = v.(string)
	}
	if v, ok := data[FieldEmail]; ok {
		record.Email, _ = v.(string)
	}
	if v, ok := data[FieldBloodGroup]; ok {
		record.BloodGroup, _ = v.(string)
	}
	if v, ok := data[FieldHeight]; ok {
		height, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("height: %w", err)
		}
		record.Height = height
	}
	if v, ok := data[FieldWeight]; ok {
		weight, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("weight: %w", err)
		}
		record.Weight = weight
	}

	return record, nil
}

func toInt(v interface{}) (int, error) {
	switch value := v.(type) {
	case int:
		return value, nil
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("%v is not an integer", value)
		}
		return int(value), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(value))
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}

func toFloat(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(value), 64)
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}
