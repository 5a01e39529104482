package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientRecord_BMI(t *testing.T) {
	patient := &PatientRecord{Height: 1.75, Weight: 70}
	assert.Equal(t, 22.86, patient.BMI())

	patient = &PatientRecord{Height: 1.80, Weight: 100}
	assert.Equal(t, 30.86, patient.BMI())
}

func TestPatientRecord_Verdict(t *testing.T) {
	testCases := []struct {
		name    string
		height  float64
		weight  float64
		verdict string
	}{
		{"underweight below first band", 1.80, 55, VerdictUnderWeight},
		{"normal range", 1.75, 70, VerdictNormal},
		{"overweight range", 1.70, 80, VerdictOverweight},
		{"obese above last band", 1.60, 90, VerdictObese},
		{"boundary 18.5 is normal", 1.0, 18.5, VerdictNormal},
		{"boundary 25 is overweight", 1.0, 25, VerdictOverweight},
		{"boundary 30 is obese", 1.0, 30, VerdictObese},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			patient := &PatientRecord{Height: tc.height, Weight: tc.weight}
			assert.Equal(t, tc.verdict, patient.Verdict())
		})
	}
}

func TestPatientRecord_Snapshot(t *testing.T) {
	patient := &PatientRecord{
		Name:       "Jane Roe",
		Age:        34,
		Mobile:     "9876543210",
		Email:      "jane@example.com",
		BloodGroup: "O+",
		Height:     1.75,
		Weight:     70,
	}

	snapshot := patient.Snapshot()

	assert.Equal(t, "Jane Roe", snapshot.Name)
	assert.Equal(t, 22.86, snapshot.BMI)
	assert.Equal(t, VerdictNormal, snapshot.Verdict)
}

func TestPatientFromData(t *testing.T) {
	data := map[string]interface{}{
		FieldName:       "John Doe",
		FieldAge:        float64(42),
		FieldMobile:     "0123456789",
		FieldEmail:      "john@example.com",
		FieldBloodGroup: "AB-",
		FieldHeight:     "1.82",
		FieldWeight:     float64(75),
	}

	record, err := PatientFromData(data)

	assert.NoError(t, err)
	assert.Equal(t, 42, record.Age)
	assert.Equal(t, 1.82, record.Height)
	assert.Equal(t, 75.0, record.Weight)
}

func TestPatientFromData_RejectsFractionalAge(t *testing.T) {
	data := map[string]interface{}{FieldAge: 41.5}

	_, err := PatientFromData(data)

	assert.Error(t, err)
}
