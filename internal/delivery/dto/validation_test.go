package dto

import (
	"encoding/json"
	"fmt"
	"testing"

	"hospital-management-api/pkg/validator"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.CustomValidator {
	cv := validator.NewValidator()
	RegisterValidations(cv)
	return cv
}

func intPtr(v int) *int {
	return &v
}

func validPatient() CreatePatientRequest {
	return CreatePatientRequest{
		HospitalID:    "H-1",
		Name:          "Jane Doe",
		Age:           intPtr(45),
		Gender:        "Female",
		Condition:     "Flu",
		Department:    "General",
		AdmissionDate: "2024-01-10",
		Room:          "101",
	}
}

func validDoctor() CreateDoctorRequest {
	return CreateDoctorRequest{
		HospitalID: "H-1",
		Name:       "Dr. House",
		Specialty:  "Diagnostics",
		Department: "General",
		Experience: intPtr(20),
		Patients:   intPtr(4),
		Email:      "house@ppth.org",
		Phone:      "555-123-4567",
	}
}

func validAppointment() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		HospitalID:  "H-1",
		PatientName: "Jane Doe",
		PatientID:   "P-1",
		DoctorName:  "Dr. House",
		Department:  "General",
		Date:        "2024-02-01",
		Time:        "09:00",
		Type:        "Consultation",
		Room:        "12",
	}
}

func validDepartment() CreateDepartmentRequest {
	return CreateDepartmentRequest{
		HospitalID: "H-1",
		Name:       "Cardiology",
		Head:       "Dr. Heart",
		Doctors:    intPtr(3),
		Nurses:     intPtr(6),
		Beds:       intPtr(10),
		Patients:   intPtr(4),
	}
}

func TestHospitalIDPrefix(t *testing.T) {
	cv := newValidator()

	for _, id := range []string{"", "h-1", "X-1", "1", "HH-1", " H-1"} {
		t.Run(fmt.Sprintf("create %q", id), func(t *testing.T) {
			p := validPatient()
			p.HospitalID = id
			d := validDoctor()
			d.HospitalID = id
			dep := validDepartment()
			dep.HospitalID = id
			a := validAppointment()
			a.HospitalID = id

			for _, req := range []interface{}{&p, &d, &dep, &a} {
				err := cv.Validate(req)
				require.Error(t, err)
				assert.Contains(t, cv.FormatValidationErrors(err), "hospital_id")
			}
		})
	}

	for _, id := range []string{"h-1", "X-1"} {
		t.Run(fmt.Sprintf("update %q", id), func(t *testing.T) {
			payload := []byte(fmt.Sprintf(`{"hospital_id": %q}`, id))
			for _, req := range []interface{}{
				&UpdatePatientRequest{}, &UpdateDoctorRequest{}, &UpdateDepartmentRequest{}, &UpdateAppointmentRequest{},
			} {
				require.NoError(t, json.Unmarshal(payload, req))
				err := cv.Validate(req)
				require.Error(t, err)
				assert.Contains(t, cv.FormatValidationErrors(err), "hospital_id")
			}
		})
	}
}

func TestAppointmentPatientIDPrefix(t *testing.T) {
	cv := newValidator()

	a := validAppointment()
	assert.NoError(t, cv.Validate(&a))

	a.PatientID = "X-1"
	err := cv.Validate(&a)
	require.Error(t, err)
	assert.Equal(t, `patient_id must start with "P-"`, cv.FormatValidationErrors(err)["patient_id"])
}

func TestHospitalOccupancyBoundary(t *testing.T) {
	cv := newValidator()

	tests := []struct {
		beds, occupancy int
		wantErr         bool
	}{
		{beds: 10, occupancy: 9},
		{beds: 10, occupancy: 10},
		{beds: 10, occupancy: 11, wantErr: true},
		{beds: 0, occupancy: 0},
		{beds: 0, occupancy: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.occupancy, tt.beds), func(t *testing.T) {
			req := CreateHospitalRequest{Name: "General", Location: "North", Beds: intPtr(tt.beds), Occupancy: intPtr(tt.occupancy)}
			err := cv.Validate(&req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, cv.FormatValidationErrors(err), "occupancy")
		})
	}
}

func TestHospitalUpdateCrossCheckNeedsBothFields(t *testing.T) {
	cv := newValidator()

	var onlyOccupancy UpdateHospitalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"occupancy": 500}`), &onlyOccupancy))
	assert.NoError(t, cv.Validate(&onlyOccupancy))

	var both UpdateHospitalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"beds": 10, "occupancy": 11}`), &both))
	assert.Error(t, cv.Validate(&both))
}

func TestDepartmentPatientsBoundary(t *testing.T) {
	cv := newValidator()

	equal := validDepartment()
	equal.Patients = intPtr(10)
	assert.NoError(t, cv.Validate(&equal))

	over := validDepartment()
	over.Patients = intPtr(11)
	err := cv.Validate(&over)
	require.Error(t, err)
	assert.Equal(t, "patients (11) cannot exceed beds", cv.FormatValidationErrors(err)["patients"])

	var update UpdateDepartmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"beds": 2, "patients": 3}`), &update))
	assert.Error(t, cv.Validate(&update))
}

func TestPatientAgeBounds(t *testing.T) {
	cv := newValidator()

	for age, ok := range map[int]bool{0: false, 1: true, 149: true, 150: false, -3: false} {
		p := validPatient()
		p.Age = intPtr(age)
		if ok {
			assert.NoError(t, cv.Validate(&p), "age %d", age)
		} else {
			assert.Error(t, cv.Validate(&p), "age %d", age)
		}
	}
}

func TestDoctorExperienceBounds(t *testing.T) {
	cv := newValidator()

	for experience, ok := range map[int]bool{-1: false, 0: true, 60: true, 61: false} {
		d := validDoctor()
		d.Experience = intPtr(experience)
		if ok {
			assert.NoError(t, cv.Validate(&d), "experience %d", experience)
		} else {
			assert.Error(t, cv.Validate(&d), "experience %d", experience)
		}
	}
}

func TestDoctorPhoneDigits(t *testing.T) {
	cv := newValidator()

	tests := map[string]bool{
		"5551234567":       true,
		"(555) 123-4567":   true,
		"+1 555.123.456":   true,
		"555-123-456":      false,
		"phone: 12345":     false,
		"+44 20 7946 0958": true,
	}

	for phone, ok := range tests {
		d := validDoctor()
		d.Phone = phone
		d.Normalize()
		err := cv.Validate(&d)
		if ok {
			assert.NoError(t, err, phone)
			assert.Equal(t, phone, d.Phone)
		} else {
			require.Error(t, err, phone)
			assert.Equal(t, "phone must have at least 10 digits", cv.FormatValidationErrors(err)["phone"])
		}
	}
}

func TestDoctorEmail(t *testing.T) {
	cv := newValidator()

	d := validDoctor()
	d.Email = "House@PPTH.org"
	d.Normalize()
	require.NoError(t, cv.Validate(&d))
	assert.Equal(t, "house@ppth.org", d.Email)

	for _, email := range []string{"house.ppth", "house@ppth", "house"} {
		d := validDoctor()
		d.Email = email
		err := cv.Validate(&d)
		require.Error(t, err, email)
		assert.Equal(t, "invalid email format", cv.FormatValidationErrors(err)["email"])
	}

	var update UpdateDoctorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email": "A@B.COM"}`), &update))
	update.Normalize()
	assert.Equal(t, map[string]interface{}{"email": "a@b.com"}, update.Fields())
}

func TestPatientNameTrimmed(t *testing.T) {
	cv := newValidator()

	p := validPatient()
	p.Name = "  Jane Doe  "
	p.Normalize()
	require.NoError(t, cv.Validate(&p))
	assert.Equal(t, "Jane Doe", p.Name)

	blank := validPatient()
	blank.Name = "   "
	blank.Normalize()
	err := cv.Validate(&blank)
	require.Error(t, err)
	assert.Contains(t, cv.FormatValidationErrors(err), "name")

	var update UpdatePatientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "   "}`), &update))
	update.Normalize()
	assert.Error(t, cv.Validate(&update))
}

func TestMaxLengths(t *testing.T) {
	cv := newValidator()

	long := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'a'
		}
		return string(b)
	}

	p := validPatient()
	p.Name = long(101)
	assert.Error(t, cv.Validate(&p))

	h := CreateHospitalRequest{Name: long(200), Location: long(201), Beds: intPtr(1), Occupancy: intPtr(0)}
	err := cv.Validate(&h)
	require.Error(t, err)
	assert.NotContains(t, cv.FormatValidationErrors(err), "name")
	assert.Contains(t, cv.FormatValidationErrors(err), "location")

	desc := long(501)
	dep := validDepartment()
	dep.Description = &desc
	assert.Error(t, cv.Validate(&dep))
}

func TestUpdateFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		req     Patch
		want    map[string]interface{}
	}{
		{
			name:    "empty payload",
			payload: `{}`,
			req:     &UpdatePatientRequest{},
			want:    map[string]interface{}{},
		},
		{
			name:    "all null payload",
			payload: `{"name": null, "age": null, "status": null}`,
			req:     &UpdatePatientRequest{},
			want:    map[string]interface{}{},
		},
		{
			name:    "only present fields",
			payload: `{"status": "Critical", "room": null}`,
			req:     &UpdatePatientRequest{},
			want:    map[string]interface{}{"status": "Critical"},
		},
		{
			name:    "zero values are kept",
			payload: `{"beds": 0, "occupancy": 0}`,
			req:     &UpdateHospitalRequest{},
			want:    map[string]interface{}{"beds": 0, "occupancy": 0},
		},
		{
			name:    "nullable description is cleared",
			payload: `{"description": null, "equipment": ["ECG"]}`,
			req:     &UpdateDepartmentRequest{},
			want:    map[string]interface{}{"description": nil, "equipment": pq.StringArray{"ECG"}},
		},
		{
			name:    "appointment",
			payload: `{"status": "In Progress", "time": "10:30"}`,
			req:     &UpdateAppointmentRequest{},
			want:    map[string]interface{}{"status": "In Progress", "time": "10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, json.Unmarshal([]byte(tt.payload), tt.req))
			assert.Equal(t, tt.want, tt.req.Fields())
		})
	}
}
