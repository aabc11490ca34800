package employee

import (
	"testing"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       "asha@corp.in",
		Phone:       "9876543210",
		Gender:      "Female",
		Department:  "Engineering",
		Branch:      "Pune",
		Designation: "Engineer",
		DateOfBirth: "1990-01-15",
	}
}

func TestDraft_ValidateAcceptsCompleteDraft(t *testing.T) {
	assert.NoError(t, validDraft().Validate())
}

func TestDraft_MissingFieldOnlyReportsRequired(t *testing.T) {
	d := validDraft()
	d.Email = ""
	d.Phone = ""

	var verrs validator.ValidationErrors
	require.ErrorAs(t, d.Validate(), &verrs)

	assert.Equal(t, map[string]string{
		"email": "email is required",
		"phone": "phone is required",
	}, verrs.ToMap())
	assert.Len(t, verrs, 2)
}

func TestDraft_FormatChecks(t *testing.T) {
	d := validDraft()
	d.Email = "bad"
	d.Phone = "123"
	d.PAN = "X"
	d.Aadhar = "12"
	d.DateOfJoining = "someday"

	var verrs validator.ValidationErrors
	require.ErrorAs(t, d.Validate(), &verrs)

	m := verrs.ToMap()
	assert.Len(t, m, 5)
	assert.Equal(t, "invalid email format", m["email"])
	assert.Equal(t, "phone must be exactly 10 digits", m["phone"])
}

func TestEmployee_FullNameAndSplit(t *testing.T) {
	assert.Equal(t, "Asha Rao", Employee{FirstName: "Asha", LastName: "Rao"}.FullName())
	assert.Equal(t, "Asha Devi Rao", Employee{FirstName: "Asha", MiddleName: "Devi", LastName: "Rao"}.FullName())

	first, middle, last := SplitName("  Asha  ")
	assert.Equal(t, []string{"Asha", "", ""}, []string{first, middle, last})
}

func TestStatus_Normalize(t *testing.T) {
	assert.Equal(t, StatusInactive, Status("Disabled").Normalize())
	assert.Equal(t, StatusInactive, Status("inactive").Normalize())
	assert.Equal(t, StatusActive, Status("").Normalize())
	assert.Equal(t, StatusActive, Status("Active").Normalize())
}
