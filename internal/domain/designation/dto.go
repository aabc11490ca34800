package designation

import "github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"

// Draft is the designation form payload.
type Draft struct {
	Name       string `json:"name" validate:"notblank,max=100"`
	Department string `json:"department" validate:"notblank,max=100"`
}

func (d Draft) Validate() error {
	return validator.Struct(d).Err()
}

// DraftFrom seeds an edit form from a listed designation.
func DraftFrom(d Designation) Draft {
	return Draft{Name: d.Name, Department: d.Department}
}
