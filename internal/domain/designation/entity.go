package designation

type Designation struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
