package models

type SparePart struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	Qty       int    `json:"qty"`
	MachineID int    `json:"machineId,omitempty"`
	Replenish bool   `json:"replenish"`
	Image     string `json:"image,omitempty"` // data URI
}

type ToolCondition string

const (
	ToolGood        ToolCondition = "buena"
	ToolMedium      ToolCondition = "media"
	ToolPoor        ToolCondition = "mala"
	ToolUnderRepair ToolCondition = "en reparacion"
)

type Tool struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Code        string        `json:"code,omitempty"`
	Qty         int           `json:"qty"`
	Description string        `json:"description,omitempty"`
	Condition   ToolCondition `json:"condition"`
	Image       string        `json:"image,omitempty"` // data URI
}

type Provider struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Area  string `json:"area,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Template holds a document template as an inline data URI. There is no
// separate blob store and no size limit; growth of the storage file is a
// known limitation.
type Template struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	File     string `json:"file"` // data URI
	Filename string `json:"filename,omitempty"`
}
