package schema

// ButtonContractTable represents the 'core.button_contract' table
type ButtonContractTable struct {
	Table         string
	ID            string
	Name          string
	Variants      string
	Props         string
	Accessibility string
	CreatedAt     string
	UpdatedAt     string
}

// ButtonContract is the schema definition for core.button_contract
var ButtonContract = ButtonContractTable{
	Table:         "core.button_contract",
	ID:            "id",
	Name:          "name",
	Variants:      "variants",
	Props:         "props",
	Accessibility: "accessibility",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t ButtonContractTable) Columns() []string {
	return []string{t.ID, t.Name, t.Variants, t.Props, t.Accessibility, t.CreatedAt, t.UpdatedAt}
}
