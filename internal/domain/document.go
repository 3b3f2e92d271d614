package domain

// Document is the root aggregate persisted as a single JSON file.
type Document struct {
	Admins            []string `json:"admins"`
	Members           []string `json:"members"`
	Leaves            []Leave  `json:"leaves"`
	Shifts            ShiftMap `json:"shifts"`
	ExcludeFromOnDuty []string `json:"excludeFromOnDuty"`
}

func NewDocument() *Document {
	return &Document{
		Admins:            []string{},
		Members:           []string{},
		Leaves:            []Leave{},
		Shifts:            ShiftMap{},
		ExcludeFromOnDuty: []string{},
	}
}

// Normalize repairs documents written by older versions: nil collections
// become empty and leaves without a status are treated as approved.
func (d *Document) Normalize() {
	if d.Admins == nil {
		d.Admins = []string{}
	}
	if d.Members == nil {
		d.Members = []string{}
	}
	if d.Leaves == nil {
		d.Leaves = []Leave{}
	}
	if d.Shifts == nil {
		d.Shifts = ShiftMap{}
	}
	if d.ExcludeFromOnDuty == nil {
		d.ExcludeFromOnDuty = []string{}
	}
	for i := range d.Leaves {
		if d.Leaves[i].Status == "" {
			d.Leaves[i].Status = LeaveStatusApproved
		}
	}
}

func (d *Document) HasMember(name string) bool {
	for _, m := range d.Members {
		if m == name {
			return true
		}
	}
	return false
}

func (d *Document) IsAdmin(name string) bool {
	for _, a := range d.Admins {
		if a == name {
			return true
		}
	}
	return false
}

// NextLeaveID returns max(existing ids) + 1, or 1 for an empty leave list.
func (d *Document) NextLeaveID() int {
	max := 0
	for _, l := range d.Leaves {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}
