package domain

// Static fleet partitions and escort slots used to seed a new form.
var (
	Fleet1BusNumbers = []string{
		"B010", "B011", "B012", "B013", "B014", "B015", "B016", "B017", "B018",
		"B019", "B020", "B021", "B022", "B023", "B024", "B025", "B026",
	}
	Fleet2BusNumbers = []string{"MSL194", "MSL195", "MSL196", "MSL200", "L1825", "L1826", "L1891", "L1844"}
	EscortIDs        = []string{"L1828", "L1884", "MSL117"}
)

// DriverRow is one bus line of the dispatch sheet. Numeric columns are kept
// as strings so empty input survives.
type DriverRow struct {
	ID                    string `json:"id"`
	DriverName            string `json:"driverName"`
	BusNo                 string `json:"busNo"`
	HeadCountMillMineUp   string `json:"headCountMillMineUp"`
	HeadCountMillMineDown string `json:"headCountMillMineDown"`
	OthersUp              string `json:"othersUp"`
	OthersDown            string `json:"othersDown"`
	Destination           string `json:"destination"`
	Comments              string `json:"comments"`
}

// Editable driver row fields, named as in the stored document.
const (
	FieldDriverName            = "driverName"
	FieldBusNo                 = "busNo"
	FieldHeadCountMillMineUp   = "headCountMillMineUp"
	FieldHeadCountMillMineDown = "headCountMillMineDown"
	FieldOthersUp              = "othersUp"
	FieldOthersDown            = "othersDown"
	FieldDestination           = "destination"
	FieldComments              = "comments"
)

// Set assigns value to the named field. The row id is not editable.
func (r *DriverRow) Set(field, value string) error {
	switch field {
	case FieldDriverName:
		r.DriverName = value
	case FieldBusNo:
		r.BusNo = value
	case FieldHeadCountMillMineUp:
		r.HeadCountMillMineUp = value
	case FieldHeadCountMillMineDown:
		r.HeadCountMillMineDown = value
	case FieldOthersUp:
		r.OthersUp = value
	case FieldOthersDown:
		r.OthersDown = value
	case FieldDestination:
		r.Destination = value
	case FieldComments:
		r.Comments = value
	default:
		return ErrUnknownField
	}
	return nil
}

// EscortRow is one escort vehicle line. Key is the stable row key, ID the
// editable escort label.
type EscortRow struct {
	Key   string `json:"key"`
	ID    string `json:"id"`
	Value string `json:"value"`
}

const (
	FieldEscortID    = "id"
	FieldEscortValue = "value"
)

func (r *EscortRow) Set(field, value string) error {
	switch field {
	case FieldEscortID:
		r.ID = value
	case FieldEscortValue:
		r.Value = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Free-text note fields.
const (
	NoteComments    = "comments"
	NoteRDO         = "rdo"
	NoteSpareDriver = "spareDriver"
	NoteSickAbsent  = "sickAbsent"
)

// FormData is one shift's dispatch sheet.
type FormData struct {
	Drivers1    []DriverRow `json:"drivers1"`
	Drivers2    []DriverRow `json:"drivers2"`
	Escorts     []EscortRow `json:"escorts"`
	Comments    string      `json:"comments"`
	RDO         string      `json:"rdo"`
	SpareDriver string      `json:"spareDriver"`
	SickAbsent  string      `json:"sickAbsent"`
}

// NewFormData returns an empty sheet seeded from the static fleet lists.
func NewFormData() FormData {
	return FormData{
		Drivers1: seedDriverRows(Fleet1BusNumbers),
		Drivers2: seedDriverRows(Fleet2BusNumbers),
		Escorts:  seedEscortRows(EscortIDs),
	}
}

func seedDriverRows(busNumbers []string) []DriverRow {
	rows := make([]DriverRow, 0, len(busNumbers))
	for _, bus := range busNumbers {
		rows = append(rows, DriverRow{ID: bus, BusNo: bus})
	}
	return rows
}

func seedEscortRows(ids []string) []EscortRow {
	rows := make([]EscortRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, EscortRow{Key: id, ID: id})
	}
	return rows
}

// Clone returns a deep copy that shares no slices with f.
func (f FormData) Clone() FormData {
	out := f
	out.Drivers1 = cloneSlice(f.Drivers1)
	out.Drivers2 = cloneSlice(f.Drivers2)
	out.Escorts = cloneSlice(f.Escorts)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// UpdateDriver sets one field on every row whose id matches, in both fleet
// groups. Other rows are left untouched.
func (f *FormData) UpdateDriver(rowID, field, value string) error {
	found := false
	for _, rows := range [][]DriverRow{f.Drivers1, f.Drivers2} {
		for i := range rows {
			if rows[i].ID != rowID {
				continue
			}
			if err := rows[i].Set(field, value); err != nil {
				return err
			}
			found = true
		}
	}
	if !found {
		return ErrRowNotFound
	}
	return nil
}

// UpdateEscort sets one field on the escort row with the given key.
func (f *FormData) UpdateEscort(key, field, value string) error {
	for i := range f.Escorts {
		if f.Escorts[i].Key == key {
			return f.Escorts[i].Set(field, value)
		}
	}
	return ErrRowNotFound
}

// SetNote assigns one of the free-text fields.
func (f *FormData) SetNote(field, value string) error {
	switch field {
	case NoteComments:
		f.Comments = value
	case NoteRDO:
		f.RDO = value
	case NoteSpareDriver:
		f.SpareDriver = value
	case NoteSickAbsent:
		f.SickAbsent = value
	default:
		return ErrUnknownField
	}
	return nil
}
