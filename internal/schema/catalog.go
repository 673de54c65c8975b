package schema

import "github.com/otifyhq/console/internal/record"

// Option universes for the multi-select fields. These are part of the
// schema, not user-editable data.
var (
	PrimeOptions      = []string{"OT Comparison", "Book Application", "Call Booking"}
	DepartmentOptions = []string{"Cardiology", "Dental", "Orthopedic"}
)

var typeOrder = []string{"service", "hospital", "doctor", "department", "user", "package"}

var catalog = map[string]*Schema{
	"service": {
		Type:     "service",
		Plural:   "Services",
		Singular: "service",
		Fields: []Field{
			{Name: "name", Label: "Service Name", Kind: KindText, Required: true},
			{Name: "description", Label: "Description", Kind: KindTextarea, Required: true},
			{Name: "primeOptions", Label: "Prime Options", Kind: KindMultiSelect, Required: true, Options: PrimeOptions},
			{Name: "isActive", Label: "Active", Kind: KindCheckbox, Default: true},
		},
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "description", Label: "Description"},
			{Key: "primeOptions", Label: "Prime Options", Kind: ColList},
			{Key: "isActive", Label: "Status", Kind: ColStatus},
		},
	},
	"hospital": {
		Type:     "hospital",
		Plural:   "Hospitals",
		Singular: "hospital",
		Fields: []Field{
			{Name: "name", Label: "Hospital Name", Kind: KindText, Required: true},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "contact", Label: "Contact", Kind: KindTel, Required: true},
			{Name: "address", Label: "Address", Kind: KindTextarea, Required: true},
			{Name: "url", Label: "Hospital URL", Kind: KindText, Required: true},
			{Name: "departmentOptions", Label: "Department Options", Kind: KindMultiSelect, Required: true, Options: DepartmentOptions},
			{Name: "description", Label: "Description", Kind: KindTextarea, Required: true},
		},
		Hidden: record.Fields{"isActive": false},
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "contact", Label: "Contact"},
			{Key: "address", Label: "Address"},
			{Key: "url", Label: "URL"},
			{Key: "departmentOptions", Label: "Departments", Kind: ColList},
			{Key: "description", Label: "Description"},
			{Key: "isActive", Label: "Status", Kind: ColStatus},
		},
	},
	"doctor": {
		Type:     "doctor",
		Plural:   "Doctors",
		Singular: "doctor",
		Fields: []Field{
			{Name: "doctorName", Label: "Doctor Name", Kind: KindText, Required: true},
			{Name: "specialization", Label: "Specialization", Kind: KindText, Required: true},
			{Name: "experience", Label: "Experience (Years)", Kind: KindNumber, Required: true},
			{Name: "departmentOptions", Label: "Department Options", Kind: KindMultiSelect, Required: true, Options: DepartmentOptions},
			{Name: "about", Label: "About", Kind: KindTextarea, Required: true},
			{Name: "isConsultant", Label: "Consultant", Kind: KindCheckbox},
		},
		Columns: []Column{
			{Key: "doctorName", Label: "Doctor Name"},
			{Key: "specialization", Label: "Specialization"},
			{Key: "experience", Label: "Experience (Years)"},
			{Key: "departmentOptions", Label: "Departments", Kind: ColList},
			{Key: "about", Label: "About"},
			{Key: "isConsultant", Label: "Consultant", Kind: ColStatus},
		},
	},
	"department": {
		Type:     "department",
		Plural:   "Departments",
		Singular: "department",
		Fields: []Field{
			{Name: "departmentName", Label: "Department Name", Kind: KindText, Required: true},
			{Name: "details", Label: "Details", Kind: KindTextarea, Required: true},
			{Name: "isActive", Label: "Active", Kind: KindCheckbox, Default: true},
		},
		Columns: []Column{
			{Key: "departmentName", Label: "Department Name"},
			{Key: "details", Label: "Details"},
			{Key: "isActive", Label: "Status", Kind: ColStatus},
		},
	},
	"user": {
		Type:     "user",
		Plural:   "Users",
		Singular: "user",
		Fields: []Field{
			{Name: "user_name", Label: "User Name", Kind: KindText, Required: true},
			{Name: "password", Label: "Password", Kind: KindPassword, Required: true},
			{Name: "address", Label: "Address", Kind: KindTextarea, Required: true},
			{Name: "mobile_no", Label: "Mobile No", Kind: KindTel, Required: true},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "gender", Label: "Gender", Kind: KindText, Required: true},
			{Name: "dob", Label: "Date of Birth", Kind: KindDate, Required: true},
			{Name: "role", Label: "Role", Kind: KindText, Required: true},
			{Name: "user_type", Label: "User Type", Kind: KindText, Required: true},
		},
		Hidden: record.Fields{"permission": ""},
		Columns: []Column{
			{Key: "user_name", Label: "Username"},
			{Key: "email", Label: "Email"},
			{Key: "mobile_no", Label: "Mobile No"},
			{Key: "address", Label: "Address"},
			{Key: "gender", Label: "Gender"},
			{Key: "dob", Label: "Date of Birth"},
			{Key: "role", Label: "Role"},
			{Key: "permission", Label: "Permission"},
			{Key: "user_type", Label: "User Type"},
		},
	},
	"package": {
		Type:     "package",
		Plural:   "Packages",
		Singular: "package",
		Fields: []Field{
			{Name: "item_name", Label: "Item Name", Kind: KindText, Required: true},
			{Name: "price", Label: "Price", Kind: KindNumber, Required: true},
			{Name: "room", Label: "Room", Kind: KindText, Required: true},
			{Name: "item_food_facility", Label: "Food Facility", Kind: KindCheckbox},
			{Name: "item_nurse_facility", Label: "Nurse Facility", Kind: KindCheckbox},
			{Name: "item_pick_drop", Label: "Pick Drop", Kind: KindCheckbox},
			{Name: "item_post_operative_care", Label: "Post Operative Care", Kind: KindCheckbox},
			{Name: "item_physiotherapy", Label: "Physiotherapy", Kind: KindCheckbox},
		},
		Columns: []Column{
			{Key: "item_name", Label: "Item Name"},
			{Key: "price", Label: "Price"},
			{Key: "room", Label: "Room"},
			{Key: "item_food_facility", Label: "Food Facility", Kind: ColStatus},
			{Key: "item_nurse_facility", Label: "Nurse Facility", Kind: ColStatus},
			{Key: "item_pick_drop", Label: "Pick & Drop", Kind: ColStatus},
			{Key: "item_post_operative_care", Label: "Post Operative Care", Kind: ColStatus},
			{Key: "item_physiotherapy", Label: "Physiotherapy", Kind: ColStatus},
		},
	},
}
