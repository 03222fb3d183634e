package bookinstances

// InstanceForm carries the create/update form fields. Values are kept as the
// submitted strings so a failed validation can re-render the form exactly as
// the user filled it in. Status is only escaped at this layer; membership in
// the status enumeration is enforced by the service when the record is
// persisted.
type InstanceForm struct {
	Book    string `form:"book" mod:"trim" validate:"required" errormsg:"Book must be specified"`
	Imprint string `form:"imprint" mod:"trim" validate:"required" errormsg:"Imprint must be specified"`
	Status  string `form:"status" mod:"trim"`
	DueBack string `form:"due_back" mod:"trim" validate:"date" errormsg:"Invalid date"`
}

// deleteInstanceForm reads the target id from the submitted form body, not
// the route.
type deleteInstanceForm struct {
	InstanceID string `form:"instanceid" mod:"trim"`
}
