package authors

// AuthorForm carries the create/update form fields as submitted strings so a
// failed validation re-renders exactly what the user typed.
type AuthorForm struct {
	FirstName   string `form:"first_name" mod:"trim" validate:"required,max=100" errormsg:"First name must be specified."`
	FamilyName  string `form:"family_name" mod:"trim" validate:"required,max=100" errormsg:"Family name must be specified."`
	DateOfBirth string `form:"date_of_birth" mod:"trim" validate:"date" errormsg:"Invalid date of birth"`
	DateOfDeath string `form:"date_of_death" mod:"trim" validate:"date" errormsg:"Invalid date of death"`
}

type deleteAuthorForm struct {
	AuthorID string `form:"authorid" mod:"trim"`
}
